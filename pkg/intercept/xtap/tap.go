package xtap

import (
	"context"
	"reflect"
	"time"

	"github.com/omeyang/xintercept/pkg/intercept/xdcache"
	"github.com/omeyang/xintercept/pkg/intercept/xident"
)

// Tap 把决策缓存与记录器组合为调用包装器。
type Tap struct {
	cache *xdcache.Cache
	rec   *Recorder
}

// NewTap 创建调用包装器。cache 不能为 nil；rec 为 nil 时使用
// 默认 sink 的记录器。
func NewTap(cache *xdcache.Cache, rec *Recorder) (*Tap, error) {
	if cache == nil {
		return nil, ErrNilCache
	}
	if rec == nil {
		rec = NewRecorder(nil)
	}
	return &Tap{cache: cache, rec: rec}, nil
}

// Invoke 执行 svc 上名为 method 的一次调用并按决策记录。
//
// fn 承载真实调用（代理/生成代码持有入参闭包），args 仅用于记录。
// 决策为"不拦截"时直接透传 fn 的结果，零记录开销；查询本身走
// 缓存热路径。fn 为 nil 返回 ErrNilFn。
func (t *Tap) Invoke(ctx context.Context, svc any, method string, args []any, fn func(context.Context) ([]any, error)) ([]any, error) {
	if fn == nil {
		return nil, ErrNilFn
	}

	st := reflect.TypeOf(svc)
	d, ok := t.cache.LookupName(st, method)
	if !ok {
		return fn(ctx)
	}

	start := time.Now()
	results, err := fn(ctx)

	t.rec.Record(ctx, d, Call{
		Method:   xident.TypeName(st) + "." + method,
		Args:     args,
		Results:  results,
		Err:      err,
		Duration: time.Since(start),
	})
	return results, err
}
