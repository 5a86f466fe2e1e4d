package xdcache

import (
	"reflect"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/omeyang/xintercept/internal/resolvecache"
	"github.com/omeyang/xintercept/pkg/intercept/xident"
	"github.com/omeyang/xintercept/pkg/intercept/xpolicy"
	"github.com/omeyang/xintercept/pkg/intercept/xresolve"
)

// Cache 是按类型预计算的决策缓存。
// 必须通过 [New] 创建。注册阶段写入，之后并发只读。
type Cache struct {
	resolver *xresolve.Resolver

	// entries 按归一化类型存放已注册条目。
	entries sync.Map // reflect.Type -> *typeEntry

	// owners 按类型全名索引条目，服务于身份键查询。
	owners sync.Map // string -> *typeEntry

	// candidates 已注册具体类型，按注册顺序，供接口实现定位扫描。
	candMu     sync.RWMutex
	candidates []reflect.Type
	candSet    map[reflect.Type]struct{}

	// memo 接口方法定位结果的备忘。
	memo *resolvecache.Cache

	// sf 合并并发的同类型注册。
	sf singleflight.Group

	stats stats
}

// typeEntry 单个已注册类型的完整决策集。安装后只读。
type typeEntry struct {
	// disabled 类型整体禁用短路标志（存在类型级禁用标记即为 true，
	// 与各方法的标记无关）。
	disabled bool

	// byName 方法名 -> 决策。Go 同一类型内方法名唯一，方法名即类型内键；
	// 跨类型的重载安全由身份三元组保证（见 idents）。
	byName map[string]xpolicy.Decision

	// idents 身份哈希键 -> 决策，服务于 LookupIdentity。
	idents map[uint64]xpolicy.Decision
}

// Option 定义 Cache 的可选配置函数类型。
type Option func(*Cache)

// WithMemoSize 设置接口定位备忘缓存的容量。
// size <= 0 时使用默认容量。
func WithMemoSize(size int) Option {
	return func(c *Cache) {
		c.memo = resolvecache.New(size)
	}
}

// New 创建决策缓存。resolver 不能为 nil。
func New(resolver *xresolve.Resolver, opts ...Option) (*Cache, error) {
	if resolver == nil {
		return nil, ErrNilResolver
	}
	c := &Cache{
		resolver: resolver,
		memo:     resolvecache.New(0),
		candSet:  make(map[reflect.Type]struct{}),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

// RegisterType 预计算并安装 t 的全部方法决策。
//
// 幂等：重复注册替换整个条目。并发注册同一类型被合并为一次计算；
// 不同类型可无序并发注册。条目在旁侧完整构建后一次 Store 安装，
// 读方观察不到半成品。
//
// 仅两类失败：t 为 nil（ErrNilType）、t 归一化后不是具体类型
// （ErrNotConcrete）。这类错误是组装期缺陷信号，调用方应中止启动。
func (c *Cache) RegisterType(t reflect.Type) error {
	if t == nil {
		return ErrNilType
	}
	nt := xident.Normalize(t)
	if nt == nil || nt.Kind() == reflect.Interface {
		return ErrNotConcrete
	}
	if nt.Name() == "" {
		return ErrNotConcrete
	}

	_, err, _ := c.sf.Do(nt.String(), func() (any, error) {
		entry := c.build(nt)
		c.entries.Store(nt, entry)
		c.owners.Store(xident.TypeName(nt), entry)
		c.addCandidate(nt)
		c.stats.registrations.Add(1)
		return nil, nil
	})
	return err
}

// build 在旁侧构建类型条目。
func (c *Cache) build(nt reflect.Type) *typeEntry {
	entry := &typeEntry{
		disabled: c.resolver.TypeDisabled(nt),
		byName:   make(map[string]xpolicy.Decision),
		idents:   make(map[uint64]xpolicy.Decision),
	}
	if entry.disabled {
		return entry
	}
	for _, m := range xident.Methods(nt) {
		d, ok := c.resolver.Resolve(nt, m.Name)
		if !ok {
			continue
		}
		entry.byName[m.Name] = d
		entry.idents[xident.Identity(nt, m).Key()] = d
	}
	return entry
}

// addCandidate 将 nt 追加到实现定位候选（按注册顺序，去重）。
func (c *Cache) addCandidate(nt reflect.Type) {
	c.candMu.Lock()
	defer c.candMu.Unlock()
	if _, ok := c.candSet[nt]; ok {
		return
	}
	c.candSet[nt] = struct{}{}
	c.candidates = append(c.candidates, nt)
}

// snapshotCandidates 返回候选类型的快照。
func (c *Cache) snapshotCandidates() []reflect.Type {
	c.candMu.RLock()
	defer c.candMu.RUnlock()
	out := make([]reflect.Type, len(c.candidates))
	copy(out, c.candidates)
	return out
}

// Lookup 返回 t 上方法 m 的决策；false 表示不拦截。
//
// 已注册类型走热路径：一次 sync.Map 读 + 一次方法名 map 读，零分配。
// t 为接口时先定位具体实现再递归；未注册的具体类型按需解析、不缓存。
// Lookup 永不失败。
func (c *Cache) Lookup(t reflect.Type, m reflect.Method) (xpolicy.Decision, bool) {
	return c.lookupByName(t, m.Name)
}

// LookupName 与 Lookup 相同，但直接以方法名查询，
// 供只持有方法名的调用方使用。
func (c *Cache) LookupName(t reflect.Type, method string) (xpolicy.Decision, bool) {
	return c.lookupByName(t, method)
}

func (c *Cache) lookupByName(t reflect.Type, method string) (xpolicy.Decision, bool) {
	if t == nil || method == "" {
		return xpolicy.Decision{}, false
	}
	nt := xident.Normalize(t)
	if nt == nil {
		return xpolicy.Decision{}, false
	}

	if v, ok := c.entries.Load(nt); ok {
		entry := v.(*typeEntry)
		c.stats.hits.Add(1)
		if entry.disabled {
			return xpolicy.Decision{}, false
		}
		d, ok := entry.byName[method]
		return d, ok
	}

	if nt.Kind() == reflect.Interface {
		return c.lookupInterface(nt, method)
	}

	// 未注册的具体类型：按需解析，不缓存。正确优先于快，
	// 稳态前应当已完成全部注册。
	c.stats.onDemand.Add(1)
	return c.resolver.Resolve(nt, method)
}

// lookupInterface 将接口方法查询转发到已注册的实现类型。
func (c *Cache) lookupInterface(iface reflect.Type, method string) (xpolicy.Decision, bool) {
	c.stats.redirects.Add(1)

	if r, ok := c.memo.Get(iface, method); ok {
		return c.lookupByName(r.Type, r.Method.Name)
	}

	impl, m, ok := xident.ResolveImplementation(iface, method, c.snapshotCandidates())
	if !ok {
		// 无已注册实现或无匹配成员：不拦截，且不缓存负结果——
		// 之后注册的类型可能使其可定位。
		return xpolicy.Decision{}, false
	}
	c.memo.Set(iface, method, resolvecache.Result{Type: impl, Method: m})
	return c.lookupByName(impl, m.Name)
}

// LookupIdentity 以方法身份查询已注册类型的决策。
// 身份所属类型未注册时返回 false（不做按需解析：身份不携带足以
// 重建 reflect 元数据的信息）。
func (c *Cache) LookupIdentity(id xident.MethodIdentity) (xpolicy.Decision, bool) {
	v, ok := c.owners.Load(id.Owner)
	if !ok {
		return xpolicy.Decision{}, false
	}
	entry := v.(*typeEntry)
	if entry.disabled {
		return xpolicy.Decision{}, false
	}
	d, ok := entry.idents[id.Key()]
	return d, ok
}

// Registered 报告 t 是否已注册。
func (c *Cache) Registered(t reflect.Type) bool {
	if t == nil {
		return false
	}
	_, ok := c.entries.Load(xident.Normalize(t))
	return ok
}

// Purge 清空接口定位备忘。注册集推倒重来的测试场景使用；
// 常规运行无需调用。
func (c *Cache) Purge() {
	c.memo.Purge()
}
