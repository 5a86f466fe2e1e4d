package xmarker

import (
	"reflect"
	"sync"

	"github.com/omeyang/xintercept/pkg/intercept/xident"
)

// Registry 是标记的 side-table，按归一化后的类型存放类型级与方法级标记。
//
// 写入发生在启动登记阶段，之后只读。重复登记同一 (类型, 方法) 会追加标记，
// 与"同一级别上多个标记共存"的合并语义一致。
type Registry struct {
	mu    sync.RWMutex
	types map[reflect.Type]*typeMarkers
}

// typeMarkers 单个类型的全部标记。
type typeMarkers struct {
	typeLevel []Marker
	methods   map[string][]Marker
}

// NewRegistry 创建空的标记登记表。
func NewRegistry() *Registry {
	return &Registry{types: make(map[reflect.Type]*typeMarkers)}
}

// SetType 登记类型级标记。
// t 会先归一化到最近的命名类型（*OrderService 与 OrderService 等价）。
func (r *Registry) SetType(t reflect.Type, markers ...Marker) error {
	if t == nil {
		return ErrNilType
	}
	nt := xident.Normalize(t)

	r.mu.Lock()
	defer r.mu.Unlock()
	entry := r.entryLocked(nt)
	entry.typeLevel = append(entry.typeLevel, markers...)
	return nil
}

// SetMethod 登记方法级标记。
func (r *Registry) SetMethod(t reflect.Type, method string, markers ...Marker) error {
	if t == nil {
		return ErrNilType
	}
	if method == "" {
		return ErrEmptyMethodName
	}
	nt := xident.Normalize(t)

	r.mu.Lock()
	defer r.mu.Unlock()
	entry := r.entryLocked(nt)
	entry.methods[method] = append(entry.methods[method], markers...)
	return nil
}

// entryLocked 返回类型条目，不存在时创建。调用方必须持有写锁。
func (r *Registry) entryLocked(t reflect.Type) *typeMarkers {
	entry, ok := r.types[t]
	if !ok {
		entry = &typeMarkers{methods: make(map[string][]Marker)}
		r.types[t] = entry
	}
	return entry
}

// TypeMarkers 返回类型级标记的快照。
func (r *Registry) TypeMarkers(t reflect.Type) []Marker {
	if t == nil {
		return nil
	}
	nt := xident.Normalize(t)

	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.types[nt]
	if !ok || len(entry.typeLevel) == 0 {
		return nil
	}
	out := make([]Marker, len(entry.typeLevel))
	copy(out, entry.typeLevel)
	return out
}

// MethodMarkers 返回方法级标记的快照。
func (r *Registry) MethodMarkers(t reflect.Type, method string) []Marker {
	if t == nil || method == "" {
		return nil
	}
	nt := xident.Normalize(t)

	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.types[nt]
	if !ok {
		return nil
	}
	markers, ok := entry.methods[method]
	if !ok || len(markers) == 0 {
		return nil
	}
	out := make([]Marker, len(markers))
	copy(out, markers)
	return out
}
