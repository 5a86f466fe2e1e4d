package xident

import (
	"reflect"
)

// methodSet 返回 t 的可拦截方法集所在类型。
//
// 具体类型使用指针方法集：值接收者与指针接收者方法都包含在内，
// 与"代理持有服务实例指针"这一调用方形态一致。接口类型使用自身方法集。
func methodSet(t reflect.Type) reflect.Type {
	if t == nil {
		return nil
	}
	t = Normalize(t)
	if t == nil || t.Kind() == reflect.Interface || t.Kind() == reflect.Pointer {
		return t
	}
	return reflect.PointerTo(t)
}

// Methods 返回 t 上所有可拦截的方法。
//
// reflect 的方法集只含导出方法，因此无需额外的可见性过滤；
// 返回顺序为 reflect 的方法序（按名称排序）。nil 或无方法类型返回 nil。
func Methods(t reflect.Type) []reflect.Method {
	mt := methodSet(t)
	if mt == nil {
		return nil
	}
	n := mt.NumMethod()
	if n == 0 {
		return nil
	}
	methods := make([]reflect.Method, 0, n)
	for i := range n {
		methods = append(methods, mt.Method(i))
	}
	return methods
}

// MethodByName 在 t 的可拦截方法集中按名称查找方法。
func MethodByName(t reflect.Type, name string) (reflect.Method, bool) {
	mt := methodSet(t)
	if mt == nil {
		return reflect.Method{}, false
	}
	return mt.MethodByName(name)
}

// ResolveImplementation 为接口方法定位具体实现。
//
// 在 candidates 中按序寻找第一个实现 iface 的具体类型，并返回其上与
// 接口方法同名且参数签名一致的方法。以下情况返回 false，调用方必须
// 将其视为"不拦截"而非错误：
//   - iface 不是接口类型，或接口上没有名为 name 的方法
//   - 没有已注册的具体类型实现该接口
//   - 实现类型上找不到签名一致的导出方法
func ResolveImplementation(iface reflect.Type, name string, candidates []reflect.Type) (reflect.Type, reflect.Method, bool) {
	if iface == nil || iface.Kind() != reflect.Interface {
		return nil, reflect.Method{}, false
	}
	im, ok := iface.MethodByName(name)
	if !ok {
		return nil, reflect.Method{}, false
	}

	for _, c := range candidates {
		nc := Normalize(c)
		ms := methodSet(nc)
		if ms == nil || !ms.Implements(iface) {
			continue
		}
		m, ok := ms.MethodByName(name)
		if !ok {
			continue
		}
		if !signatureMatches(im, m) {
			continue
		}
		return nc, m, true
	}
	return nil, reflect.Method{}, false
}

// signatureMatches 比较接口方法与具体方法的参数签名（跳过具体方法的接收者）。
func signatureMatches(ifaceMethod, concreteMethod reflect.Method) bool {
	it, ct := ifaceMethod.Type, concreteMethod.Type
	if it.NumIn() != ct.NumIn()-1 || it.NumOut() != ct.NumOut() {
		return false
	}
	for i := range it.NumIn() {
		if it.In(i) != ct.In(i+1) {
			return false
		}
	}
	for i := range it.NumOut() {
		if it.Out(i) != ct.Out(i) {
			return false
		}
	}
	return true
}
