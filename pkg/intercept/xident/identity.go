package xident

import (
	"path"
	"reflect"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// maxUnwrap 类型归一化的最大解包深度，防止病态嵌套类型导致深层递归。
const maxUnwrap = 8

// MethodIdentity 是方法的重载安全身份。
//
// 三元组 (Owner, Name, Params) 完全相同时两个方法才是同一身份，
// 参数类型列表保证同名方法不会冲突。身份在方法首次被遇到时计算一次，
// 之后不可变，仅作为缓存键使用。
type MethodIdentity struct {
	// Owner 所属类型全名，形如 "billing.Service"。
	Owner string

	// Name 方法名。
	Name string

	// Params 参数类型名的有序列表，不含接收者。
	Params []string
}

// Key 返回身份的 64 位哈希键。
//
// 设计决策: 使用 xxhash 而非 map[MethodIdentity]——含切片的结构体不可比较，
// 无法直接作 map 键；逐段写入哈希器并以 NUL 分隔，避免字段拼接歧义
// （如 "a"+"bc" 与 "ab"+"c"）。xxhash 零分配且确定，同一身份在任何
// 进程中产生相同键。
func (id MethodIdentity) Key() uint64 {
	var h xxhash.Digest
	h.Reset()
	_, _ = h.WriteString(id.Owner)
	_, _ = h.Write(sep)
	_, _ = h.WriteString(id.Name)
	for _, p := range id.Params {
		_, _ = h.Write(sep)
		_, _ = h.WriteString(p)
	}
	return h.Sum64()
}

// sep 哈希字段分隔符。
var sep = []byte{0}

// String 返回身份的可读表示，形如 "billing.Service.Charge(string,int64)"。
func (id MethodIdentity) String() string {
	var sb strings.Builder
	sb.WriteString(id.Owner)
	sb.WriteByte('.')
	sb.WriteString(id.Name)
	sb.WriteByte('(')
	for i, p := range id.Params {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(p)
	}
	sb.WriteByte(')')
	return sb.String()
}

// Identity 计算 t 上方法 m 的身份。
// t 会先归一化到最近的命名类型；m 的签名取自 m.Type（含接收者时自动跳过）。
func Identity(t reflect.Type, m reflect.Method) MethodIdentity {
	owner := TypeName(t)

	ft := m.Type
	// 具体类型的方法签名首个入参是接收者，接口方法没有接收者。
	skip := 0
	if t != nil && t.Kind() != reflect.Interface {
		skip = 1
	}

	var params []string
	if n := ft.NumIn() - skip; n > 0 {
		params = make([]string, 0, n)
		for i := skip; i < ft.NumIn(); i++ {
			params = append(params, typeString(ft.In(i)))
		}
	}

	return MethodIdentity{Owner: owner, Name: m.Name, Params: params}
}

// TypeOf 返回 T 的 reflect.Type。
// 相比 reflect.TypeOf 的优势是 T 可以是接口类型。
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Normalize 将 t 解包到最近的命名类型。
//
// 指针/切片/数组/map/chan 逐层解包（map 取值类型），最多 maxUnwrap 层；
// 已是命名类型或无法继续解包时返回当前类型。nil 返回 nil。
func Normalize(t reflect.Type) reflect.Type {
	for range maxUnwrap {
		if t == nil || t.Name() != "" || t.Kind() == reflect.Interface {
			return t
		}
		switch t.Kind() {
		case reflect.Pointer, reflect.Slice, reflect.Array, reflect.Chan:
			t = t.Elem()
		case reflect.Map:
			t = t.Elem()
		default:
			return t
		}
	}
	return t
}

// TypeName 返回 t 的全名，形如 "billing.Service"。
//
// t 先经 Normalize 解包；无包路径的内建类型直接返回类型名。
// 泛型实例化后缀会被剥离："T[int]" -> "T"。
func TypeName(t reflect.Type) string {
	t = Normalize(t)
	if t == nil {
		return ""
	}
	name := stripTypeParams(t.Name())
	if name == "" {
		// 匿名类型退化为 reflect 的字符串表示。
		return t.String()
	}
	if p := t.PkgPath(); p != "" {
		return path.Base(p) + "." + name
	}
	return name
}

// typeString 返回参数类型在身份中的表示。
// 直接使用 reflect 的完整字符串（含指针/切片修饰），保证签名差异可区分。
func typeString(t reflect.Type) string {
	return t.String()
}

// stripTypeParams 剥离泛型实例化后缀："T[int,string]" -> "T"。
func stripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}
