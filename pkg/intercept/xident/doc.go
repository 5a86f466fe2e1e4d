// Package xident 提供方法身份计算与接口方法到具体实现的定位。
//
// 拦截决策缓存需要一个稳定、重载安全的方法键：同名方法不能共享缓存槽。
// xident 把 (所属类型全名, 方法名, 参数类型名列表) 组合为 [MethodIdentity]，
// 并通过 xxhash 提供紧凑的 uint64 键供缓存内部使用。
//
// # 类型归一化
//
// [Normalize] 将指针/切片/数组/map/chan 逐层解包到最近的命名类型，
// 保证 *OrderService 与 OrderService 产生同一身份。[TypeName] 返回
// "pkgbase.TypeName" 形式的全名（如 "billing.Service"），
// 用于模式规则匹配。
//
// # 方法可见性模型
//
// Go 的 reflect 方法集只包含导出方法，因此"仅公开可调用的实例方法可拦截"
// 在 Go 中天然成立；静态方法、构造器、属性访问器等概念不存在于 Go 模型，
// 无需额外过滤。身份计算基于指针方法集（值接收者与指针接收者方法都可见）。
//
// # 接口定位
//
// [ResolveImplementation] 在已注册的具体类型集合中寻找实现指定接口的类型，
// 并返回其上同名同签名的方法。未找到时返回 false 而非错误——拦截是可选
// 增强，定位失败语义为"不拦截"。
package xident
