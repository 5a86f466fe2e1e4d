// Package xmarker 提供声明式拦截标记的登记与检视。
//
// 标记是服务实现者对"本方法/本类型如何被记录"的声明式表达。原始框架
// 依赖语言的注解/反射机制在运行时发现标记；xmarker 采用显式登记的
// side-table（[Registry]）：标记在进程启动时注册一次，之后只读，
// 引擎核心由此与任何元数据发现机制解耦。
//
// # 标记种类
//
//   - [Disabled]：禁用拦截
//   - [CaptureInput] / [CaptureOutput] / [CaptureBoth]：启用拦截并声明捕获行为，
//     可叠加 [WithLevel]、[WithExceptionLevel]、[WithTarget] 覆盖默认值
//
// # 检视优先级
//
// [Inspector.Inspect] 的优先级固定为：方法级禁用 > 类型级禁用 >
// 方法级启用 > 类型级启用 > 无标记（落空，交由配置规则决定）。
//
// # 同级合并规则
//
// 同一级别上 CaptureInput 与 CaptureOutput 共存时等价于 CaptureBoth：
// 正常级别取两者中数值更小（更详细）者；target 取声明顺序中第一个非空值；
// 失败级别取第一个显式配置值，均未配置时用默认 Error。
// 冲突通过确定性的决胜规则消解，永远不是错误。
//
// # 并发
//
// Registry 的写入发生在启动登记阶段，Inspect 为纯读取；读写分别由
// RWMutex 保护，登记完成后可被任意多个 goroutine 并发检视。
package xmarker
