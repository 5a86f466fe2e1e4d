// Package xpolicy 定义拦截决策的数据模型。
//
// xpolicy 是拦截策略引擎的模型层：描述一次方法调用"是否记录、记录什么、
// 以什么级别记录、记录到哪个 sink"的最终结论。模型层不依赖任何其他
// 拦截包，供 xmarker、xrule、xresolve、xdcache 共同使用。
//
// # 核心类型
//
//   - [Behavior]：捕获行为位掩码（None/Input/Output/Both）
//   - [Level]：严重级别，与 log/slog 数值兼容（数值越小越详细）
//   - [Decision]：最终决策值对象（Behavior + Level + ExceptionLevel + Target）
//
// # 级别顺序
//
// Level 复用 slog 的数值约定：Trace(-8) < Debug(-4) < Info(0) < Warn(4) < Error(8)。
// "数值更小 = 更详细"这一方向是标记合并规则（取两者中更详细的级别）的前提，
// 使用方不应假设其他顺序。
//
// # 不可变性
//
// Decision 是值对象：一经产生不再修改，更新以新值表达。所有默认值
// （正常完成 Info、失败 Error、默认 sink）由 [New] 构造函数统一补齐，
// 不要手工构造零值 Decision 再修改字段。
package xpolicy
