// Package xresolve 将标记、配置规则与默认策略合成为单一拦截决策。
//
// 每个方法的决策按固定状态机推进，命中即终态：
//
//  1. 标记禁用（方法级或类型级）-> 不拦截
//  2. 标记启用推导的决策 -> 采用
//  3. 配置规则按所属类型全名命中 -> 采用
//  4. 自动拦截开关开启 -> 默认决策（捕获入参/Info/Error/默认 sink）
//  5. 否则 -> 不拦截
//
// 此顺序不可重排：标记永远压过配置，配置永远压过默认策略。服务作者
// 因此总能在源码侧强制本地行为，运维侧也总能在不动源码的前提下开启
// 大范围拦截。
//
// 自动拦截开关是构造参数而非环境全局量，同一进程内可并存不同策略的
// 解析器，便于测试与灰度。
//
// Resolve 是全函数：任何未决或歧义情形都归结为"不拦截"，永不返回错误。
package xresolve
