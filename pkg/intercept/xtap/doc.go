// Package xtap 提供决策驱动的调用记录：按 Decision 把调用记录路由到命名 sink。
//
// 策略引擎本身只产出决策；xtap 是调用侧的薄伴生层，负责把"捕获什么、
// 什么级别、投递到哪"落到 log/slog 上。代理/织入机制仍是外部协作者，
// xtap 只提供它需要的两块积木：
//
//   - [Recorder]：sink 名称 -> *slog.Logger 的只读路由表，按决策级别与
//     捕获行为产出结构化记录；未知 sink 回退默认 sink。
//   - [Tap.Invoke]：函数包装辅助，查询决策缓存、计时执行、按决策记录，
//     决策为"不拦截"时零记录直通。
//
// # 记录形态
//
// 正常完成以 Decision.Level 记录，失败以 Decision.ExceptionLevel 记录；
// 入参/出参仅在对应捕获行为开启时进入记录。属性键固定为
// method/duration/input/output/error，便于下游解析。
package xtap
