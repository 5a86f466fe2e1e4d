// Package observability 提供可观测性相关的子包。
//
// 子包列表：
//   - xcachemetrics: 决策缓存的 OpenTelemetry 指标导出
//
// 设计原则：
//   - 遵循 OpenTelemetry 语义规范
//   - 异步观测，不向缓存热路径引入任何开销
package observability
