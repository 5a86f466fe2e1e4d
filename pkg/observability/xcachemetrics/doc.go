// Package xcachemetrics 把决策缓存的计数暴露为 OpenTelemetry 指标。
//
// 缓存热路径只付出原子自增；指标导出采用异步可观测计数器，采集发生在
// MeterProvider 的 reader 回调里，对查询路径零额外开销。
//
// 指标：
//
//   - xintercept.cache.hits          已注册条目命中次数
//   - xintercept.cache.ondemand      未注册类型按需解析次数（稳态应接近 0）
//   - xintercept.cache.redirects     接口方法转发次数
//   - xintercept.cache.registrations 类型注册次数
//
// [Register] 返回的 Registration 在缓存生命周期结束时应 Unregister，
// 避免回调观测已废弃的缓存。
package xcachemetrics
