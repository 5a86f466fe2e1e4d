package xdcache

import "sync/atomic"

// stats 内部原子计数器。热路径只付出一次原子自增。
type stats struct {
	hits          atomic.Uint64
	onDemand      atomic.Uint64
	redirects     atomic.Uint64
	registrations atomic.Uint64
}

// Stats 是缓存的计数快照。
type Stats struct {
	// Hits 命中已注册条目的查询次数（热路径）。
	Hits uint64

	// OnDemand 未注册类型的按需解析次数。稳态下应接近 0，
	// 持续增长说明有类型漏注册。
	OnDemand uint64

	// Redirects 接口方法转发次数。
	Redirects uint64

	// Registrations 类型注册（含替换）次数。
	Registrations uint64
}

// Stats 返回计数快照。各计数独立读取，非跨字段一致性快照。
func (c *Cache) Stats() Stats {
	return Stats{
		Hits:          c.stats.hits.Load(),
		OnDemand:      c.stats.onDemand.Load(),
		Redirects:     c.stats.redirects.Load(),
		Registrations: c.stats.registrations.Load(),
	}
}
