package resolvecache

import (
	"reflect"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// DefaultSize 备忘缓存默认容量。
// 每个条目对应一个 (接口, 方法) 对，实践中基数很小，1024 已相当宽裕。
const DefaultSize = 1024

// Key 标识一次接口方法定位。
type Key struct {
	// Iface 接口类型。
	Iface reflect.Type

	// Method 接口方法名。
	Method string
}

// Result 是一次成功定位的结果。
type Result struct {
	// Type 实现该接口的具体类型（已归一化）。
	Type reflect.Type

	// Method 具体类型上对应的方法。
	Method reflect.Method
}

// Cache 是 (接口, 方法) -> 定位结果的 LRU 备忘。
// 所有方法并发安全。
type Cache struct {
	lru *expirable.LRU[Key, Result]
}

// New 创建备忘缓存。size <= 0 时使用 DefaultSize。
func New(size int) *Cache {
	if size <= 0 {
		size = DefaultSize
	}
	// TTL 为 0：不过期、不启动后台清理 goroutine。
	return &Cache{lru: expirable.NewLRU[Key, Result](size, nil, 0)}
}

// Get 返回已备忘的定位结果。
func (c *Cache) Get(iface reflect.Type, method string) (Result, bool) {
	return c.lru.Get(Key{Iface: iface, Method: method})
}

// Set 备忘一次成功的定位结果。
func (c *Cache) Set(iface reflect.Type, method string, r Result) {
	c.lru.Add(Key{Iface: iface, Method: method}, r)
}

// Purge 清空全部备忘。
func (c *Cache) Purge() {
	c.lru.Purge()
}

// Len 返回当前备忘条数。
func (c *Cache) Len() int {
	return c.lru.Len()
}
