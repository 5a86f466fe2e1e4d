// Package resolvecache 提供接口方法定位结果的内部备忘缓存。
//
// 接口方法到具体实现的定位需要线性扫描已注册类型，代价与类型数成正比。
// 实践中 (接口, 方法) 对的基数很小且结果稳定，用一个容量受限的 LRU
// 备忘即可把重复定位摊薄为一次 map 查找。
//
// 只缓存定位成功的结果：失败结果不缓存，后续注册新类型后同一接口方法
// 可能变为可定位，缓存负结果会引入陈旧性。已注册类型只增不改序，
// 因此正结果在追加注册下保持正确，无需失效。
//
// 设计决策: 不设置 TTL。hashicorp/golang-lru 的 expirable.LRU 仅在
// TTL > 0 时启动后台清理 goroutine；定位结果不会因时间推移而失效，
// 容量上限已足以约束内存，省去 goroutine 也省去关停它的麻烦。
package resolvecache
