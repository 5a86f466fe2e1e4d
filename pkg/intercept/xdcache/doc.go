// Package xdcache 提供按方法身份预计算的拦截决策缓存。
//
// 这是整个策略引擎的读取热点：外部拦截机制在每次被拦截调用前（或调用时）
// 查询一次决策。缓存的职责是让注册过的类型的稳态查询接近 O(1) 且零分配，
// 把标记检视、规则匹配、优先级合成的全部开销前置到注册阶段。
//
// # 使用方式
//
// 启动/组装阶段对每个将被拦截的具体服务类型调用一次 [Cache.RegisterType]；
// 之后任意多个 goroutine 并发调用 [Cache.Lookup]。
//
// # 查询路径
//
//  1. 所属类型已注册：一次 sync.Map 读 + 一次 map 读，零分配、零反射遍历
//     （亚百纳秒预算所在的路径）；类型被整体禁用时短路返回"不拦截"。
//  2. 所属类型是接口：对已注册类型做实现定位（结果经内部 LRU 备忘），
//     再按具体方法递归查询。
//  3. 所属类型未注册：按需走一次完整解析，结果不缓存——正确但不保证快，
//     调用方应在启动时注册所有要拦截的类型。
//
// # 发布语义
//
// 每个类型的条目在旁侧完整构建后以单次 Store 原子安装，读方永远看不到
// 半成品；重复注册是幂等的整条目替换，并发的重复注册经 singleflight
// 合并为一次计算。条目安装后内部永不修改。
//
// # 失败面
//
// Lookup 是全函数，永不失败。只有 RegisterType 可能返回错误，且仅限
// 无效输入（nil、非具体类型）——这类错误指示组装期缺陷，应当中止启动
// 而非捕获重试。
package xdcache
