// Package xrule 提供基于名称模式的拦截规则表。
//
// 规则表是无标记方法的配置兜底：以 (名称模式 -> 决策) 的有序条目匹配
// 类型全名（如 "billing.Service"）。规则由外部配置产生，引擎只读不改。
//
// # 模式语法
//
// 模式要么是精确的类型全名，要么是以通配符 '*' 结尾的前缀
// （如 "billing.*"）。只支持尾部通配，不支持中缀与正则；
// 匹配按字节精确比较（ordinal），与 locale 无关。
//
// # 匹配算法
//
//  1. 先按精确全名查表；
//  2. 未命中时按声明顺序扫描通配条目，第一个前缀命中者胜出。
//
// 多个通配条目同时命中时采用 first-match-wins 而非最长前缀——这是
// 刻意的、文档化的策略：需要最长前缀语义的调用方应自行将更具体的
// 规则排在前面。
//
// # 边界校验
//
// [NewTable] 在构造边界拒绝畸形模式（空模式、通配符出现在非尾部）。
// 构造成功后的 Table 不可变，可被任意多个 goroutine 并发查询。
package xrule
