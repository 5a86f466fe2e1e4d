// Package config 提供配置加载相关的子包。
//
// 子包列表：
//   - xruleconf: 从 YAML/JSON 加载拦截规则表
//
// 设计原则：
//   - 加载即校验，非法规则在启动阶段失败
//   - 解析后的配置只读，可并发使用
package config
