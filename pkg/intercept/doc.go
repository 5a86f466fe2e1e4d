// Package intercept 提供方法拦截决策相关的子包。
//
// 子包列表：
//   - xpolicy: 决策模型（捕获行为、记录级别、投递目标）
//   - xmarker: 声明式标记的登记与解读
//   - xrule: 模式规则表，支持前缀通配
//   - xident: 方法身份与反射归一化、接口实现定位
//   - xresolve: 按优先级合成最终决策
//   - xdcache: 一次写入、并发只读的决策缓存
//   - xtap: 调用包装与记录投递
//
// 设计原则：
//   - 决策在注册阶段一次算清，稳态查询零分配
//   - 标记压过配置，禁用压过启用
//   - 查询永不失败，未命中即"不拦截"
package intercept
