// Package xruleconf 从配置文件加载拦截规则表与自动拦截开关。
//
// 策略引擎假定输入已解析、已校验；xruleconf 就是那个边界：读取 YAML/JSON
// 配置，解析并校验每条规则（模式语法、行为与级别取值），产出只读的
// xrule.Table 与 auto_intercept 开关，供 xresolve.Resolver 构造使用。
// 畸形规则在此被拒绝，不会到达引擎。
//
// # 配置结构
//
//	auto_intercept: false
//	rules:
//	  - pattern: "billing.Service"
//	    behavior: input
//	  - pattern: "billing.*"
//	    behavior: output
//	    level: debug
//	    exception_level: error
//	    target: audit
//
// behavior 必填（none/input/output/both）；level、exception_level、target
// 可选，缺省分别为 info、error、默认 sink。规则顺序即通配匹配顺序
// （first-match-wins）。
//
// # 使用
//
// [New] 从文件路径创建（按扩展名识别 .yaml/.yml/.json）；
// [NewFromBytes] 从字节数据创建（K8s ConfigMap 等场景），需显式指定格式。
package xruleconf
