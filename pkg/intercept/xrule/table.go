package xrule

import (
	"fmt"
	"strings"

	"github.com/omeyang/xintercept/pkg/intercept/xpolicy"
)

// Rule 是一条 (名称模式 -> 决策) 规则。
type Rule struct {
	// Pattern 精确类型全名，或以 '*' 结尾的前缀模式。
	Pattern string

	// Decision 模式命中时返回的决策。
	Decision xpolicy.Decision
}

// Table 是不可变的规则表。
// 必须通过 [NewTable] 创建；创建后只读，可并发查询。
type Table struct {
	exact     map[string]xpolicy.Decision
	wildcards []wildcardRule
	size      int
}

// wildcardRule 已剥离通配符的前缀规则，保持声明顺序。
type wildcardRule struct {
	prefix   string
	decision xpolicy.Decision
}

// NewTable 由有序规则构造规则表。
//
// 在此边界完成模式校验：空模式返回 ErrEmptyPattern；'*' 出现在非尾部
// 返回 ErrBadWildcard。同一精确模式重复声明时后者覆盖前者（与键值表
// 语义一致）；通配模式保持声明顺序，匹配时 first-match-wins。
func NewTable(rules ...Rule) (*Table, error) {
	t := &Table{
		exact: make(map[string]xpolicy.Decision, len(rules)),
	}
	for i, r := range rules {
		if r.Pattern == "" {
			return nil, fmt.Errorf("%w (rule %d)", ErrEmptyPattern, i)
		}
		star := strings.IndexByte(r.Pattern, '*')
		switch {
		case star < 0:
			t.exact[r.Pattern] = r.Decision
		case star == len(r.Pattern)-1:
			prefix := r.Pattern[:star]
			if strings.IndexByte(prefix, '*') >= 0 {
				return nil, fmt.Errorf("%w: %q (rule %d)", ErrBadWildcard, r.Pattern, i)
			}
			t.wildcards = append(t.wildcards, wildcardRule{prefix: prefix, decision: r.Decision})
		default:
			return nil, fmt.Errorf("%w: %q (rule %d)", ErrBadWildcard, r.Pattern, i)
		}
	}
	t.size = len(t.exact) + len(t.wildcards)
	return t, nil
}

// Match 返回 fullName 命中的决策。
//
// 先精确匹配，再按声明顺序扫描通配前缀，第一个命中者胜出。
// 匹配按字节精确比较。
func (t *Table) Match(fullName string) (xpolicy.Decision, bool) {
	if fullName == "" {
		return xpolicy.Decision{}, false
	}
	if d, ok := t.exact[fullName]; ok {
		return d, true
	}
	for _, w := range t.wildcards {
		if strings.HasPrefix(fullName, w.prefix) {
			return w.decision, true
		}
	}
	return xpolicy.Decision{}, false
}

// Len 返回规则条数（精确规则去重后）。
func (t *Table) Len() int {
	return t.size
}
