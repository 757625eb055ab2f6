package exclusion

import (
	"regexp"
)

// Rule 表示一条文件名排除规则
// 字面名和正则模式是同一种规则的两个变体，统一通过 Matches 判定
type Rule struct {
	literal string
	pattern *regexp.Regexp
}

// NewLiteralRule 创建字面文件名规则
func NewLiteralRule(name string) Rule {
	return Rule{literal: name}
}

// NewPatternRule 创建正则模式规则，表达式非法时返回错误
func NewPatternRule(expr string) (Rule, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Rule{}, err
	}
	return Rule{pattern: re}, nil
}

// Matches 判断文件名是否命中该规则
func (r Rule) Matches(name string) bool {
	if r.pattern != nil {
		return r.pattern.MatchString(name)
	}
	return r.literal == name
}

// IsPattern 判断规则是否为正则模式变体
func (r Rule) IsPattern() bool {
	return r.pattern != nil
}

// String 返回规则的原始表示
func (r Rule) String() string {
	if r.pattern != nil {
		return r.pattern.String()
	}
	return r.literal
}
