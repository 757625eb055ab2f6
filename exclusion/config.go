package exclusion

import (
	"fmt"
	"sort"
	"strings"
)

// Options 构造排除配置的输入
// 四类规则均为可选，UseDefaults 为 true 时先用内置默认集合做种子，
// 再并入用户提供的值（取并集，不做替换）
type Options struct {
	Dirs          []string
	Extensions    []string
	Names         []string
	Patterns      []string
	UseDefaults   bool
	IncludeHidden bool
}

// Config 一次调用期间不可变的排除配置
// 各类检查相互独立，任意一类命中即排除
type Config struct {
	dirs          map[string]struct{}
	exts          map[string]struct{}
	names         []Rule
	hiddenAllow   map[string]struct{}
	includeHidden bool
}

// New 根据选项构造排除配置
// 用户提供的正则模式非法时返回错误
func New(opts Options) (*Config, error) {
	c := &Config{
		dirs:          make(map[string]struct{}),
		exts:          make(map[string]struct{}),
		hiddenAllow:   make(map[string]struct{}),
		includeHidden: opts.IncludeHidden,
	}

	if opts.UseDefaults {
		for _, d := range DefaultDirs {
			c.dirs[d] = struct{}{}
		}
		for _, e := range DefaultExtensions {
			c.exts[NormalizeExt(e)] = struct{}{}
		}
		for _, n := range DefaultNames {
			c.names = append(c.names, NewLiteralRule(n))
		}
		for _, p := range DefaultPatterns {
			rule, err := NewPatternRule(p)
			if err != nil {
				// 内置模式在测试中保证合法
				return nil, fmt.Errorf("内置排除模式非法 %q: %w", p, err)
			}
			c.names = append(c.names, rule)
		}
	}

	for _, d := range opts.Dirs {
		c.dirs[d] = struct{}{}
	}
	for _, e := range opts.Extensions {
		c.exts[NormalizeExt(e)] = struct{}{}
	}
	for _, n := range opts.Names {
		c.names = append(c.names, NewLiteralRule(n))
	}
	for _, p := range opts.Patterns {
		rule, err := NewPatternRule(p)
		if err != nil {
			return nil, fmt.Errorf("排除模式非法 %q: %w", p, err)
		}
		c.names = append(c.names, rule)
	}

	for _, n := range HiddenAllowlist {
		c.hiddenAllow[n] = struct{}{}
	}

	return c, nil
}

// NormalizeExt 规范化扩展名为小写、带点前缀的形式
// "log" 和 ".LOG" 都规范化为 ".log"
func NormalizeExt(ext string) string {
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return strings.ToLower(ext)
}

// ExcludedDir 判断目录名是否被排除
func (c *Config) ExcludedDir(name string) bool {
	_, ok := c.dirs[name]
	return ok
}

// ExcludedFile 判断文件名是否被排除
// 名称、扩展名、模式、隐藏文件检查相互独立，命中任意一项即排除
func (c *Config) ExcludedFile(name string) bool {
	for _, rule := range c.names {
		if rule.Matches(name) {
			return true
		}
	}

	if ext := fileExt(name); ext != "" {
		if _, ok := c.exts[ext]; ok {
			return true
		}
	}

	if c.hiddenExcluded(name) {
		return true
	}

	return false
}

// hiddenExcluded 按隐藏文件约定判断
// 以点开头且不在白名单中的文件视为隐藏文件
func (c *Config) hiddenExcluded(name string) bool {
	if c.includeHidden {
		return false
	}
	if !strings.HasPrefix(name, ".") {
		return false
	}
	_, allowed := c.hiddenAllow[name]
	return !allowed
}

// fileExt 返回文件名的小写扩展名
// 类似 filepath.Ext，但把 ".gitignore" 这类纯点前缀名视为无扩展名
func fileExt(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx <= 0 {
		return ""
	}
	return strings.ToLower(name[idx:])
}

// Dirs 返回排序后的排除目录名列表
func (c *Config) Dirs() []string {
	out := make([]string, 0, len(c.dirs))
	for d := range c.dirs {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// Extensions 返回排序后的排除扩展名列表
func (c *Config) Extensions() []string {
	out := make([]string, 0, len(c.exts))
	for e := range c.exts {
		out = append(out, e)
	}
	sort.Strings(out)
	return out
}

// Names 返回字面文件名规则列表
func (c *Config) Names() []string {
	var out []string
	for _, r := range c.names {
		if !r.IsPattern() {
			out = append(out, r.String())
		}
	}
	sort.Strings(out)
	return out
}

// Patterns 返回正则模式规则列表
func (c *Config) Patterns() []string {
	var out []string
	for _, r := range c.names {
		if r.IsPattern() {
			out = append(out, r.String())
		}
	}
	sort.Strings(out)
	return out
}

// IncludeHidden 返回是否包含隐藏文件
func (c *Config) IncludeHidden() bool {
	return c.includeHidden
}

// HiddenAllowed 返回排序后的隐藏文件白名单
func (c *Config) HiddenAllowed() []string {
	out := make([]string, 0, len(c.hiddenAllow))
	for n := range c.hiddenAllow {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
