package exclusion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNormalizeExt 测试扩展名规范化
func TestNormalizeExt(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"log", ".log"},
		{".LOG", ".log"},
		{".log", ".log"},
		{"PyC", ".pyc"},
		{"", ""},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, NormalizeExt(tc.input), "NormalizeExt(%q)", tc.input)
	}
}

// TestRuleVariants 测试字面名和正则模式两种规则变体
func TestRuleVariants(t *testing.T) {
	literal := NewLiteralRule("secret.txt")
	assert.False(t, literal.IsPattern())
	assert.True(t, literal.Matches("secret.txt"))
	assert.False(t, literal.Matches("secret.txt.bak"))

	pattern, err := NewPatternRule(`.*~$`)
	assert.NoError(t, err)
	assert.True(t, pattern.IsPattern())
	assert.True(t, pattern.Matches("notes.md~"))
	assert.False(t, pattern.Matches("notes.md"))

	_, err = NewPatternRule(`[unclosed`)
	assert.Error(t, err)
}

// TestNewUnionsDefaults 用户规则与默认规则取并集
func TestNewUnionsDefaults(t *testing.T) {
	cfg, err := New(Options{
		Dirs:        []string{"generated"},
		Extensions:  []string{"log"},
		UseDefaults: true,
	})
	assert.NoError(t, err)

	// 默认规则仍然生效
	assert.True(t, cfg.ExcludedDir(".git"))
	assert.True(t, cfg.ExcludedDir("node_modules"))
	// 用户规则追加
	assert.True(t, cfg.ExcludedDir("generated"))
	assert.Contains(t, cfg.Extensions(), ".log")
}

// TestNewWithoutDefaults 禁用默认规则时只有用户规则生效
func TestNewWithoutDefaults(t *testing.T) {
	cfg, err := New(Options{
		Dirs:        []string{"generated"},
		UseDefaults: false,
	})
	assert.NoError(t, err)

	assert.False(t, cfg.ExcludedDir(".git"))
	assert.True(t, cfg.ExcludedDir("generated"))
	assert.False(t, cfg.ExcludedFile("main.pyc"))
}

// TestNewRejectsBadPattern 非法正则属于致命配置错误
func TestNewRejectsBadPattern(t *testing.T) {
	_, err := New(Options{
		Patterns: []string{`*bad`},
	})
	assert.Error(t, err)
}

// TestExcludedFile 名称、扩展名、模式、隐藏文件检查任一命中即排除
func TestExcludedFile(t *testing.T) {
	cfg, err := New(Options{
		Extensions:  []string{"log"},
		Names:       []string{"secret.txt"},
		Patterns:    []string{`^tmp_.*`},
		UseDefaults: false,
	})
	assert.NoError(t, err)

	testCases := []struct {
		name     string
		excluded bool
	}{
		{"secret.txt", true},      // 字面名命中
		{"app.log", true},         // 扩展名命中
		{"app.LOG", true},         // 扩展名大小写不敏感
		{"tmp_cache.go", true},    // 模式命中
		{"main.go", false},        //
		{".bashrc", true},         // 隐藏文件
		{".gitignore", false},     // 隐藏文件白名单
		{".editorconfig", false},  // 隐藏文件白名单
		{"archive.tar.log", true}, // 多段扩展名取最后一段
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.excluded, cfg.ExcludedFile(tc.name), "ExcludedFile(%q)", tc.name)
	}
}

// TestIncludeHidden 包含隐藏文件时跳过隐藏文件检查
func TestIncludeHidden(t *testing.T) {
	cfg, err := New(Options{
		IncludeHidden: true,
		UseDefaults:   false,
	})
	assert.NoError(t, err)

	assert.False(t, cfg.ExcludedFile(".bashrc"))

	// 默认规则下 .DS_Store 仍按字面名排除，与隐藏文件策略无关
	withDefaults, err := New(Options{
		IncludeHidden: true,
		UseDefaults:   true,
	})
	assert.NoError(t, err)
	assert.True(t, withDefaults.ExcludedFile(".DS_Store"))
}

// TestDefaultPatternsValid 内置模式必须全部可编译
func TestDefaultPatternsValid(t *testing.T) {
	for _, p := range DefaultPatterns {
		_, err := NewPatternRule(p)
		assert.NoError(t, err, "内置模式 %q 无法编译", p)
	}
}

// TestAccessors 配置访问器返回排序后的列表
func TestAccessors(t *testing.T) {
	cfg, err := New(Options{
		Dirs:        []string{"b", "a"},
		Extensions:  []string{"Z", "a"},
		Names:       []string{"n2", "n1"},
		Patterns:    []string{`p2`, `p1`},
		UseDefaults: false,
	})
	assert.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, cfg.Dirs())
	assert.Equal(t, []string{".a", ".z"}, cfg.Extensions())
	assert.Equal(t, []string{"n1", "n2"}, cfg.Names())
	assert.Equal(t, []string{"p1", "p2"}, cfg.Patterns())
	assert.NotEmpty(t, cfg.HiddenAllowed())
}
