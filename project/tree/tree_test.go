package tree

import (
	"strings"
	"testing"

	"github.com/sjzsdu/kun/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildProject(t *testing.T, files map[string][]byte) *project.Project {
	t.Helper()
	root := project.WriteFixtureTree(t, files)
	doc, err := project.BuildProjectTree(root, project.DefaultBuildOptions())
	require.NoError(t, err)
	return doc
}

// TestTree 树状输出包含目录和文件
func TestTree(t *testing.T) {
	doc := buildProject(t, map[string][]byte{
		"a.txt":     []byte("hi"),
		"sub/c.txt": []byte("world"),
	})

	out := Tree(doc.Root())

	assert.True(t, strings.HasPrefix(out, ".\n"))
	assert.Contains(t, out, "sub/")
	assert.Contains(t, out, "a.txt")
	assert.Contains(t, out, "c.txt")
	assert.Contains(t, out, "└── ")

	// 目录优先于文件
	assert.Less(t, strings.Index(out, "sub/"), strings.Index(out, "a.txt"))
}

// TestTreeWithOptions 深度限制和文件开关
func TestTreeWithOptions(t *testing.T) {
	doc := buildProject(t, map[string][]byte{
		"a.txt":          []byte("hi"),
		"sub/deep/c.txt": []byte("world"),
	})

	// 只显示目录
	out := TreeWithOptions(doc.Root(), false, false, -1)
	assert.Contains(t, out, "sub/")
	assert.NotContains(t, out, "a.txt")

	// 深度限制为 2 时不显示更深的内容
	out = TreeWithOptions(doc.Root(), true, false, 2)
	assert.Contains(t, out, "a.txt")
	assert.Contains(t, out, "sub/")
	assert.NotContains(t, out, "c.txt")
}

// TestStats 统计信息按扩展名计数
func TestStats(t *testing.T) {
	doc := buildProject(t, map[string][]byte{
		"a.txt":     []byte("hi"),
		"b.txt":     []byte("hello"),
		"main.go":   []byte("package main"),
		"Makefile":  []byte("all:"),
		"sub/c.txt": []byte("world"),
	})

	stats := Stats(doc.Root())

	assert.Equal(t, 5, stats.FileCount)
	assert.Equal(t, 2, stats.DirectoryCount) // 根目录和 sub
	assert.Equal(t, 3, stats.PerExtension[".txt"])
	assert.Equal(t, 1, stats.PerExtension[".go"])
	assert.Equal(t, 1, stats.PerExtension[NoExtension])
	assert.Equal(t, int64(len("hi")+len("hello")+len("package main")+len("all:")+len("world")), stats.TotalSize)

	assert.Contains(t, stats.String(), "5 files")
	assert.Equal(t, []string{".go", ".txt", NoExtension}, stats.Extensions())
}
