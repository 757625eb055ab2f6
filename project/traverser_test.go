package project

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTreeTraverserOrder 顺序遍历按名称排序访问
func TestTreeTraverserOrder(t *testing.T) {
	root := WriteFixtureTree(t, map[string][]byte{
		"b.txt":     []byte("b"),
		"a.txt":     []byte("a"),
		"sub/c.txt": []byte("c"),
	})

	doc, err := BuildProjectTree(root, DefaultBuildOptions())
	assert.NoError(t, err)

	var visited []string
	visitor := VisitorFunc(func(path string, node *Node, depth int) error {
		if !node.IsDir {
			visited = append(visited, path)
		}
		return nil
	})

	traverser := NewTreeTraverser(doc)
	err = traverser.TraverseTree(visitor)
	assert.NoError(t, err)
	assert.Equal(t, []string{"/a.txt", "/b.txt", "/sub/c.txt"}, visited)
}

// TestTreeTraverserContinueOnError 继续模式收集错误而不中断
func TestTreeTraverserContinueOnError(t *testing.T) {
	root := WriteFixtureTree(t, map[string][]byte{
		"a.txt": []byte("a"),
		"b.txt": []byte("b"),
	})

	doc, err := BuildProjectTree(root, DefaultBuildOptions())
	assert.NoError(t, err)

	boom := errors.New("boom")
	var visited []string
	visitor := VisitorFunc(func(path string, node *Node, depth int) error {
		if !node.IsDir {
			visited = append(visited, path)
			return boom
		}
		return nil
	})

	traverser := NewTreeTraverser(doc).WithContinueOnError(true)
	err = traverser.TraverseTree(visitor)
	assert.NoError(t, err)
	assert.True(t, traverser.HasErrors())
	assert.Len(t, traverser.GetErrors(), 2)
	assert.Equal(t, []string{"/a.txt", "/b.txt"}, visited)

	// 非继续模式遇到第一个错误即返回
	visited = nil
	traverser = NewTreeTraverser(doc)
	err = traverser.TraverseTree(visitor)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, boom))
	assert.Equal(t, []string{"/a.txt"}, visited)
}

// TestTreeTraverserProgress 进度回调按文件计数
func TestTreeTraverserProgress(t *testing.T) {
	root := WriteFixtureTree(t, map[string][]byte{
		"a.txt": []byte("a"),
		"b.txt": []byte("b"),
	})

	doc, err := BuildProjectTree(root, DefaultBuildOptions())
	assert.NoError(t, err)

	var counts []int
	visitor := VisitorFunc(func(path string, node *Node, depth int) error {
		return nil
	})

	traverser := NewTreeTraverser(doc).WithProgressCallback(func(current int, filePath string) {
		counts = append(counts, current)
	})
	err = traverser.TraverseTree(visitor)
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2}, counts)
}

// TestTraverseNode 从子路径开始遍历
func TestTraverseNode(t *testing.T) {
	root := WriteFixtureTree(t, map[string][]byte{
		"a.txt":     []byte("a"),
		"sub/c.txt": []byte("c"),
	})

	doc, err := BuildProjectTree(root, DefaultBuildOptions())
	assert.NoError(t, err)

	var visited []string
	visitor := VisitorFunc(func(path string, node *Node, depth int) error {
		if !node.IsDir {
			visited = append(visited, path)
		}
		return nil
	})

	traverser := NewTreeTraverser(doc)
	err = traverser.TraverseNode(visitor, "/sub")
	assert.NoError(t, err)
	assert.Equal(t, []string{"/sub/c.txt"}, visited)

	err = traverser.TraverseNode(visitor, "/missing")
	assert.Error(t, err)
}
