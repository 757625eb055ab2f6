package project

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFixtureTree 在临时目录中创建测试用的文件树
// files 的键是相对路径，使用斜杠分隔；值是文件内容
func WriteFixtureTree(t *testing.T, files map[string][]byte) string {
	t.Helper()
	root := t.TempDir()

	for rel, content := range files {
		fullPath := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			t.Fatalf("创建目录失败: %v", err)
		}
		if err := os.WriteFile(fullPath, content, 0644); err != nil {
			t.Fatalf("写入文件失败: %v", err)
		}
	}
	return root
}
