package output

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sjzsdu/kun/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetExporter 根据输出扩展名选择导出器
func TestGetExporter(t *testing.T) {
	if _, ok := GetExporter("out.md", nil).(*MarkdownExporter); !ok {
		t.Error("out.md 应该使用 MarkdownExporter")
	}
	if _, ok := GetExporter("out.xml", nil).(*XMLExporter); !ok {
		t.Error("out.xml 应该使用 XMLExporter")
	}
	if _, ok := GetExporter("out.pdf", nil).(*PDFExporter); !ok {
		t.Error("out.pdf 应该使用 PDFExporter")
	}
	if _, ok := GetExporter("out.txt", nil).(*TextExporter); !ok {
		t.Error("out.txt 应该使用 TextExporter")
	}
	if _, ok := GetExporter("combined", nil).(*TextExporter); !ok {
		t.Error("未识别的扩展名应该回退到 TextExporter")
	}
}

// TestMarkdownExporter Markdown 输出包含代码块和文件头
func TestMarkdownExporter(t *testing.T) {
	doc := buildProject(t, map[string][]byte{
		"main.go": []byte("package main\n"),
	})

	outputPath := filepath.Join(t.TempDir(), "out.md")
	exporter := NewMarkdownExporter(nil)
	require.NoError(t, exporter.Export(context.Background(), []*project.Project{doc}, outputPath))

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "## 📄 main.go")
	assert.Contains(t, out, "```go\npackage main\n```")
	assert.Contains(t, out, doc.GetRootPath())
}

// TestXMLExporter XML 输出可以反序列化并保留内容
func TestXMLExporter(t *testing.T) {
	doc := buildProject(t, map[string][]byte{
		"a.txt": []byte("hello <xml> world"),
	})

	outputPath := filepath.Join(t.TempDir(), "out.xml")
	exporter := NewXMLExporter()
	require.NoError(t, exporter.Export(context.Background(), []*project.Project{doc}, outputPath))

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	out := string(data)

	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, `path="a.txt"`)
	assert.Contains(t, out, "hello <xml> world")
}

// TestPDFExporter PDF 输出生成合法的文件头
func TestPDFExporter(t *testing.T) {
	doc := buildProject(t, map[string][]byte{
		"a.txt": []byte("hello"),
	})

	outputPath := filepath.Join(t.TempDir(), "out.pdf")
	exporter := NewPDFExporter(nil)
	require.NoError(t, exporter.Export(context.Background(), []*project.Project{doc}, outputPath))

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}

// TestInfoReport 统计摘要包含文件数、大小和扩展名计数
func TestInfoReport(t *testing.T) {
	doc := buildProject(t, map[string][]byte{
		"a.txt":    []byte("hi"),
		"b.txt":    []byte("hello"),
		"main.go":  []byte("package main"),
		"Makefile": []byte("all:"),
	})

	report := InfoReport([]*project.Project{doc})

	assert.Contains(t, report, doc.GetRootPath())
	assert.Contains(t, report, "4")
	assert.Contains(t, report, "`.txt`: 2")
	assert.Contains(t, report, "`.go`: 1")
}
