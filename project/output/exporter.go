package output

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/sjzsdu/kun/project"
)

// Exporter 将一个或多个项目树合并导出到单一输出文件
// 多个根共享同一个输出，依次写入
type Exporter interface {
	Export(ctx context.Context, projects []*project.Project, outputPath string) error
}

// ProgressFunc 每写完一个文件回调一次
type ProgressFunc func(current int, relPath string)

// GetExporter 根据输出文件扩展名返回对应的导出器
// 未识别的扩展名使用文本格式
func GetExporter(outputFile string, progress ProgressFunc) Exporter {
	switch strings.ToLower(filepath.Ext(outputFile)) {
	case ".md":
		return NewMarkdownExporter(progress)
	case ".xml":
		return NewXMLExporter()
	case ".pdf":
		return NewPDFExporter(progress)
	default:
		return NewTextExporter(progress)
	}
}
