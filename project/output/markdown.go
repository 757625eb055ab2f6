package output

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sjzsdu/kun/helper"
	"github.com/sjzsdu/kun/project"
	"github.com/sjzsdu/kun/share"
)

// MarkdownExporter 输出 Markdown 格式的合并文档
// 每个文件渲染为带语言标识的代码块
type MarkdownExporter struct {
	progress ProgressFunc
	written  int
}

// NewMarkdownExporter 创建 Markdown 导出器
func NewMarkdownExporter(progress ProgressFunc) *MarkdownExporter {
	return &MarkdownExporter{progress: progress}
}

// Export 将所有项目树写入 outputPath
func (e *MarkdownExporter) Export(ctx context.Context, projects []*project.Project, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("创建输出文件失败: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, doc := range projects {
		entries := doc.FileEntries()
		if len(entries) == 0 {
			continue
		}

		fmt.Fprintf(w, "# 📦 %s\n\n", doc.GetRootPath())
		fmt.Fprintf(w, "> 此文档由 %s 工具自动生成，共 %d 个文件\n\n---\n\n", share.BUILDNAME, len(entries))

		for _, entry := range entries {
			if err := ctx.Err(); err != nil {
				w.Flush()
				return err
			}
			e.writeFile(w, entry)
			e.written++
			if e.progress != nil {
				e.progress(e.written, entry.RelPath)
			}
		}
	}
	return w.Flush()
}

func (e *MarkdownExporter) writeFile(w *bufio.Writer, entry project.FileEntry) {
	fmt.Fprintf(w, "## 📄 %s\n\n", entry.RelPath)
	if entry.Node.Info != nil {
		fmt.Fprintf(w, "**大小:** %d bytes  \n\n", entry.Node.Info.Size())
	}

	data, err := entry.Node.ReadContent()
	if err != nil {
		fmt.Fprintf(w, "`[Error reading file: %v]`\n\n", err)
		return
	}

	text, fallback, decErr := helper.DecodeText(data)
	if decErr != nil {
		fmt.Fprintf(w, "`[Error reading file: %v]`\n\n", decErr)
		return
	}
	if fallback {
		fmt.Fprintf(w, "`%s`\n\n", FallbackMarker)
	}

	lang := helper.GetLanguageFromExtension(filepath.Ext(entry.RelPath))
	fmt.Fprintf(w, "```%s\n", lang)
	w.WriteString(text)
	if !strings.HasSuffix(text, "\n") {
		w.WriteString("\n")
	}
	w.WriteString("```\n\n")
}
