package output

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sjzsdu/kun/helper"
	"github.com/sjzsdu/kun/project"
	"github.com/sjzsdu/kun/share"
)

// FallbackMarker 非 UTF-8 内容退回 latin-1 解码时插入的标记行
const FallbackMarker = "[Binary/Non-UTF-8 file content - decoded with latin-1]"

// TextExporter 输出规范的纯文本合并格式
// 每个根先写目录横幅，再按相对路径排序写入各文件，文件之间以分隔线隔开
type TextExporter struct {
	progress ProgressFunc
	written  int
}

// NewTextExporter 创建文本导出器
func NewTextExporter(progress ProgressFunc) *TextExporter {
	return &TextExporter{progress: progress}
}

// Export 将所有项目树写入 outputPath
// 输出句柄只打开一次；中断时已写入的部分保留在磁盘上
func (e *TextExporter) Export(ctx context.Context, projects []*project.Project, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("创建输出文件失败: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, doc := range projects {
		if err := e.WriteProject(ctx, w, doc); err != nil {
			// 刷新已有内容后返回，保留部分输出
			w.Flush()
			return err
		}
	}
	return w.Flush()
}

// WriteProject 写入单个根的横幅和全部文件
func (e *TextExporter) WriteProject(ctx context.Context, w io.Writer, doc *project.Project) error {
	entries := doc.FileEntries()
	if len(entries) == 0 {
		return nil
	}

	banner := strings.Repeat("=", share.BANNER_WIDTH)
	fmt.Fprintf(w, "%s\n", banner)
	fmt.Fprintf(w, "Directory: %s\n", doc.GetRootPath())
	fmt.Fprintf(w, "Total files: %d\n", len(entries))
	fmt.Fprintf(w, "%s\n\n", banner)

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		e.writeFile(w, entry)
		e.written++
		if e.progress != nil {
			e.progress(e.written, entry.RelPath)
		}
	}
	return nil
}

// writeFile 写入单个文件的头、内容和尾分隔线
// 读取和解码错误以占位标记嵌入输出，不中断后续文件
func (e *TextExporter) writeFile(w io.Writer, entry project.FileEntry) {
	side := strings.Repeat("=", share.FILE_HEADER_WIDTH)
	fmt.Fprintf(w, "%s FILE: %s %s\n", side, entry.RelPath, side)

	data, err := entry.Node.ReadContent()
	if err != nil {
		fmt.Fprintf(w, "[Error reading file: %v]\n", err)
	} else {
		text, fallback, decErr := helper.DecodeText(data)
		if decErr != nil {
			fmt.Fprintf(w, "[Error reading file: %v]\n", decErr)
		} else {
			if fallback {
				fmt.Fprintf(w, "%s\n", FallbackMarker)
			}
			io.WriteString(w, text)
			if !strings.HasSuffix(text, "\n") {
				io.WriteString(w, "\n")
			}
		}
	}

	fmt.Fprintf(w, "\n%s\n\n", strings.Repeat("=", share.FILE_FOOTER_WIDTH))
}
