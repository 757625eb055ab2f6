package output

import (
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/sjzsdu/kun/helper"
	"github.com/sjzsdu/kun/project"
)

// PDFExporter 输出 PDF 格式的合并文档
// 使用内置 cp1252 字体，超出字符集的内容经 Unicode 转换器近似处理
type PDFExporter struct {
	progress ProgressFunc
	written  int
}

// NewPDFExporter 创建 PDF 导出器
func NewPDFExporter(progress ProgressFunc) *PDFExporter {
	return &PDFExporter{progress: progress}
}

// Export 将所有项目树写入一个 PDF 文件
func (e *PDFExporter) Export(ctx context.Context, projects []*project.Project, outputPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, doc := range projects {
		entries := doc.FileEntries()
		if len(entries) == 0 {
			continue
		}

		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 16)
		pdf.MultiCell(190, 8, tr(doc.GetRootPath()), "", "L", false)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(190, 6, tr(fmt.Sprintf("Total files: %d", len(entries))), "", "L", false)
		pdf.Ln(4)

		for _, entry := range entries {
			if err := ctx.Err(); err != nil {
				return err
			}
			e.writeFile(pdf, tr, entry)
			e.written++
			if e.progress != nil {
				e.progress(e.written, entry.RelPath)
			}
		}
	}

	return pdf.OutputFileAndClose(outputPath)
}

func (e *PDFExporter) writeFile(pdf *gofpdf.Fpdf, tr func(string) string, entry project.FileEntry) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.MultiCell(190, 6, tr(entry.RelPath), "", "L", false)
	pdf.SetFont("Courier", "", 8)

	data, err := entry.Node.ReadContent()
	if err != nil {
		pdf.MultiCell(190, 4, tr(fmt.Sprintf("[Error reading file: %v]", err)), "", "L", false)
		pdf.Ln(4)
		return
	}

	text, fallback, decErr := helper.DecodeText(data)
	if decErr != nil {
		pdf.MultiCell(190, 4, tr(fmt.Sprintf("[Error reading file: %v]", decErr)), "", "L", false)
		pdf.Ln(4)
		return
	}
	if fallback {
		pdf.MultiCell(190, 4, tr(FallbackMarker), "", "L", false)
	}

	pdf.MultiCell(190, 4, tr(text), "", "L", false)
	pdf.Ln(4)
}
