package output

import (
	"fmt"
	"strings"

	"github.com/sjzsdu/kun/lang"
	"github.com/sjzsdu/kun/project"
	"github.com/sjzsdu/kun/project/tree"
)

// InfoReport 生成所有根的统计摘要，Markdown 格式
// 包含文件总数、总大小和按扩展名的计数
func InfoReport(projects []*project.Project) string {
	var b strings.Builder

	for _, doc := range projects {
		stats := tree.Stats(doc.Root())

		b.WriteString(fmt.Sprintf("## %s: %s\n\n", lang.T("Directory"), doc.GetRootPath()))
		b.WriteString(fmt.Sprintf("- %s: %d\n", lang.T("Total files"), stats.FileCount))
		b.WriteString(fmt.Sprintf("- %s: %d bytes (%.2f MB)\n\n",
			lang.T("Total size"), stats.TotalSize, float64(stats.TotalSize)/(1024*1024)))

		if len(stats.PerExtension) == 0 {
			continue
		}

		b.WriteString(fmt.Sprintf("### %s\n\n", lang.T("File types")))
		for _, ext := range stats.Extensions() {
			label := ext
			if ext == tree.NoExtension {
				label = lang.T("no extension")
			}
			b.WriteString(fmt.Sprintf("- `%s`: %d\n", label, stats.PerExtension[ext]))
		}
		b.WriteString("\n")
	}

	return b.String()
}
