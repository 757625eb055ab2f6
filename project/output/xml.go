package output

import (
	"context"
	"encoding/xml"
	"fmt"
	"os"

	"github.com/sjzsdu/kun/helper"
	"github.com/sjzsdu/kun/project"
)

// XMLExporter 输出 XML 格式的合并文档
type XMLExporter struct{}

// NewXMLExporter 创建 XML 导出器
func NewXMLExporter() *XMLExporter {
	return &XMLExporter{}
}

type xmlPack struct {
	XMLName  xml.Name     `xml:"pack"`
	Projects []xmlProject `xml:"project"`
}

type xmlProject struct {
	Root  string    `xml:"root,attr"`
	Total int       `xml:"total,attr"`
	Files []xmlFile `xml:"file"`
}

type xmlFile struct {
	Path    string `xml:"path,attr"`
	Error   string `xml:"error,attr,omitempty"`
	Content string `xml:",cdata"`
}

// Export 将所有项目树序列化为一个 XML 文档
func (e *XMLExporter) Export(ctx context.Context, projects []*project.Project, outputPath string) error {
	pack := xmlPack{}

	for _, doc := range projects {
		entries := doc.FileEntries()
		proj := xmlProject{
			Root:  doc.GetRootPath(),
			Total: len(entries),
		}

		for _, entry := range entries {
			if err := ctx.Err(); err != nil {
				return err
			}
			proj.Files = append(proj.Files, toXMLFile(entry))
		}
		pack.Projects = append(pack.Projects, proj)
	}

	data, err := xml.MarshalIndent(pack, "", "  ")
	if err != nil {
		return fmt.Errorf("序列化 XML 失败: %w", err)
	}

	out := append([]byte(xml.Header), data...)
	out = append(out, '\n')
	return os.WriteFile(outputPath, out, 0644)
}

func toXMLFile(entry project.FileEntry) xmlFile {
	data, err := entry.Node.ReadContent()
	if err != nil {
		return xmlFile{Path: entry.RelPath, Error: err.Error()}
	}

	text, fallback, decErr := helper.DecodeText(data)
	if decErr != nil {
		return xmlFile{Path: entry.RelPath, Error: decErr.Error()}
	}

	f := xmlFile{Path: entry.RelPath, Content: text}
	if fallback {
		f.Error = "decoded with latin-1"
	}
	return f
}
