package renders

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer 将 Markdown 文本渲染到终端
type MarkdownRenderer struct {
	renderer *glamour.TermRenderer
}

// NewMarkdownRenderer 创建一个新的 Markdown 渲染器
func NewMarkdownRenderer() (*MarkdownRenderer, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		return nil, fmt.Errorf("初始化 Markdown 渲染器失败: %v", err)
	}

	return &MarkdownRenderer{renderer: renderer}, nil
}

// Render 渲染 Markdown 内容，渲染失败时返回原始内容
func (m *MarkdownRenderer) Render(content string) string {
	rendered, err := m.renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

// RenderMarkdown 渲染 Markdown 并输出到终端
// 渲染器初始化失败时直接输出原始内容
func RenderMarkdown(content string) {
	r, err := NewMarkdownRenderer()
	if err != nil {
		fmt.Print(content)
		return
	}
	fmt.Print(r.Render(content))
}
