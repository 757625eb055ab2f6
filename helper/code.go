package helper

import (
	"fmt"
	"strings"
)

// GetLanguageFromExtension 根据文件扩展名返回对应的语言标识
func GetLanguageFromExtension(ext string) string {
	ext = strings.ToLower(ext)
	langMap := map[string]string{
		".go":         "go",
		".py":         "python",
		".js":         "javascript",
		".ts":         "typescript",
		".jsx":        "jsx",
		".tsx":        "tsx",
		".java":       "java",
		".cpp":        "cpp",
		".c":          "c",
		".h":          "c",
		".hpp":        "cpp",
		".cs":         "csharp",
		".php":        "php",
		".rb":         "ruby",
		".rs":         "rust",
		".swift":      "swift",
		".kt":         "kotlin",
		".scala":      "scala",
		".sh":         "bash",
		".yaml":       "yaml",
		".yml":        "yaml",
		".json":       "json",
		".xml":        "xml",
		".html":       "html",
		".css":        "css",
		".scss":       "scss",
		".less":       "less",
		".sql":        "sql",
		".md":         "markdown",
		".txt":        "text",
		".cfg":        "ini",
		".ini":        "ini",
		".toml":       "toml",
		".dockerfile": "dockerfile",
	}

	if lang, ok := langMap[ext]; ok {
		return lang
	}
	return ""
}

// HumanSize 将字节数格式化为可读的大小
func HumanSize(size int64) string {
	if size < 1024 {
		return fmt.Sprintf("%d B", size)
	} else if size < 1024*1024 {
		return fmt.Sprintf("%.1f KB", float64(size)/1024)
	} else if size < 1024*1024*1024 {
		return fmt.Sprintf("%.1f MB", float64(size)/(1024*1024))
	}
	return fmt.Sprintf("%.1f GB", float64(size)/(1024*1024*1024))
}
