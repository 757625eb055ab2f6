package helper

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sjzsdu/kun/share"
)

// StandardizePath 标准化路径
func StandardizePath(path string) string {
	cleanPath := path
	if len(cleanPath) > 0 && cleanPath[0] != '/' {
		cleanPath = "/" + cleanPath
	}

	// 处理 Windows 路径分隔符
	cleanPath = strings.ReplaceAll(cleanPath, "\\", "/")

	// 处理多余的 /
	prevPath := ""
	for prevPath != cleanPath {
		prevPath = cleanPath
		cleanPath = strings.ReplaceAll(cleanPath, "//", "/")
	}

	return cleanPath
}

// GetPath 返回用户配置目录下指定名称的路径
func GetPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	if name == "" {
		return filepath.Join(home, share.PATH)
	}
	return filepath.Join(home, share.PATH, name)
}

// GetTargetPath 确定要处理的目标路径
// 指定了仓库地址时克隆到临时目录并返回克隆路径，否则解析工作目录的绝对路径
func GetTargetPath(workDir string, repoURL string) (string, error) {
	if repoURL != "" {
		return CloneProject(repoURL)
	}
	if workDir == "" {
		workDir = "."
	}
	return filepath.Abs(workDir)
}
