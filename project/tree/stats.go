package tree

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sjzsdu/kun/helper"
	"github.com/sjzsdu/kun/project"
)

// NoExtension 无扩展名文件在统计中的归类键
const NoExtension = "no extension"

// Statistics 树的统计信息
type Statistics struct {
	TotalNodes     int            // 总节点数
	DirectoryCount int            // 目录数量
	FileCount      int            // 文件数量
	TotalSize      int64          // 总大小（字节）
	PerExtension   map[string]int // 每个扩展名的文件数
}

// Stats 返回树的统计信息
func Stats(node *project.Node) Statistics {
	stats := Statistics{
		PerExtension: make(map[string]int),
	}
	if node == nil {
		return stats
	}
	collectStats(node, &stats)
	return stats
}

// collectStats 递归收集统计信息
func collectStats(node *project.Node, stats *Statistics) {
	stats.TotalNodes++

	if node.IsDir {
		stats.DirectoryCount++
		for _, child := range node.SortedChildren() {
			collectStats(child, stats)
		}
		return
	}

	stats.FileCount++
	if node.Info != nil {
		stats.TotalSize += node.Info.Size()
	}

	ext := filepath.Ext(node.Name)
	if ext == "" || ext == node.Name {
		// 无扩展名，或 .gitignore 这类纯点前缀名
		stats.PerExtension[NoExtension]++
		return
	}
	stats.PerExtension[strings.ToLower(ext)]++
}

// Extensions 返回排序后的扩展名列表
func (s Statistics) Extensions() []string {
	out := make([]string, 0, len(s.PerExtension))
	for ext := range s.PerExtension {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

// String 返回统计信息的字符串表示
func (s Statistics) String() string {
	return fmt.Sprintf("%d directories, %d files, %s total",
		s.DirectoryCount, s.FileCount, helper.HumanSize(s.TotalSize))
}
