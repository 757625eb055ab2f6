package tree

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sjzsdu/kun/helper"
	"github.com/sjzsdu/kun/project"
)

// Tree 生成树状结构的字符串表示，类似于 Unix tree 命令
func Tree(node *project.Node) string {
	return TreeWithOptions(node, true, false, -1)
}

// TreeWithOptions 生成带选项的树状结构
func TreeWithOptions(node *project.Node, showFiles bool, showHidden bool, maxDepth int) string {
	if node == nil {
		return ""
	}

	var result strings.Builder
	buildTree(node, &result, "", true, true, showFiles, showHidden, 0, maxDepth)
	return result.String()
}

// buildTree 递归构建树状结构
func buildTree(node *project.Node, result *strings.Builder, prefix string, isLast bool, isRoot bool,
	showFiles bool, showHidden bool, currentDepth int, maxDepth int) {

	// 检查深度限制
	if maxDepth > 0 && currentDepth >= maxDepth {
		return
	}

	if !showHidden && node.IsHidden() && !isRoot {
		return
	}
	if !showFiles && !node.IsDir && !isRoot {
		return
	}

	if !isRoot {
		if isLast {
			result.WriteString(prefix + "└── ")
		} else {
			result.WriteString(prefix + "├── ")
		}
	}

	if node.IsDir {
		if isRoot && node.Name == "/" {
			result.WriteString(".") // 根目录显示为 "."
		} else {
			result.WriteString(node.Name + "/")
		}
	} else {
		result.WriteString(node.Name)
		if node.Info != nil {
			result.WriteString(fmt.Sprintf(" (%s)", helper.HumanSize(node.Info.Size())))
		}
	}
	result.WriteString("\n")

	if !node.IsDir {
		return
	}

	// 过滤并排序子节点：目录优先，同类按名称
	children := make([]*project.Node, 0)
	for _, child := range node.SortedChildren() {
		if !showHidden && child.IsHidden() {
			continue
		}
		if !showFiles && !child.IsDir {
			continue
		}
		children = append(children, child)
	}
	sort.SliceStable(children, func(i, j int) bool {
		if children[i].IsDir != children[j].IsDir {
			return children[i].IsDir
		}
		return children[i].Name < children[j].Name
	})

	var newPrefix string
	if isRoot {
		newPrefix = ""
	} else if isLast {
		newPrefix = prefix + "    "
	} else {
		newPrefix = prefix + "│   "
	}

	for i, child := range children {
		isChildLast := i == len(children)-1
		buildTree(child, result, newPrefix, isChildLast, false,
			showFiles, showHidden, currentDepth+1, maxDepth)
	}
}
