package project

import (
	"os"
	"sort"
)

// ReadContent 返回文件内容，首次调用时从磁盘懒加载
// 读取失败时不缓存错误，下次调用会重试
func (n *Node) ReadContent() ([]byte, error) {
	if n.IsDir {
		return nil, nil
	}

	n.mu.RLock()
	if n.contentLoaded {
		content := n.Content
		n.mu.RUnlock()
		return content, nil
	}
	n.mu.RUnlock()

	content, err := os.ReadFile(n.Path)
	if err != nil {
		return nil, err
	}

	n.mu.Lock()
	n.Content = content
	n.contentLoaded = true
	n.mu.Unlock()

	return content, nil
}

// SortedChildren 返回按名称排序的子节点，目录不优先
func (n *Node) SortedChildren() []*Node {
	n.mu.RLock()
	children := make([]*Node, 0, len(n.Children))
	for _, child := range n.Children {
		children = append(children, child)
	}
	n.mu.RUnlock()

	sort.Slice(children, func(i, j int) bool {
		return children[i].Name < children[j].Name
	})
	return children
}

// CountNodes 计算节点及其子节点的总数
func (n *Node) CountNodes() int {
	if n == nil {
		return 0
	}

	n.mu.RLock()
	defer n.mu.RUnlock()

	count := 1
	for _, child := range n.Children {
		count += child.CountNodes()
	}
	return count
}

// IsHidden 判断节点名是否以点开头
func (n *Node) IsHidden() bool {
	return len(n.Name) > 0 && n.Name[0] == '.'
}
