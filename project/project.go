package project

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sjzsdu/kun/helper"
)

// NewProject 创建一棵空的目录树
func NewProject(rootPath string) *Project {
	root := &Node{
		Name:     "/",
		Path:     rootPath,
		IsDir:    true,
		Children: make(map[string]*Node),
	}

	nodes := make(map[string]*Node)
	nodes["/"] = root

	return &Project{
		root:     root,
		rootPath: rootPath,
		nodes:    nodes,
	}
}

// GetRootPath 返回项目根路径
func (p *Project) GetRootPath() string {
	return p.rootPath
}

// Root 返回根节点
func (p *Project) Root() *Node {
	return p.root
}

// IsEmpty 判断项目树是否没有任何文件
func (p *Project) IsEmpty() bool {
	return len(p.FileEntries()) == 0
}

// FindNode 查找指定项目路径的节点
func (p *Project) FindNode(path string) (*Node, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	cleanPath := helper.StandardizePath(path)
	node, ok := p.nodes[cleanPath]
	if !ok {
		return nil, fmt.Errorf("文件路径 %s 不存在", cleanPath)
	}
	return node, nil
}

// FileEntry 表示一个文件节点及其相对根的路径
type FileEntry struct {
	Node    *Node
	RelPath string
}

// FileEntries 返回项目中的所有文件，按相对路径做字典序排序
// 收集通过树遍历器完成，排序保证同一棵树上的输出在多次运行间逐字节一致
func (p *Project) FileEntries() []FileEntry {
	var entries []FileEntry
	collector := VisitorFunc(func(path string, node *Node, depth int) error {
		if !node.IsDir {
			entries = append(entries, FileEntry{
				Node:    node,
				RelPath: strings.TrimPrefix(path, "/"),
			})
		}
		return nil
	})
	NewTreeTraverser(p).TraverseTree(collector)

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].RelPath < entries[j].RelPath
	})
	return entries
}

// Files 返回排序后的相对路径列表
func (p *Project) Files() []string {
	entries := p.FileEntries()
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.RelPath)
	}
	return out
}

// addNode 将节点挂到父节点并登记到路径映射
// projPath 必须是标准化后的项目路径
func (p *Project) addNode(projPath string, node *Node) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	parentPath := parentOf(projPath)
	parent, ok := p.nodes[parentPath]
	if !ok {
		return fmt.Errorf("父目录 %s 不存在", parentPath)
	}

	node.Parent = parent
	parent.mu.Lock()
	parent.Children[node.Name] = node
	parent.mu.Unlock()

	p.nodes[projPath] = node
	return nil
}

// CreateDir 创建目录节点
func (p *Project) CreateDir(projPath string, info fs.FileInfo) error {
	projPath = helper.StandardizePath(projPath)
	node := &Node{
		Name:     filepath.Base(projPath),
		IsDir:    true,
		Path:     filepath.Join(p.rootPath, filepath.FromSlash(strings.TrimPrefix(projPath, "/"))),
		Info:     info,
		Children: make(map[string]*Node),
	}
	return p.addNode(projPath, node)
}

// CreateFileNode 创建文件节点，内容懒加载
func (p *Project) CreateFileNode(projPath string, info fs.FileInfo) error {
	projPath = helper.StandardizePath(projPath)
	node := &Node{
		Name:  filepath.Base(projPath),
		IsDir: false,
		Path:  filepath.Join(p.rootPath, filepath.FromSlash(strings.TrimPrefix(projPath, "/"))),
		Info:  info,
	}
	return p.addNode(projPath, node)
}

func parentOf(projPath string) string {
	idx := strings.LastIndex(projPath, "/")
	if idx <= 0 {
		return "/"
	}
	return projPath[:idx]
}
