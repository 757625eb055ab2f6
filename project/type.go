package project

import (
	"io/fs"
	"sync"
)

type Node struct {
	Name     string
	IsDir    bool
	Path     string
	Info     fs.FileInfo
	Content  []byte
	Children map[string]*Node
	Parent   *Node

	contentLoaded bool
	mu            sync.RWMutex
}

// Project 表示一棵过滤后的目录树
type Project struct {
	root     *Node
	rootPath string
	nodes    map[string]*Node
	mu       sync.RWMutex
}

// NodeVisitor 定义节点访问接口
type NodeVisitor interface {
	VisitFile(node *Node, path string, depth int) error
	VisitDirectory(node *Node, path string, depth int) error
}

// VisitorFunc 定义了访问节点的函数类型
type VisitorFunc func(path string, node *Node, depth int) error

// VisitFile 实现 NodeVisitor 接口
func (f VisitorFunc) VisitFile(node *Node, path string, depth int) error {
	return f(path, node, depth)
}

// VisitDirectory 实现 NodeVisitor 接口
func (f VisitorFunc) VisitDirectory(node *Node, path string, depth int) error {
	return f(path, node, depth)
}
