package project

import (
	"fmt"
)

// ProgressCallback 进度回调函数类型
type ProgressCallback func(current int, filePath string)

// TraverseOption 定义遍历选项
type TraverseOption struct {
	ContinueOnError  bool             // 遇到错误时是否继续
	Errors           []error          // 记录所有错误
	ProgressCallback ProgressCallback // 进度回调函数
	ProcessedFiles   int              // 已处理文件数
}

// TreeTraverser 提供顺序的前序树遍历
// 单线程同步执行，子节点按名称排序保证遍历顺序稳定
type TreeTraverser struct {
	project *Project
	option  *TraverseOption
}

// NewTreeTraverser 创建一个树遍历器
func NewTreeTraverser(p *Project) *TreeTraverser {
	return &TreeTraverser{
		project: p,
	}
}

// WithContinueOnError 设置遇到错误时是否继续
func (t *TreeTraverser) WithContinueOnError(continueOnError bool) *TreeTraverser {
	t.ensureOption()
	t.option.ContinueOnError = continueOnError
	return t
}

// WithProgressCallback 设置进度回调函数
func (t *TreeTraverser) WithProgressCallback(callback ProgressCallback) *TreeTraverser {
	t.ensureOption()
	t.option.ProgressCallback = callback
	t.option.ProcessedFiles = 0
	return t
}

// GetErrors 获取遍历过程中收集的错误
func (t *TreeTraverser) GetErrors() []error {
	if t.option == nil {
		return nil
	}
	return t.option.Errors
}

// HasErrors 检查遍历过程中是否有错误
func (t *TreeTraverser) HasErrors() bool {
	return t.option != nil && len(t.option.Errors) > 0
}

// TraverseNode 遍历指定路径的节点
func (t *TreeTraverser) TraverseNode(visitor NodeVisitor, filePath string) error {
	node, err := t.project.FindNode(filePath)
	if err != nil {
		return fmt.Errorf("文件路径 %s 不存在", filePath)
	}
	return t.Traverse(node, filePath, 0, visitor)
}

// TraverseTree 遍历整个项目树
func (t *TreeTraverser) TraverseTree(visitor NodeVisitor) error {
	if t.project.root == nil {
		return nil
	}
	return t.Traverse(t.project.root, "/", 0, visitor)
}

// Traverse 前序遍历节点
func (t *TreeTraverser) Traverse(node *Node, path string, depth int, visitor NodeVisitor) error {
	t.ensureOption()

	if node == nil {
		return nil
	}

	if !node.IsDir {
		if err := visitor.VisitFile(node, path, depth); err != nil {
			fileErr := &traverseError{
				Path:     path,
				NodeName: node.Name,
				Err:      err,
			}
			if !t.option.ContinueOnError {
				return fileErr
			}
			t.option.Errors = append(t.option.Errors, fileErr)
		}

		// 更新进度
		if t.option.ProgressCallback != nil {
			t.option.ProcessedFiles++
			t.option.ProgressCallback(t.option.ProcessedFiles, path)
		}

		return nil
	}

	if err := visitor.VisitDirectory(node, path, depth); err != nil {
		dirErr := &traverseError{
			Path:     path,
			NodeName: node.Name,
			Err:      err,
		}
		if !t.option.ContinueOnError {
			return dirErr
		}
		t.option.Errors = append(t.option.Errors, dirErr)
	}

	for _, child := range node.SortedChildren() {
		childPath := path + "/" + child.Name
		if path == "/" {
			childPath = "/" + child.Name
		}
		if err := t.Traverse(child, childPath, depth+1, visitor); err != nil {
			if !t.option.ContinueOnError {
				return err
			}
			t.option.Errors = append(t.option.Errors, err)
		}
	}
	return nil
}

func (t *TreeTraverser) ensureOption() {
	if t.option == nil {
		t.option = &TraverseOption{
			Errors: make([]error, 0),
		}
	}
}
