package project

import (
	"errors"
	"fmt"
)

// 根路径校验失败属于致命配置错误，向调用方返回并终止该根的处理
var (
	// ErrRootNotFound 根路径不存在
	ErrRootNotFound = errors.New("目录不存在")
	// ErrNotDirectory 根路径不是目录
	ErrNotDirectory = errors.New("路径不是目录")
)

// traverseError 封装遍历过程中的错误信息
type traverseError struct {
	Path     string
	NodeName string
	Err      error
}

func (e *traverseError) Error() string {
	return fmt.Sprintf("遍历错误 [%s] 在节点 '%s': %v", e.Path, e.NodeName, e.Err)
}

func (e *traverseError) Unwrap() error {
	return e.Err
}
