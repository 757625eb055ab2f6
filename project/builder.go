package project

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sjzsdu/kun/exclusion"
)

// BuildOptions 构建项目树的选项
type BuildOptions struct {
	// Exclusion 本次调用使用的排除配置，构造后不可变
	Exclusion *exclusion.Config
}

// DefaultBuildOptions 返回启用默认排除规则的构建选项
func DefaultBuildOptions() BuildOptions {
	cfg, _ := exclusion.New(exclusion.Options{UseDefaults: true})
	return BuildOptions{Exclusion: cfg}
}

// BuildProjectTree 遍历目标路径并构建过滤后的项目树
// 根路径不存在或不是目录时返回致命错误；被排除的目录在下降之前剪枝，
// 其下的文件递归地不会出现在结果中
func BuildProjectTree(targetPath string, options BuildOptions) (*Project, error) {
	absPath, err := filepath.Abs(targetPath)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRootNotFound, absPath)
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, absPath)
	}

	excl := options.Exclusion
	if excl == nil {
		excl, err = exclusion.New(exclusion.Options{UseDefaults: true})
		if err != nil {
			return nil, err
		}
	}

	doc := NewProject(absPath)

	err = filepath.WalkDir(absPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// 根目录读取失败是致命的，其余目录跳过继续
			if path == absPath {
				return err
			}
			return nil
		}

		if path == absPath {
			return nil
		}

		relPath, err := filepath.Rel(absPath, path)
		if err != nil {
			return err
		}
		projPath := "/" + filepath.ToSlash(relPath)

		if d.IsDir() {
			// 剪枝判定发生在下降之前
			if excl.ExcludedDir(d.Name()) {
				return filepath.SkipDir
			}
			dirInfo, err := d.Info()
			if err != nil {
				return filepath.SkipDir
			}
			return doc.CreateDir(projPath, dirInfo)
		}

		if excl.ExcludedFile(d.Name()) {
			return nil
		}

		fileInfo, err := d.Info()
		if err != nil {
			// 文件元信息读取失败时跳过该文件
			return nil
		}
		return doc.CreateFileNode(projPath, fileInfo)
	})
	if err != nil {
		return nil, err
	}

	return doc, nil
}
