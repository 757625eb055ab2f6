package exclusion

// 内置的默认排除规则，覆盖常见的构建产物、依赖和版本控制目录
// 这些集合只作为 New 的种子值，不会被运行期修改

// DefaultDirs 默认排除的目录名
var DefaultDirs = []string{
	".git",
	".svn",
	".hg",
	".vscode",
	".idea",
	"node_modules",
	"__pycache__",
	".pytest_cache",
	".mypy_cache",
	"vendor",
	"bin",
	"obj",
	"dist",
	"build",
	"target",
	".venv",
	"venv",
}

// DefaultExtensions 默认排除的文件扩展名，均为规范化后的形式
var DefaultExtensions = []string{
	".pyc",
	".pyo",
	".log",
	".exe",
	".dll",
	".so",
	".dylib",
	".o",
	".a",
	".class",
	".jar",
	".zip",
	".tar",
	".gz",
	".7z",
	".png",
	".jpg",
	".jpeg",
	".gif",
	".ico",
	".pdf",
	".sqlite",
	".db",
}

// DefaultNames 默认排除的完整文件名
var DefaultNames = []string{
	".DS_Store",
	"Thumbs.db",
	"desktop.ini",
	"package-lock.json",
	"yarn.lock",
	"pnpm-lock.yaml",
}

// DefaultPatterns 默认排除的正则模式，覆盖编辑器备份等临时文件
var DefaultPatterns = []string{
	`.*~$`,
	`^#.*#$`,
	`.*\.swp$`,
	`.*\.tmp$`,
}

// HiddenAllowlist 隐藏文件白名单
// 以点开头但属于项目常规内容的文件不按隐藏文件排除
var HiddenAllowlist = []string{
	".gitignore",
	".gitattributes",
	".editorconfig",
	".dockerignore",
	".env.example",
}
