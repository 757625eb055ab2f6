package share

// VERSION 版本号
const VERSION = "0.5.1"

// BUILDNAME 制品名称
const BUILDNAME = "kun"

const PREFIX = "KUN_"

const PATH = ".kun"

// DEFAULT_OUTPUT 默认的合并输出文件名
const DEFAULT_OUTPUT = "combined_files.txt"

// 合并输出中的分隔线宽度
const BANNER_WIDTH = 80

const FILE_HEADER_WIDTH = 20

const FILE_FOOTER_WIDTH = 60

var debug = false

// SetDebug 设置全局调试模式
func SetDebug(d bool) {
	debug = d
}

// GetDebug 获取全局调试模式
func GetDebug() bool {
	return debug
}
