package helper

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// DecodeText 将文件内容解码为字符串
// 优先按 UTF-8 处理；包含非法字节时退回 latin-1 解码，并通过 fallback 标记
// latin-1 对任意字节序列都有定义，因此该解码不会失败
func DecodeText(data []byte) (text string, fallback bool, err error) {
	if utf8.Valid(data) {
		return string(data), false, nil
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", true, err
	}
	return string(decoded), true, nil
}
