package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestGetEnvKey 配置键到环境变量名的转换
func TestGetEnvKey(t *testing.T) {
	assert.Equal(t, "KUN_OUTPUT", GetEnvKey("output"))
	assert.Equal(t, "KUN_DEBUG", GetEnvKey("debug"))
}

// TestSetAndGetConfig 设置后可以用短键和完整环境变量名读取
func TestSetAndGetConfig(t *testing.T) {
	defer ClearConfig("output")

	SetConfig("output", "result.txt")
	assert.Equal(t, "result.txt", GetConfig("output"))
	assert.Equal(t, "result.txt", GetConfig("KUN_OUTPUT"))
	assert.Equal(t, "result.txt", os.Getenv("KUN_OUTPUT"))
}

// TestClearConfig 清除后读取为空
func TestClearConfig(t *testing.T) {
	SetConfig("output", "result.txt")
	ClearConfig("output")

	assert.Equal(t, "", GetConfig("output"))
	assert.Equal(t, "", os.Getenv("KUN_OUTPUT"))
}

// TestGetConfigWithDefault 未设置时返回默认值
func TestGetConfigWithDefault(t *testing.T) {
	ClearConfig("missing")
	assert.Equal(t, "fallback", GetConfigWithDefault("missing", "fallback"))

	SetConfig("missing", "present")
	defer ClearConfig("missing")
	assert.Equal(t, "present", GetConfigWithDefault("missing", "fallback"))
}
