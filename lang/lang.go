package lang

import (
	"embed"
	"encoding/json"
	"os"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/sjzsdu/kun/share"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

var localizer *i18n.Localizer

func init() {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	// 加载内置的翻译文件，加载失败时退回英文
	entries, err := localeFS.ReadDir("locales")
	if err == nil {
		for _, entry := range entries {
			data, err := localeFS.ReadFile("locales/" + entry.Name())
			if err != nil {
				continue
			}
			bundle.ParseMessageFileBytes(data, entry.Name())
		}
	}

	localizer = i18n.NewLocalizer(bundle, DetectLocale()...)
}

// DetectLocale 检测当前语言环境，优先级: KUN_LANG > LANG > 英文
func DetectLocale() []string {
	var locales []string
	if v := os.Getenv(share.PREFIX + "LANG"); v != "" {
		locales = append(locales, v)
	}
	if v := os.Getenv("LANG"); v != "" {
		// 去掉编码后缀，例如 zh_CN.UTF-8 -> zh-CN
		v = strings.SplitN(v, ".", 2)[0]
		locales = append(locales, strings.ReplaceAll(v, "_", "-"))
	}
	locales = append(locales, language.English.String())
	return locales
}

// T 翻译指定的消息，未找到翻译时原样返回
func T(msgID string) string {
	if localizer == nil {
		return msgID
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID:    msgID,
			Other: msgID,
		},
	})
	if err != nil {
		return msgID
	}
	return msg
}
