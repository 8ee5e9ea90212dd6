package utils

import (
	"os"
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

// message ids of chart titles and series names
const (
	MsgNationalNew   = "national_new"
	MsgFocusNew      = "focus_new"
	MsgOthersNew     = "others_new"
	MsgCountryTitle  = "country_title"
	MsgProvinceTitle = "province_title"
)

var bundle *i18n.Bundle

var defaultMessages = map[language.Tag][]*i18n.Message{
	language.Chinese: {
		{ID: MsgNationalNew, Other: "全国新增确诊病例"},
		{ID: MsgFocusNew, Other: "{{.Province}}新增确诊病例"},
		{ID: MsgOthersNew, Other: "其他省份新增病例"},
		{ID: MsgCountryTitle, Other: "全国-{{.Count}}例"},
		{ID: MsgProvinceTitle, Other: "{{.Name}}-{{.Count}}例"},
	},
	language.English: {
		{ID: MsgNationalNew, Other: "Nationwide new confirmed"},
		{ID: MsgFocusNew, Other: "{{.Province}} new confirmed"},
		{ID: MsgOthersNew, Other: "Other provinces new confirmed"},
		{ID: MsgCountryTitle, Other: "China - {{.Count}} cases"},
		{ID: MsgProvinceTitle, Other: "{{.Name}} - {{.Count}} cases"},
	},
}

// InitI18NBundle - built-in zh and en messages, overridden by zh.yaml / en.yaml
// under dir when present
func InitI18NBundle(dir string) error {
	bundle = i18n.NewBundle(language.Chinese)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	for tag, messages := range defaultMessages {
		if err := bundle.AddMessages(tag, messages...); nil != err {
			return err
		}
	}

	if dir == "" {
		return nil
	}

	for _, name := range []string{"zh.yaml", "en.yaml"} {
		p := path.Join(dir, name)
		if _, err := os.Stat(p); os.IsNotExist(err) {
			continue
		}
		if _, err := bundle.LoadMessageFile(p); nil != err {
			return err
		}
	}
	return nil
}

func NewLocalizer(lang string) *i18n.Localizer {
	if nil == bundle {
		_ = InitI18NBundle("")
	}
	return i18n.NewLocalizer(bundle, lang)
}

// Localize - message by id, the id itself when nothing matches
func Localize(localizer *i18n.Localizer, id string, data map[string]interface{}) string {
	s, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if nil != err {
		return id
	}
	return s
}
