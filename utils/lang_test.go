package utils

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalizeDefaults(t *testing.T) {
	require.NoError(t, InitI18NBundle(""))

	zh := NewLocalizer("zh")
	assert.Equal(t, "全国-44730例", Localize(zh, MsgCountryTitle, map[string]interface{}{"Count": 44730}))
	assert.Equal(t, "湖北新增确诊病例", Localize(zh, MsgFocusNew, map[string]interface{}{"Province": "湖北"}))

	en := NewLocalizer("en")
	assert.Equal(t, "Other provinces new confirmed", Localize(en, MsgOthersNew, nil))

	assert.Equal(t, "unknown_id", Localize(zh, "unknown_id", nil))
}

func TestLocalizeFromDir(t *testing.T) {
	dir, err := ioutil.TempDir("", "i18n")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	err = ioutil.WriteFile(filepath.Join(dir, "en.yaml"), []byte("others_new: \"Rest of China\"\n"), 0644)
	require.NoError(t, err)

	require.NoError(t, InitI18NBundle(dir))
	en := NewLocalizer("en")
	assert.Equal(t, "Rest of China", Localize(en, MsgOthersNew, nil))
	assert.Equal(t, "Nationwide new confirmed", Localize(en, MsgNationalNew, nil))
}
