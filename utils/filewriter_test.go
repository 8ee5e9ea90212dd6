package utils

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "filewriter")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	p := filepath.Join(dir, "nested", "212.json")
	require.NoError(t, WriteFile(p, []byte("[]")))

	b, err := ioutil.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))

	require.NoError(t, WriteFile(p, []byte("[1]")))
	b, _ = ioutil.ReadFile(p)
	assert.Equal(t, "[1]", string(b))

	files, _ := ioutil.ReadDir(filepath.Dir(p))
	assert.Equal(t, 1, len(files), "temp files are cleaned up")
}
