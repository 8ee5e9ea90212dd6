package utils

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/natefinch/lumberjack.v2"
)

func TestLogOutput(t *testing.T) {
	assert.Equal(t, os.Stdout, LogOutput(LogConfig{}))

	w := LogOutput(LogConfig{File: "logs/ncov.log", MaxSize: 10, MaxBackups: 3})
	lj, ok := w.(*lumberjack.Logger)
	assert.True(t, ok)
	assert.Equal(t, "logs/ncov.log", lj.Filename)
	assert.Equal(t, 3, lj.MaxBackups)
}
