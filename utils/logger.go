package utils

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogConfig - where and how much to log
type LogConfig struct {
	Level      string
	File       string
	MaxSize    int
	MaxBackups int
}

// InitLog - prefixed text formatter, stdout or a rotating file
func InitLog(cfg LogConfig) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(level)
	}

	log.SetOutput(LogOutput(cfg))
	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
		DisableColors:   cfg.File != "",
	})
}

// LogOutput - rotating writer when a file is configured
func LogOutput(cfg LogConfig) io.Writer {
	if cfg.File == "" {
		return os.Stdout
	}

	return &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
	}
}
