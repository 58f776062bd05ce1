// Package logx is a thin leveled wrapper around the standard logger.
package logx

import (
	"log"
	"os"
	"sync/atomic"
)

type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var current atomic.Int32

var logger = log.New(os.Stdout, "", log.LstdFlags|log.LUTC)

func SetLevel(l Level) { current.Store(int32(l)) }

func enabled(l Level) bool { return int32(l) >= current.Load() }

func Debug(v ...any) {
	if enabled(LevelDebug) {
		logger.Println(append([]any{"[DEBUG]"}, v...)...)
	}
}

func Debugf(format string, v ...any) {
	if enabled(LevelDebug) {
		logger.Printf("[DEBUG] "+format, v...)
	}
}

func Info(v ...any) {
	if enabled(LevelInfo) {
		logger.Println(append([]any{"[INFO]"}, v...)...)
	}
}

func Infof(format string, v ...any) {
	if enabled(LevelInfo) {
		logger.Printf("[INFO] "+format, v...)
	}
}

func Warn(v ...any) {
	if enabled(LevelWarn) {
		logger.Println(append([]any{"[WARN]"}, v...)...)
	}
}

func Warnf(format string, v ...any) {
	if enabled(LevelWarn) {
		logger.Printf("[WARN] "+format, v...)
	}
}

func Error(v ...any) {
	if enabled(LevelError) {
		logger.Println(append([]any{"[ERROR]"}, v...)...)
	}
}

func Errorf(format string, v ...any) {
	if enabled(LevelError) {
		logger.Printf("[ERROR] "+format, v...)
	}
}

func Fatalf(format string, v ...any) {
	logger.Printf("[FATAL] "+format, v...)
	os.Exit(1)
}
