package logger

import (
	"github.com/rs/zerolog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	for level, expected := range map[string]zerolog.Level{
		LOG_LEVEL_DEBUG: zerolog.DebugLevel,
		LOG_LEVEL_INFO:  zerolog.InfoLevel,
		LOG_LEVEL_WARN:  zerolog.WarnLevel,
		LOG_LEVEL_ERROR: zerolog.ErrorLevel,
		LOG_LEVEL_FATAL: zerolog.FatalLevel,
		LOG_LEVEL_PANIC: zerolog.PanicLevel,
		"verbose":       zerolog.InfoLevel,
	} {
		if got := ParseLevel(level); got != expected {
			t.Errorf("ParseLevel(%q) = %v, expected %v", level, got, expected)
		}
	}
}
