package slogx

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"
)

// Error returns a slog.Attr representing the provided error.
// The attribute key is "error" and the value is the error's message.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.String("error", err.Error())
}

const (
	// KeyLoggerName is the key for the logger name attribute.
	KeyLoggerName = "logger"
)

// LoggerName creates a slog.Attr with the provided logger name.
// The attribute key is defined by KeyLoggerName.
func LoggerName(name string) slog.Attr {
	return slog.String(KeyLoggerName, name)
}

// Type records the dynamic Go type of value, which is what matters when
// content of an unexpected shape shows up. The value itself is not logged.
func Type(key string, value any) slog.Attr {
	if value == nil {
		return slog.String(key, "nil")
	}
	return slog.String(key, fmt.Sprintf("%T", value))
}

// Preview creates a slog.Attr with s flattened to a single line and cut to
// at most maxLen bytes, followed by "..." when it was cut. The cut never
// splits a multi-byte rune.
func Preview(key, s string, maxLen int) slog.Attr {
	s = strings.ReplaceAll(s, "\n", " ")
	if maxLen >= 0 && len(s) > maxLen {
		cut := maxLen
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut] + "..."
	}
	return slog.String(key, s)
}
