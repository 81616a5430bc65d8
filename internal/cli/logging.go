package cli

import (
	"io"
	"log/slog"
	"time"

	"github.com/phsym/zeroslog"
	"github.com/rs/zerolog"

	"github.com/casualjim/chatparts/pkg/slogx"
)

// newLogger writes human readable logs to w through zerolog and installs the
// result as the default slog logger.
func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	output := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Stamp}
	zl := zerolog.New(output).With().Timestamp().Logger()
	logger := slog.New(zeroslog.NewHandler(zl, &zeroslog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger.With(slogx.LoggerName("chatparts"))
}
