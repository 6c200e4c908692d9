package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/talx-hub/point-ledger/internal/model"
)

func New(logLevel slog.Level) *slog.Logger {
	return slog.New(
		slog.NewTextHandler(
			os.Stdout,
			&slog.HandlerOptions{Level: logLevel},
		))
}

// ParseLevel falls back to info for unknown names.
func ParseLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo
	}
	return l
}

func WithContext(ctx context.Context, log *slog.Logger) context.Context {
	ctxWithLogger := context.WithValue(ctx, model.KeyContextLogger, log)
	return ctxWithLogger
}

func FromContext(ctx context.Context) *slog.Logger {
	if log := FromContextOrNil(ctx); log != nil {
		return log
	}
	return slog.Default()
}

func FromContextOrNil(ctx context.Context) *slog.Logger {
	logRaw := ctx.Value(model.KeyContextLogger)
	if logRaw == nil {
		return nil
	}
	if log, ok := logRaw.(*slog.Logger); ok {
		return log
	}
	return nil
}
