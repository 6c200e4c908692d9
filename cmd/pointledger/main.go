package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/talx-hub/point-ledger/internal/model"
	"github.com/talx-hub/point-ledger/internal/service"
)

func main() {
	if err := service.RunServer(); err != nil {
		slog.Default().LogAttrs(context.Background(),
			slog.LevelError,
			"point ledger exited",
			slog.Any(model.KeyLoggerError, err),
		)
		os.Exit(1)
	}
}
