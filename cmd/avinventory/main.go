package main

import (
	"context"
	"os"

	"go.uber.org/zap"

	"github.com/mamadbah2/avinventory/internal/config"
	"github.com/mamadbah2/avinventory/internal/console"
	"github.com/mamadbah2/avinventory/internal/i18n"
	"github.com/mamadbah2/avinventory/internal/inventory"
	commandsvc "github.com/mamadbah2/avinventory/internal/service/commands"
	"github.com/mamadbah2/avinventory/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.Log))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	catalog := i18n.Lookup(cfg.App.Locale)
	baseLogger.Debug("catalog selected", zap.String("locale", cfg.App.Locale), zap.Stringer("tag", catalog.Tag))

	inv := inventory.New(logger.Named(baseLogger, "inventory"))
	prompter := console.NewPrompter(os.Stdin, os.Stdout, catalog)
	dispatcher := commandsvc.NewService(inv, prompter, catalog, logger.Named(baseLogger, "svc.commands"))

	if err := dispatcher.Run(context.Background()); err != nil {
		baseLogger.Error("session ended with error", zap.Error(err))
	}
}
