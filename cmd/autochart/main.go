package main

import (
	"context"
	"fmt"

	"autochart/config"
	"autochart/internal/app"
	"autochart/logger"

	"go.uber.org/zap"
)

// Smoke test against the live upstreams: prints the current top stock gainer.
func main() {
	// viper config
	cfg := config.Load()

	// zap logger
	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer log.Sync()

	ctx := context.Background()

	dir, err := app.NewDirectory(ctx, cfg, log)
	if err != nil {
		log.Fatal("failed to build symbol directory", zap.Error(err))
	}

	gainer, err := dir.TopGainer(ctx)
	if err != nil {
		log.Fatal("failed to fetch top gainer", zap.Error(err))
	}
	fmt.Println(gainer)
}
