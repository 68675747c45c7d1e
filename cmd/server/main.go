package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/foundrmate/internal/logging"
	"github.com/dmitrijs2005/foundrmate/internal/server"
	"github.com/dmitrijs2005/foundrmate/internal/server/config"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewJSON(os.Stdout, cfg.LogLevel)

	app, err := server.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}

	app.Run(ctx)
}
