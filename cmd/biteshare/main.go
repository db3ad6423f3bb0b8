package main

import (
	"context"
	"os"

	"github.com/dmitrijs2005/biteshare/internal/buildinfo"
	"github.com/dmitrijs2005/biteshare/internal/client/cli"
	"github.com/dmitrijs2005/biteshare/internal/client/config"
	"github.com/dmitrijs2005/biteshare/internal/logging"
	"golang.org/x/term"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	log := logging.New(cfg.LogLevel, os.Stderr, !term.IsTerminal(int(os.Stderr.Fd())))

	app, err := cli.Open(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "failed to start", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	app.Run(ctx)

}
