package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/ErikMirg/BSC-Portal/internal/buildinfo"
	"github.com/ErikMirg/BSC-Portal/internal/client/cli"
	"github.com/ErikMirg/BSC-Portal/internal/client/config"
	"github.com/ErikMirg/BSC-Portal/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
