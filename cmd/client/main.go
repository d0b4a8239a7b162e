package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/recipekeeper/internal/buildinfo"
	"github.com/dmitrijs2005/recipekeeper/internal/client/cli"
	"github.com/dmitrijs2005/recipekeeper/internal/client/client"
	"github.com/dmitrijs2005/recipekeeper/internal/client/config"
	"github.com/dmitrijs2005/recipekeeper/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, "info")

	apiClient, err := client.NewAPIClient(cfg.ServerEndpointAddr, cfg.HealthEndpointAddr, cfg.RequestTimeout)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app := cli.NewApp(cfg, apiClient, logger)
	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}
