package main

import (
	"context"
	"log"

	"github.com/sohaibmughall/crm-panel/internal/client/cli"
	"github.com/sohaibmughall/crm-panel/internal/client/config"
	"github.com/sohaibmughall/crm-panel/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg, logging.NewDefault())
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
