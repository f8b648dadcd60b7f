package main

import (
	"context"
	"log"

	"github.com/bamsemats/moonadmin/internal/app"
	"github.com/bamsemats/moonadmin/internal/config"
)

func main() {

	ctx := context.Background()
	cfg, err := config.LoadConfig()

	if err != nil {
		log.Fatalf("%v", err)
	}

	a := app.NewApp(cfg)

	if err := a.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}
