package main

import (
	"context"
	"log"
	"os"

	"wallmagic/internal/buildinfo"
	"wallmagic/internal/client/cli"
	"wallmagic/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
