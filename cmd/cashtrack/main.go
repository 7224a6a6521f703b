package main

import (
	"context"
	"log"
	"os"

	"github.com/cashtrack/cashtrack/internal/buildinfo"
	"github.com/cashtrack/cashtrack/internal/cli"
	"github.com/cashtrack/cashtrack/internal/config"
	"github.com/joho/godotenv"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	// A missing .env is fine, environment variables still apply.
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
