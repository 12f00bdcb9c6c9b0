package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/skillbridge/marketplace-client/internal/cli"
	"github.com/skillbridge/marketplace-client/internal/core/service"
	"github.com/skillbridge/marketplace-client/internal/infrastructure/api"
	"github.com/skillbridge/marketplace-client/internal/infrastructure/storage"
	"github.com/skillbridge/marketplace-client/internal/infrastructure/upload"
	"github.com/skillbridge/marketplace-client/internal/pkg/config"
	"github.com/skillbridge/marketplace-client/pkg/logger"
)

func main() {
	// .env is optional; real environments set the variables directly.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	sessionPath := cfg.SessionFile
	if sessionPath == "" {
		var err error
		sessionPath, err = storage.DefaultPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot determine session file location: %v\n", err)
			os.Exit(1)
		}
	}

	store := storage.NewFileStore(sessionPath)
	backend := api.New(cfg.APIBase, store, log)
	session := service.NewSession(backend, store, log)
	uploader := upload.NewCloudinary(upload.Config{
		CloudName:    cfg.Cloudinary.CloudName,
		UploadPreset: cfg.Cloudinary.UploadPreset,
	}, log)

	app := cli.New(cfg, log, backend, session, uploader, os.Stdin, os.Stdout, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(app.Run(ctx, os.Args[1:]))
}
