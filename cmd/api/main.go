package main

import (
	"context"
	"fmt"
	"os"

	"github.com/AlibekovAA/book-reviews/backend/internal/common/bootstrap"
	srv "github.com/AlibekovAA/book-reviews/backend/internal/common/server"
)

func main() {
	app, err := bootstrap.NewApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	log := app.Log

	ctx := context.Background()
	if err := app.Seed(ctx); err != nil {
		log.Fatalf("failed to seed: %v", err)
	}

	server := srv.NewServer(srv.DefaultServerConfig(app.Config.HTTPPort), app.Handler())

	shutdownHooks := []srv.ShutdownHook{
		func(ctx context.Context) error {
			log.Infof("%s service: %d reviews held at shutdown", bootstrap.ServiceName, app.Reviews.Count())
			return nil
		},
	}

	if err := srv.Run(ctx, server, log, bootstrap.ServiceName, shutdownHooks); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
