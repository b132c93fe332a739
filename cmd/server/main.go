package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rendi001-code/projekrela/internal/api"
	"github.com/rendi001-code/projekrela/internal/api/handlers"
	"github.com/rendi001-code/projekrela/internal/config"
	"github.com/rendi001-code/projekrela/internal/relay"
	"github.com/rendi001-code/projekrela/internal/repositories"
	"golang.org/x/sync/errgroup"
)

// @title Rela Chat API
// @version 1.0
// @description Minimal chat backend with flat-file persistence and a completion relay.
// @BasePath /
func main() {
	cfg := config.Envs

	store, err := repositories.NewStore(cfg.DataDir)
	if err != nil {
		log.Fatalf("Could not initialize data store: %v", err)
	}

	var uploads repositories.UploadStore
	if cfg.StorageBackend == "r2" {
		uploads = repositories.NewR2UploadStore(
			cfg.R2.AccessKeyID,
			cfg.R2.SecretAccessKey,
			cfg.R2.AccountID,
			cfg.R2.BucketName,
			cfg.R2.Region,
			cfg.R2.PublicBaseURL,
		)
	} else {
		uploads, err = repositories.NewDiskUploadStore(cfg.PublicDir)
		if err != nil {
			log.Fatalf("Could not initialize uploads directory: %v", err)
		}
	}

	provider := relay.NewOpenAIClient(cfg.OpenAI.BaseURL, cfg.OpenAI.APIKey, cfg.OpenAI.Model)

	h := handlers.New(store, uploads, provider)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: api.SetupRouter(h),
		// Timeouts prevent resource exhaustion from slow clients
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("Server running at http://localhost:%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
