// Package main provides the entry point for the audiokitob bot daemon.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/do/v2"

	"github.com/behruz-py/audiokitob-islom-bot/internal/di"
	"github.com/behruz-py/audiokitob-islom-bot/internal/logger"
)

func main() {
	injector := di.NewContainer()

	if err := di.Bootstrap(injector); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to bootstrap bot: %v\n", err)
		os.Exit(1)
	}

	log := do.MustInvoke[*logger.Logger](injector)

	// Wait for shutdown signal.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down gracefully")

	if err := injector.Shutdown(); err != nil {
		log.Error("shutdown error", "error", err)
	}

	// The store handle closes the database through do.Shutdownable, but a
	// failed container shutdown must not leave WAL files behind.
	if storeHandle, err := do.Invoke[*di.StoreHandle](injector); err == nil {
		if err := storeHandle.Shutdown(); err != nil {
			log.Error("failed to close database", "error", err)
		}
	}

	log.Info("bot stopped")
}
