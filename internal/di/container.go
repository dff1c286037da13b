// Package di provides dependency injection configuration for the bot.
package di

import (
	"github.com/samber/do/v2"

	"github.com/behruz-py/audiokitob-islom-bot/internal/auth"
	"github.com/behruz-py/audiokitob-islom-bot/internal/config"
	"github.com/behruz-py/audiokitob-islom-bot/internal/logger"
	"github.com/behruz-py/audiokitob-islom-bot/internal/ratelimit"
	"github.com/behruz-py/audiokitob-islom-bot/internal/service"
	"github.com/behruz-py/audiokitob-islom-bot/internal/validation"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, ProvideConfig)
	do.Provide(injector, ProvideLogger)

	// Database layer
	do.Provide(injector, ProvideStore)

	// Intake guards
	do.Provide(injector, ProvideValidator)
	do.Provide(injector, ProvideFeedbackLimiter)
	do.Provide(injector, ProvideAuthority)

	// Business services
	do.Provide(injector, ProvideFeedbackService)
	do.Provide(injector, ProvideLibraryService)

	return injector
}

// Bootstrap triggers lazy initialization of every service so configuration
// and database failures surface at startup, not on the first command.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*StoreHandle](injector)
	_ = do.MustInvoke[*validation.Validator](injector)
	_ = do.MustInvoke[*ratelimit.UserRateLimiter](injector)
	_ = do.MustInvoke[*auth.Authority](injector)
	_ = do.MustInvoke[*service.FeedbackService](injector)
	_ = do.MustInvoke[*service.LibraryService](injector)

	return nil
}
