package di

import (
	"github.com/samber/do/v2"

	"github.com/behruz-py/audiokitob-islom-bot/internal/auth"
	"github.com/behruz-py/audiokitob-islom-bot/internal/config"
	"github.com/behruz-py/audiokitob-islom-bot/internal/logger"
	"github.com/behruz-py/audiokitob-islom-bot/internal/ratelimit"
	"github.com/behruz-py/audiokitob-islom-bot/internal/service"
	"github.com/behruz-py/audiokitob-islom-bot/internal/store"
	"github.com/behruz-py/audiokitob-islom-bot/internal/store/sqlite"
	"github.com/behruz-py/audiokitob-islom-bot/internal/validation"
)

// ProvideConfig provides the application configuration.
func ProvideConfig(i do.Injector) (*config.Config, error) {
	return config.LoadConfig()
}

// ProvideLogger provides the structured logger.
func ProvideLogger(i do.Injector) (*logger.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	log := logger.New(logger.Config{
		Level:       logger.ParseLevel(cfg.Logger.Level),
		Environment: cfg.App.Environment,
	})

	log.Info("starting audiokitob bot",
		"environment", cfg.App.Environment,
		"log_level", cfg.Logger.Level,
		"db_path", cfg.Database.Path,
		"static_admins", len(cfg.Bot.AdminIDs),
	)

	return log, nil
}

// StoreHandle wraps the store with shutdown capability.
type StoreHandle struct {
	store.Store
}

// Shutdown implements do.Shutdownable.
func (h *StoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideStore provides the SQLite-backed store.
func ProvideStore(i do.Injector) (*StoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	db, err := sqlite.Open(cfg.Database.Path, log.Logger)
	if err != nil {
		return nil, err
	}

	log.Info("database initialized", "path", cfg.Database.Path)

	return &StoreHandle{Store: db}, nil
}

// ProvideValidator provides the payload validator.
func ProvideValidator(i do.Injector) (*validation.Validator, error) {
	return validation.New(), nil
}

// ProvideFeedbackLimiter provides the per-user feedback rate limiter.
func ProvideFeedbackLimiter(i do.Injector) (*ratelimit.UserRateLimiter, error) {
	cfg := do.MustInvoke[*config.Config](i)
	return ratelimit.New(cfg.Feedback.RPS, cfg.Feedback.Burst), nil
}

// ProvideAuthority provides the admin authority.
func ProvideAuthority(i do.Injector) (*auth.Authority, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	st := do.MustInvoke[*StoreHandle](i)

	return auth.New(cfg.Bot.AdminIDs, st, log.Logger), nil
}

// ProvideFeedbackService provides the feedback service.
func ProvideFeedbackService(i do.Injector) (*service.FeedbackService, error) {
	st := do.MustInvoke[*StoreHandle](i)
	limiter := do.MustInvoke[*ratelimit.UserRateLimiter](i)
	validator := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewFeedbackService(st, limiter, validator, log.Logger), nil
}

// ProvideLibraryService provides the library service.
func ProvideLibraryService(i do.Injector) (*service.LibraryService, error) {
	st := do.MustInvoke[*StoreHandle](i)
	validator := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewLibraryService(st, validator, log.Logger), nil
}
