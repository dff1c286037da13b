package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/behruz-py/audiokitob-islom-bot/internal/domain"
	"github.com/behruz-py/audiokitob-islom-bot/internal/normalize"
	"github.com/behruz-py/audiokitob-islom-bot/internal/ratelimit"
	"github.com/behruz-py/audiokitob-islom-bot/internal/store"
	"github.com/behruz-py/audiokitob-islom-bot/internal/validation"
)

// FeedbackService handles feedback intake and the admin review view.
type FeedbackService struct {
	store     store.Store
	limiter   *ratelimit.UserRateLimiter
	validator *validation.Validator
	logger    *slog.Logger
}

// NewFeedbackService creates a new feedback service.
func NewFeedbackService(store store.Store, limiter *ratelimit.UserRateLimiter, validator *validation.Validator, logger *slog.Logger) *FeedbackService {
	return &FeedbackService{
		store:     store,
		limiter:   limiter,
		validator: validator,
		logger:    logger,
	}
}

// SubmitInput is a feedback submission from the conversation.
type SubmitInput struct {
	UserID   int64  `json:"user_id" validate:"required,gt=0"`
	Name     string `json:"name" validate:"max=128"`
	Username string `json:"username" validate:"max=64"`
	Text     string `json:"text" validate:"required,max=4096"`
}

// Submit records feedback. The user is upserted first so the review view can
// always attribute rows. Over-limit submissions and in-window duplicates are
// dropped silently; intake never turns user enthusiasm into an error message.
func (s *FeedbackService) Submit(ctx context.Context, in SubmitInput) error {
	in.Name = normalize.Text(in.Name)
	in.Username = normalize.Text(in.Username)
	in.Text = normalize.Text(in.Text)
	if in.Text == "" {
		return nil
	}

	if err := s.validator.Validate(in); err != nil {
		return err
	}

	if !s.limiter.Allow(in.UserID) {
		s.logger.Debug("feedback rate limited", "user_id", in.UserID)
		return nil
	}

	if err := s.store.UpsertUser(ctx, in.UserID, in.Name); err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}

	if err := s.store.AddFeedback(ctx, in.UserID, in.Name, in.Username, in.Text); err != nil {
		return fmt.Errorf("add feedback: %w", err)
	}
	return nil
}

// Recent returns the latest feedback rows, newest first.
func (s *FeedbackService) Recent(ctx context.Context, limit int) ([]*domain.Feedback, error) {
	feedbacks, err := s.store.ListFeedback(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	return feedbacks, nil
}

// Deduplicate removes historical duplicate feedback and returns the number
// of rows dropped.
func (s *FeedbackService) Deduplicate(ctx context.Context) (int64, error) {
	removed, err := s.store.DeduplicateFeedback(ctx)
	if err != nil {
		return 0, fmt.Errorf("deduplicate feedback: %w", err)
	}
	return removed, nil
}
