// Package auth decides who may use the bot's administrative commands.
//
// The effective admin set is the union of two sources: the static allowlist
// from configuration, which is always trusted, and the database-backed set,
// which admins manage at runtime. A database failure degrades to the static
// set alone rather than locking everyone out.
package auth

import (
	"context"
	"log/slog"
	"sort"

	"github.com/behruz-py/audiokitob-islom-bot/internal/domain"
	"github.com/behruz-py/audiokitob-islom-bot/internal/store"
)

// Authority answers admin-membership questions.
type Authority struct {
	static map[int64]struct{}
	admins store.AdminStore
	logger *slog.Logger
}

// New creates an Authority over the given static allowlist and admin store.
func New(staticIDs []int64, admins store.AdminStore, logger *slog.Logger) *Authority {
	static := make(map[int64]struct{}, len(staticIDs))
	for _, id := range staticIDs {
		static[id] = struct{}{}
	}
	return &Authority{
		static: static,
		admins: admins,
		logger: logger,
	}
}

// IsAdmin reports whether the user is in the static allowlist or the
// database-backed set. The database is consulted on every call so runtime
// grants take effect without a restart. A query failure is logged and the
// static set alone decides.
func (a *Authority) IsAdmin(ctx context.Context, userID int64) bool {
	if _, ok := a.static[userID]; ok {
		return true
	}

	rows, err := a.admins.ListAdmins(ctx)
	if err != nil {
		a.logger.Warn("admin lookup falling back to static allowlist",
			"user_id", userID, "error", err)
		return false
	}
	for _, admin := range rows {
		if admin.ID == userID {
			return true
		}
	}
	return false
}

// StaticIDs returns the configured allowlist in ascending order.
func (a *Authority) StaticIDs() []int64 {
	ids := make([]int64, 0, len(a.static))
	for id := range a.static {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// LoadAdmins returns the database-backed admin set keyed by user id.
func (a *Authority) LoadAdmins(ctx context.Context) (map[int64]*domain.Admin, error) {
	rows, err := a.admins.ListAdmins(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[int64]*domain.Admin, len(rows))
	for _, admin := range rows {
		out[admin.ID] = admin
	}
	return out, nil
}

// SaveAdmins reconciles the database-backed set against the desired one:
// ids present only in desired are inserted, ids present only in the database
// are removed, and ids in both are left untouched.
func (a *Authority) SaveAdmins(ctx context.Context, desired map[int64]string) error {
	current, err := a.LoadAdmins(ctx)
	if err != nil {
		return err
	}

	for id, name := range desired {
		if _, ok := current[id]; ok {
			continue
		}
		if err := a.admins.UpsertAdmin(ctx, id, name); err != nil {
			return err
		}
		a.logger.Info("admin granted", "user_id", id)
	}

	for id := range current {
		if _, ok := desired[id]; ok {
			continue
		}
		if err := a.admins.DeleteAdmin(ctx, id); err != nil {
			return err
		}
		a.logger.Info("admin revoked", "user_id", id)
	}

	return nil
}
