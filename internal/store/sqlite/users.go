package sqlite

import (
	"context"
	"database/sql"

	"github.com/behruz-py/audiokitob-islom-bot/internal/domain"
)

// UpsertUser records a chat user. An id seen before is left unchanged:
// the first reported display name wins.
func (s *Store) UpsertUser(ctx context.Context, id int64, name string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, name) VALUES (?, ?)
		ON CONFLICT (id) DO NOTHING`,
		id, nullString(name),
	)
	return err
}

// ListUsers returns all known users ordered by id.
func (s *Store) ListUsers(ctx context.Context) ([]*domain.User, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM users ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		var u domain.User
		var name sql.NullString
		if err := rows.Scan(&u.ID, &name); err != nil {
			return nil, err
		}
		u.Name = name.String
		users = append(users, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

// CountUsers returns the number of known users.
func (s *Store) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	return n, err
}

// UpsertAdmin records an administrator. An existing id is left unchanged.
func (s *Store) UpsertAdmin(ctx context.Context, id int64, name string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO admins (id, name) VALUES (?, ?)
		ON CONFLICT (id) DO NOTHING`,
		id, nullString(name),
	)
	return err
}

// ListAdmins returns the database-backed admin set ordered by id.
func (s *Store) ListAdmins(ctx context.Context) ([]*domain.Admin, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM admins ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var admins []*domain.Admin
	for rows.Next() {
		var a domain.Admin
		var name sql.NullString
		if err := rows.Scan(&a.ID, &name); err != nil {
			return nil, err
		}
		a.Name = name.String
		admins = append(admins, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return admins, nil
}

// DeleteAdmin removes an admin entry. An absent id is a no-op; callers must
// not assume a prior existence check.
func (s *Store) DeleteAdmin(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM admins WHERE id = ?`, id)
	return err
}
