package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/behruz-py/audiokitob-islom-bot/internal/domain"
)

// dedupWindow is the trailing interval within which a resubmission of the
// same (user, trimmed text) pair is silently dropped. Past the window the
// same text stores again: the rule is a sliding window, not a permanent
// uniqueness constraint.
const dedupWindow = 24 * time.Hour

// defaultFeedbackLimit matches the "last 10" admin view.
const defaultFeedbackLimit = 10

// AddFeedback trims the text and stores a feedback row timestamped now.
// Empty text after trimming is a silent no-op, as is a duplicate within the
// 24-hour window. The forgiving behavior is deliberate: feedback intake
// never surfaces validation failures to the conversation.
func (s *Store) AddFeedback(ctx context.Context, userID int64, name, username, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	cutoff := formatTime(time.Now().Add(-dedupWindow))
	row := s.db.QueryRowContext(ctx, `
		SELECT 1 FROM feedback
		WHERE user_id = ? AND TRIM(text) = ? AND created_at >= ?
		LIMIT 1`,
		userID, text, cutoff,
	)

	var one int
	err := row.Scan(&one)
	if err == nil {
		// Duplicate inside the window: drop silently.
		return nil
	}
	if err != sql.ErrNoRows {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO feedback (user_id, name, username, text, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		userID, nullString(name), nullString(username), text, formatTime(time.Now()),
	)
	if err != nil {
		return fmt.Errorf("insert feedback: %w", err)
	}
	return nil
}

// ListFeedback returns the most recent feedback rows, newest first. Rows
// sharing a timestamp order by reverse insertion (rowid descending). A
// non-positive limit falls back to the default of 10.
func (s *Store) ListFeedback(ctx context.Context, limit int) ([]*domain.Feedback, error) {
	if limit <= 0 {
		limit = defaultFeedbackLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT user_id, name, username, text, created_at
		FROM feedback
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var feedbacks []*domain.Feedback
	for rows.Next() {
		var f domain.Feedback
		var name, username sql.NullString
		var createdAt string
		if err := rows.Scan(&f.UserID, &name, &username, &f.Text, &createdAt); err != nil {
			return nil, err
		}
		f.Name = name.String
		f.Username = username.String
		f.CreatedAt, err = parseTime(createdAt)
		if err != nil {
			return nil, err
		}
		feedbacks = append(feedbacks, &f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return feedbacks, nil
}

// DeduplicateFeedback collapses all historical duplicates, independent of
// the 24-hour rule: rows are partitioned by (user id, trimmed text) and only
// the most recent row of each partition survives, ties broken by the most
// recently inserted rowid. Returns the number of rows removed; a second run
// removes zero.
func (s *Store) DeduplicateFeedback(ctx context.Context) (int64, error) {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM feedback WHERE rowid IN (
			SELECT rowid FROM (
				SELECT rowid, ROW_NUMBER() OVER (
					PARTITION BY user_id, TRIM(text)
					ORDER BY created_at DESC, rowid DESC
				) AS rn
				FROM feedback
			) WHERE rn > 1
		)`)
	if err != nil {
		return 0, fmt.Errorf("deduplicate feedback: %w", err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		s.logger.Info("removed duplicate feedback rows", "count", removed)
	}
	return removed, nil
}
