package domain

import "time"

// Feedback is a single user-submitted comment.
//
// UserID is not a row key: one user may have many feedback rows. Duplicate
// detection works on content, not identity — the same (user, trimmed text)
// pair is suppressed only within a trailing 24-hour window.
type Feedback struct {
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Username  string    `json:"username,omitempty"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
