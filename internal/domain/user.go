package domain

// User is a chat user known to the bot. The id is the external numeric
// identity assigned by the chat platform; the display name may be empty.
// Users are upsert-only and never deleted by normal flows.
type User struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Admin is a database-backed administrator entry. The effective
// authorization set is the union of these rows and the statically
// configured admin ids (see the auth package).
type Admin struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
