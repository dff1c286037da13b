// Package domain contains the core entities persisted by the audiokitob library.
package domain

// Book represents one audiobook in the library.
//
// IDs are string-encoded integers assigned densely by the store: the next id
// is the maximum existing numeric id plus one ("1" for an empty library).
// Gaps left by deleted books are never reused.
type Book struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Part represents a single audio segment of a book.
//
// Parts are ordered by ascending id within their book, and that order is the
// canonical zero-based "part index" shown to listeners. The index is a
// view-time position, not a stable identity: deleting a part shifts the
// indices of everything after it, so callers must re-fetch the part list
// before issuing further index-based operations.
type Part struct {
	ID       int64  `json:"id"`
	BookID   string `json:"book_id"`
	Title    string `json:"title"`
	AudioRef string `json:"audio_ref"`
}
