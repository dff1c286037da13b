package domain

// BookView is the popularity counter for one book, keyed by the book's
// title string rather than its id. Renaming a book therefore orphans its
// historical counts; that matches how the counter has always been kept.
type BookView struct {
	BookName string `json:"book_name"`
	Count    int64  `json:"count"`
}
