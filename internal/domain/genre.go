package domain

// Genre is one entry of the genre taxonomy. Names are unique.
// Deleting a genre removes only its links to books, never the books.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
