package model

// Book is a catalog entry. Reviews maps a username to that user's review
// text, so each user holds at most one review per book by construction.
type Book struct {
	ISBN    string            `json:"isbn"`
	Title   string            `json:"title"`
	Author  string            `json:"author"`
	Reviews map[string]string `json:"reviews"`
}

// BookSummary is the shape returned by the catalog listing: reviews excluded.
type BookSummary struct {
	ISBN   string `json:"isbn"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

// Summary strips the review map from a book.
func (b *Book) Summary() BookSummary {
	return BookSummary{ISBN: b.ISBN, Title: b.Title, Author: b.Author}
}
