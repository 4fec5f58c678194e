package domain

// BookStatusCounts summarizes the catalog by circulation state.
// AvailableBooks + BorrowedBooks always equals TotalBooks.
type BookStatusCounts struct {
	TotalBooks     int `json:"total_books"`
	AvailableBooks int `json:"available_books"`
	BorrowedBooks  int `json:"borrowed_books"`
	TotalUsers     int `json:"total_users"`
}

// AuthorCount is one entry of the author distribution.
type AuthorCount struct {
	Author    string `json:"author"`
	BookCount int    `json:"book_count"`
}

// TrendPoint is the borrow count for a single calendar day.
// Date is formatted as "2006-01-02".
type TrendPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}
