package domain

// Review is a single user's text about a book. Owner is fixed at creation.
type Review struct {
	ID    int64
	Owner string
	Text  string
}
