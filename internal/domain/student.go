package domain

// Student is an enrollable person in the records system.
type Student struct {
	ID    int64
	Name  string
	Email string
}
