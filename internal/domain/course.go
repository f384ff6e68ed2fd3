package domain

// Course is a unit of teaching students enroll into.
type Course struct {
	ID      int64
	Title   string
	Credits int
}
