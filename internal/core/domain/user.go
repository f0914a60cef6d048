package domain

// User represents a registered user of the application in the domain.
type User struct {
	ID    int64  `json:"id"` // Assigned by the store on insert; 0 means unsaved
	Name  string `json:"name"`
	Email string `json:"email"`
	// Password is stored and compared verbatim. Hashing it changes the
	// observable authentication behaviour.
	Password string `json:"-"`
}
