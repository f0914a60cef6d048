package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType distinguishes income from expense entries.
type EntryType string

const (
	EntryTypeIncome  EntryType = "INCOME"
	EntryTypeExpense EntryType = "EXPENSE"
)

// EntryStatus is the lifecycle state of an entry.
type EntryStatus string

const (
	EntryStatusPending   EntryStatus = "PENDING"
	EntryStatusConfirmed EntryStatus = "CONFIRMED"
	EntryStatusCanceled  EntryStatus = "CANCELED"
)

// IsValid reports whether s is one of the known entry statuses.
func (s EntryStatus) IsValid() bool {
	switch s {
	case EntryStatusPending, EntryStatusConfirmed, EntryStatusCanceled:
		return true
	}
	return false
}

// Entry represents a financial entry (lançamento): a single income or expense
// tied to one user and one month/year.
type Entry struct {
	ID               int64           `json:"id"` // Assigned by the store on insert; 0 means unsaved
	Description      string          `json:"description"`
	Month            int             `json:"month"`
	Year             int             `json:"year"`
	User             *User           `json:"user,omitempty"`
	Value            decimal.Decimal `json:"value"`
	RegistrationDate time.Time       `json:"registrationDate"`
	Type             EntryType       `json:"type"`
	Status           EntryStatus     `json:"status"`
}

// EntryFilter is a search template: only non-zero fields participate in the
// match. Description matches as a substring, everything else as equality.
type EntryFilter struct {
	Description string
	Month       int
	Year        int
	UserID      int64
	Type        EntryType
	Status      EntryStatus
}
