package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry mirrors a row of the entries table. UserName and UserEmail are joined
// from users on reads so the domain object carries its owner.
type Entry struct {
	ID               int64           `db:"id"`
	Description      string          `db:"description"`
	Month            int             `db:"month"`
	Year             int             `db:"year"`
	UserID           int64           `db:"user_id"`
	Value            decimal.Decimal `db:"value"`
	RegistrationDate time.Time       `db:"registration_date"`
	Type             string          `db:"type"`
	Status           string          `db:"status"`

	UserName  string `db:"user_name"`
	UserEmail string `db:"user_email"`
}
