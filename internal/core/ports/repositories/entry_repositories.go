package repositories

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/vsilva/minhas_financas_app/internal/core/domain"
)

// EntryReader defines read operations for entry data
type EntryReader interface {
	// FindEntryByID retrieves a specific entry by its ID.
	FindEntryByID(ctx context.Context, entryID int64) (*domain.Entry, error)

	// FindEntries retrieves all entries matching the non-zero fields of the filter.
	FindEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, error)

	// SumByUserAndType returns the total value of a user's entries of the
	// given type, zero when there are none.
	SumByUserAndType(ctx context.Context, userID int64, entryType domain.EntryType) (decimal.Decimal, error)
}

// EntryWriter defines write operations for entry data
type EntryWriter interface {
	// SaveEntry persists a new entry and returns it with the store-assigned ID.
	SaveEntry(ctx context.Context, entry domain.Entry) (*domain.Entry, error)

	// UpdateEntry updates an existing entry.
	UpdateEntry(ctx context.Context, entry domain.Entry) (*domain.Entry, error)

	// DeleteEntry removes an entry by its ID.
	DeleteEntry(ctx context.Context, entryID int64) error
}

// EntryRepositoryFacade combines all entry-related repository interfaces
type EntryRepositoryFacade interface {
	EntryReader
	EntryWriter
}
