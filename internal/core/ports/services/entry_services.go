package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/vsilva/minhas_financas_app/internal/core/domain"
)

// EntryReaderSvc defines read-only entry operations.
type EntryReaderSvc interface {
	// GetEntryByID retrieves an entry; a miss is apperrors.ErrNotFound.
	GetEntryByID(ctx context.Context, entryID int64) (*domain.Entry, error)

	// SearchEntries returns entries matching the non-zero filter fields.
	SearchEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, error)

	// BalanceByUser computes the user's net balance (income minus expense).
	BalanceByUser(ctx context.Context, userID int64) (decimal.Decimal, error)
}

// EntryLifecycleSvc defines mutating entry operations.
type EntryLifecycleSvc interface {
	// SaveEntry validates and persists a new entry with status PENDING.
	SaveEntry(ctx context.Context, entry domain.Entry) (*domain.Entry, error)

	// UpdateEntry validates and persists changes to an already-saved entry.
	UpdateEntry(ctx context.Context, entry domain.Entry) (*domain.Entry, error)

	// DeleteEntry removes an already-saved entry.
	DeleteEntry(ctx context.Context, entry domain.Entry) error

	// UpdateEntryStatus sets the entry status and persists the change.
	UpdateEntryStatus(ctx context.Context, entry *domain.Entry, status domain.EntryStatus) error
}

// EntrySvcFacade combines all entry service interfaces.
type EntrySvcFacade interface {
	EntryReaderSvc
	EntryLifecycleSvc
}
