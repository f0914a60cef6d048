package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vsilva/minhas_financas_app/internal/apperrors"
	"github.com/vsilva/minhas_financas_app/internal/core/domain"
	portsrepo "github.com/vsilva/minhas_financas_app/internal/core/ports/repositories"
	portssvc "github.com/vsilva/minhas_financas_app/internal/core/ports/services"
)

// EntryService implements entry validation, lifecycle management and balance
// aggregation.
type EntryService struct {
	entryRepo portsrepo.EntryRepositoryFacade
}

// NewEntryService creates a new EntryService.
func NewEntryService(entryRepo portsrepo.EntryRepositoryFacade) *EntryService {
	return &EntryService{entryRepo: entryRepo}
}

var _ portssvc.EntrySvcFacade = (*EntryService)(nil)

// Validate runs the field checks in a fixed order and reports only the first
// failure. Callers rely on the ordering: a missing description wins over every
// other problem, and the entry type is checked last.
func (s *EntryService) Validate(entry domain.Entry) error {
	if entry.Description == "" {
		return apperrors.NewBusinessRuleError("a valid description is required")
	}
	if entry.Month < 1 || entry.Month > 12 {
		return apperrors.NewBusinessRuleError("a valid month is required")
	}
	// The year must render as exactly four decimal characters. Year 0 and
	// anything below 1000 fail this check.
	if len(strconv.Itoa(entry.Year)) != 4 {
		return apperrors.NewBusinessRuleError("a valid year is required")
	}
	if entry.User == nil || entry.User.ID == 0 {
		return apperrors.NewBusinessRuleError("a valid user is required")
	}
	if entry.Value.Cmp(decimal.Zero) <= 0 {
		return apperrors.NewBusinessRuleError("a value greater than zero is required")
	}
	if entry.Type == "" {
		return apperrors.NewBusinessRuleError("an entry type is required")
	}
	return nil
}

// SaveEntry validates and persists a new entry. New entries start PENDING and
// get their registration date here, not from the caller.
func (s *EntryService) SaveEntry(ctx context.Context, entry domain.Entry) (*domain.Entry, error) {
	if err := s.Validate(entry); err != nil {
		return nil, err
	}

	entry.Status = domain.EntryStatusPending
	entry.RegistrationDate = time.Now()

	saved, err := s.entryRepo.SaveEntry(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to save entry: %w", err)
	}
	return saved, nil
}

// UpdateEntry validates and persists changes to an already-saved entry.
// Calling it with an entry that was never saved is a programmer error.
func (s *EntryService) UpdateEntry(ctx context.Context, entry domain.Entry) (*domain.Entry, error) {
	if entry.ID == 0 {
		return nil, apperrors.ErrMissingID
	}
	if err := s.Validate(entry); err != nil {
		return nil, err
	}

	updated, err := s.entryRepo.UpdateEntry(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to update entry: %w", err)
	}
	return updated, nil
}

// DeleteEntry removes an already-saved entry from the store.
func (s *EntryService) DeleteEntry(ctx context.Context, entry domain.Entry) error {
	if entry.ID == 0 {
		return apperrors.ErrMissingID
	}
	if err := s.entryRepo.DeleteEntry(ctx, entry.ID); err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	return nil
}

// SearchEntries returns all entries matching the non-zero filter fields.
func (s *EntryService) SearchEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, error) {
	entries, err := s.entryRepo.FindEntries(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search entries: %w", err)
	}
	if entries == nil {
		return []domain.Entry{}, nil
	}
	return entries, nil
}

// UpdateEntryStatus sets the status on the entry and persists it. The
// in-memory mutation happens before the persist; when the persist fails the
// caller holds a mutated entry whose stored status never changed.
func (s *EntryService) UpdateEntryStatus(ctx context.Context, entry *domain.Entry, status domain.EntryStatus) error {
	entry.Status = status
	_, err := s.UpdateEntry(ctx, *entry)
	return err
}

// GetEntryByID is a pass-through lookup; a miss is apperrors.ErrNotFound.
func (s *EntryService) GetEntryByID(ctx context.Context, entryID int64) (*domain.Entry, error) {
	return s.entryRepo.FindEntryByID(ctx, entryID)
}

// BalanceByUser computes the user's net balance: total income minus total
// expense. Every entry counts regardless of status, CANCELED included.
func (s *EntryService) BalanceByUser(ctx context.Context, userID int64) (decimal.Decimal, error) {
	income, err := s.entryRepo.SumByUserAndType(ctx, userID, domain.EntryTypeIncome)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum income entries: %w", err)
	}
	expense, err := s.entryRepo.SumByUserAndType(ctx, userID, domain.EntryTypeExpense)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum expense entries: %w", err)
	}
	return income.Sub(expense), nil
}
