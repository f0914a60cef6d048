package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/vsilva/minhas_financas_app/internal/apperrors"
	"github.com/vsilva/minhas_financas_app/internal/core/domain"
	portsrepo "github.com/vsilva/minhas_financas_app/internal/core/ports/repositories"
	"github.com/vsilva/minhas_financas_app/internal/models"
)

type PgxEntryRepository struct {
	db *pgxpool.Pool
}

func newPgxEntryRepository(db *pgxpool.Pool) portsrepo.EntryRepositoryFacade {
	return &PgxEntryRepository{db: db}
}

// Ensure PgxEntryRepository implements portsrepo.EntryRepositoryFacade
var _ portsrepo.EntryRepositoryFacade = (*PgxEntryRepository)(nil)

// Helper to convert models.Entry to domain.Entry
func toDomainEntry(m models.Entry) domain.Entry {
	return domain.Entry{
		ID:          m.ID,
		Description: m.Description,
		Month:       m.Month,
		Year:        m.Year,
		User: &domain.User{
			ID:    m.UserID,
			Name:  m.UserName,
			Email: m.UserEmail,
		},
		Value:            m.Value,
		RegistrationDate: m.RegistrationDate,
		Type:             domain.EntryType(m.Type),
		Status:           domain.EntryStatus(m.Status),
	}
}

// Helper to convert slice of models.Entry to slice of domain.Entry
func toDomainEntrySlice(ms []models.Entry) []domain.Entry {
	ds := make([]domain.Entry, len(ms))
	for i, m := range ms {
		ds[i] = toDomainEntry(m)
	}
	return ds
}

const entrySelectColumns = `
	e.id, e.description, e.month, e.year, e.user_id, e.value,
	e.registration_date, e.type, e.status, u.name AS user_name, u.email AS user_email
`

func scanEntry(row pgx.Row, m *models.Entry) error {
	return row.Scan(
		&m.ID,
		&m.Description,
		&m.Month,
		&m.Year,
		&m.UserID,
		&m.Value,
		&m.RegistrationDate,
		&m.Type,
		&m.Status,
		&m.UserName,
		&m.UserEmail,
	)
}

func (r *PgxEntryRepository) SaveEntry(ctx context.Context, entry domain.Entry) (*domain.Entry, error) {
	query := `
        INSERT INTO entries (description, month, year, user_id, value, registration_date, type, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id;
    `
	err := r.db.QueryRow(ctx, query,
		entry.Description,
		entry.Month,
		entry.Year,
		entry.User.ID,
		entry.Value,
		entry.RegistrationDate,
		string(entry.Type),
		string(entry.Status),
	).Scan(&entry.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to save entry: %w", err)
	}
	return &entry, nil
}

func (r *PgxEntryRepository) UpdateEntry(ctx context.Context, entry domain.Entry) (*domain.Entry, error) {
	query := `
        UPDATE entries
        SET description = $1, month = $2, year = $3, user_id = $4, value = $5, type = $6, status = $7
        WHERE id = $8;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		entry.Description,
		entry.Month,
		entry.Year,
		entry.User.ID,
		entry.Value,
		string(entry.Type),
		string(entry.Status),
		entry.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to execute update entry query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, fmt.Errorf("entry %d not found: %w", entry.ID, apperrors.ErrNotFound)
	}
	return &entry, nil
}

func (r *PgxEntryRepository) DeleteEntry(ctx context.Context, entryID int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM entries WHERE id = $1;`, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("entry %d not found: %w", entryID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxEntryRepository) FindEntryByID(ctx context.Context, entryID int64) (*domain.Entry, error) {
	query := `
		SELECT ` + entrySelectColumns + `
		FROM entries e
		JOIN users u ON u.id = e.user_id
		WHERE e.id = $1;
	`
	var modelEntry models.Entry
	err := scanEntry(r.db.QueryRow(ctx, query, entryID), &modelEntry)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find entry by ID %d: %w", entryID, err)
	}

	domainEntry := toDomainEntry(modelEntry)
	return &domainEntry, nil
}

// FindEntries builds the WHERE clause from the non-zero filter fields.
// Description matches as a case-insensitive substring; the rest are equality.
func (r *PgxEntryRepository) FindEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, error) {
	conditions := []string{}
	args := []any{}

	addCondition := func(clause string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(clause, len(args)))
	}

	if filter.Description != "" {
		addCondition("e.description ILIKE '%%' || $%d || '%%'", filter.Description)
	}
	if filter.Month != 0 {
		addCondition("e.month = $%d", filter.Month)
	}
	if filter.Year != 0 {
		addCondition("e.year = $%d", filter.Year)
	}
	if filter.UserID != 0 {
		addCondition("e.user_id = $%d", filter.UserID)
	}
	if filter.Type != "" {
		addCondition("e.type = $%d", string(filter.Type))
	}
	if filter.Status != "" {
		addCondition("e.status = $%d", string(filter.Status))
	}

	query := `
		SELECT ` + entrySelectColumns + `
		FROM entries e
		JOIN users u ON u.id = e.user_id
	`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY e.id;"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	modelEntries := []models.Entry{}
	for rows.Next() {
		var modelEntry models.Entry
		if err := scanEntry(rows, &modelEntry); err != nil {
			return nil, fmt.Errorf("failed to scan entry row: %w", err)
		}
		modelEntries = append(modelEntries, modelEntry)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating entry rows: %w", rows.Err())
	}

	return toDomainEntrySlice(modelEntries), nil
}

// SumByUserAndType totals the user's entries of one type, every status
// included. COALESCE keeps the result at zero when there are no rows.
func (r *PgxEntryRepository) SumByUserAndType(ctx context.Context, userID int64, entryType domain.EntryType) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(value), 0)
		FROM entries
		WHERE user_id = $1 AND type = $2;
	`
	var sum decimal.Decimal
	if err := r.db.QueryRow(ctx, query, userID, string(entryType)).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum entries for user %d: %w", userID, err)
	}
	return sum, nil
}
