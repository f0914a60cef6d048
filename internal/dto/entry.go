package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vsilva/minhas_financas_app/internal/core/domain"
)

// SaveEntryRequest defines the payload for creating or updating an entry.
// Fields are deliberately unconstrained here: the service validates them in a
// fixed order so the caller always sees the first failing field.
type SaveEntryRequest struct {
	Description string          `json:"description"`
	Month       int             `json:"month"`
	Year        int             `json:"year"`
	UserID      int64           `json:"userId"`
	Value       decimal.Decimal `json:"value"`
	Type        string          `json:"type"`
}

// ToDomain maps the request onto a domain entry.
func (r SaveEntryRequest) ToDomain() domain.Entry {
	entry := domain.Entry{
		Description: r.Description,
		Month:       r.Month,
		Year:        r.Year,
		Value:       r.Value,
		Type:        domain.EntryType(r.Type),
	}
	if r.UserID != 0 {
		entry.User = &domain.User{ID: r.UserID}
	}
	return entry
}

// UpdateEntryStatusRequest defines the payload for the status transition.
// The entrystatus validation is registered in the handlers package.
type UpdateEntryStatusRequest struct {
	Status string `json:"status" binding:"required,entrystatus"`
}

// ListEntriesParams defines the query parameters for searching entries.
type ListEntriesParams struct {
	Description string `form:"description"`
	Month       int    `form:"month"`
	Year        int    `form:"year"`
	UserID      int64  `form:"userId"`
	Type        string `form:"type"`
	Status      string `form:"status"`
}

// ToFilter maps the query parameters onto a domain filter.
func (p ListEntriesParams) ToFilter() domain.EntryFilter {
	return domain.EntryFilter{
		Description: p.Description,
		Month:       p.Month,
		Year:        p.Year,
		UserID:      p.UserID,
		Type:        domain.EntryType(p.Type),
		Status:      domain.EntryStatus(p.Status),
	}
}

// EntryResponse is the outward representation of an entry.
type EntryResponse struct {
	ID               int64           `json:"id"`
	Description      string          `json:"description"`
	Month            int             `json:"month"`
	Year             int             `json:"year"`
	UserID           int64           `json:"userId"`
	Value            decimal.Decimal `json:"value"`
	RegistrationDate time.Time       `json:"registrationDate"`
	Type             string          `json:"type"`
	Status           string          `json:"status"`
}

// ToEntryResponse converts a domain.Entry to its response DTO.
func ToEntryResponse(entry *domain.Entry) EntryResponse {
	resp := EntryResponse{
		ID:               entry.ID,
		Description:      entry.Description,
		Month:            entry.Month,
		Year:             entry.Year,
		Value:            entry.Value,
		RegistrationDate: entry.RegistrationDate,
		Type:             string(entry.Type),
		Status:           string(entry.Status),
	}
	if entry.User != nil {
		resp.UserID = entry.User.ID
	}
	return resp
}

// ToListEntriesResponse converts a slice of domain entries.
func ToListEntriesResponse(entries []domain.Entry) []EntryResponse {
	responses := make([]EntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToEntryResponse(&entries[i])
	}
	return responses
}

// BalanceResponse carries a user's net balance.
type BalanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}
