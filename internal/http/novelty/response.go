package novelty

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/nomina/internal/novelty"
	"github.com/MrJamesThe3rd/nomina/internal/period"
)

type noveltyResponse struct {
	ID           uuid.UUID       `json:"id"`
	EmployeeID   uuid.UUID       `json:"employee_id"`
	EmployeeName string          `json:"employee_name,omitempty"`
	Type         novelty.Type    `json:"type"`
	Label        string          `json:"label"`
	Kind         novelty.Kind    `json:"kind"`
	Date         string          `json:"date"`
	Unit         novelty.Unit    `json:"unit"`
	Quantity     decimal.Decimal `json:"quantity"`
	Description  string          `json:"description,omitempty"`
	Recurring    bool            `json:"recurring"`
	StartMonth   *period.Month   `json:"start_month,omitempty"`
	AutoApplied  bool            `json:"auto_applied"`
	SourceID     *uuid.UUID      `json:"source_id,omitempty"`

	// Flat view of the quantity, one field per unit.
	DiscountDays decimal.Decimal `json:"discount_days"`
	BonusAmount  decimal.Decimal `json:"bonus_amount"`
	Hours        decimal.Decimal `json:"hours"`
	Days         decimal.Decimal `json:"days"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func toResponse(n *novelty.Novelty) noveltyResponse {
	resp := noveltyResponse{
		ID:           n.ID,
		EmployeeID:   n.EmployeeID,
		EmployeeName: n.EmployeeName,
		Type:         n.Type,
		Label:        n.Type.Label(),
		Kind:         n.Type.Kind(),
		Date:         n.Date.Format(time.DateOnly),
		Unit:         n.Quantity.Unit(),
		Quantity:     n.Quantity.Value(),
		Description:  n.Description,
		Recurring:    n.Recurring,
		AutoApplied:  n.AutoApplied,
		SourceID:     n.SourceID,
		DiscountDays: n.DiscountDays(),
		BonusAmount:  n.BonusAmount(),
		Hours:        n.Hours(),
		Days:         n.Days(),
		CreatedAt:    n.CreatedAt,
		UpdatedAt:    n.UpdatedAt,
	}

	if !n.StartMonth.IsZero() {
		resp.StartMonth = new(n.StartMonth)
	}

	return resp
}

func toResponseList(ns []*novelty.Novelty) []noveltyResponse {
	resp := make([]noveltyResponse, len(ns))
	for i, n := range ns {
		resp[i] = toResponse(n)
	}

	return resp
}

type typeResponse struct {
	Type  novelty.Type `json:"type"`
	Label string       `json:"label"`
	Unit  novelty.Unit `json:"unit"`
	Kind  novelty.Kind `json:"kind"`
}

func typeCatalog() []typeResponse {
	types := novelty.Types()
	resp := make([]typeResponse, len(types))

	for i, t := range types {
		resp[i] = typeResponse{Type: t, Label: t.Label(), Unit: t.Unit(), Kind: t.Kind()}
	}

	return resp
}
