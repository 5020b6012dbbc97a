package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Kind tells whether a movement adds to or takes from the cash balance
type Kind string

const (
	KindInflow  Kind = "inflow"
	KindOutflow Kind = "outflow"
)

// MaxDescriptionLen bounds Movement.Description in characters
const MaxDescriptionLen = 100

// ParseKind accepts the canonical kinds and the Portuguese form values
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "inflow", "entrada":
		return KindInflow, nil
	case "outflow", "saida", "saída":
		return KindOutflow, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
}

// Label is the Portuguese name shown in listings
func (k Kind) Label() string {
	if k == KindInflow {
		return "Entrada"
	}
	return "Saída"
}

// Movement Model
type Movement struct {
	ID          uint            `gorm:"primaryKey"`                  // Primary key
	Kind        Kind            `gorm:"size:10;not null"`            // inflow or outflow
	Description string          `gorm:"size:100;not null"`           // What the money was for
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"` // Non-negative amount
	UserID      uint            `gorm:"not null;index"`              // Foreign key to the owning User
}

// NewMovement validates the fields and builds a movement owned by ownerID
func NewMovement(kind Kind, description string, amount decimal.Decimal, ownerID uint) (*Movement, error) {
	if kind != KindInflow && kind != KindOutflow {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}
	description = strings.TrimSpace(description)
	if description == "" || utf8.RuneCountInString(description) > MaxDescriptionLen {
		return nil, ErrInvalidDescription
	}
	if amount.IsNegative() {
		return nil, ErrInvalidAmount
	}
	return &Movement{Kind: kind, Description: description, Amount: amount, UserID: ownerID}, nil
}

// Summary is the derived view of a ledger
type Summary struct {
	Movements []Movement
	Inflow    decimal.Decimal
	Outflow   decimal.Decimal
	Balance   decimal.Decimal
}

// Summarize totals the movements; the result is never persisted
func Summarize(movements []Movement) Summary {
	s := Summary{Movements: movements, Inflow: decimal.Zero, Outflow: decimal.Zero}
	for _, m := range movements {
		switch m.Kind {
		case KindInflow:
			s.Inflow = s.Inflow.Add(m.Amount)
		case KindOutflow:
			s.Outflow = s.Outflow.Add(m.Amount)
		}
	}
	s.Balance = s.Inflow.Sub(s.Outflow)
	return s
}
