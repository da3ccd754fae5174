package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transfer pairs the debit and credit sides of a money movement between two accounts
type Transfer struct {
	ID        uuid.UUID       `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Debit     Transaction     `json:"debit"`
	Credit    Transaction     `json:"credit"`
	CreatedAt time.Time       `json:"created_at"`
}
