package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType names the kind of balance change
type TransactionType string

const (
	TransactionDeposit     TransactionType = "deposit"
	TransactionWithdrawal  TransactionType = "withdrawal"
	TransactionTransferOut TransactionType = "transfer_out"
	TransactionTransferIn  TransactionType = "transfer_in"
)

// Transaction represents a completed balance change on one account
type Transaction struct {
	ID             uuid.UUID       `json:"id"`
	AccountID      uuid.UUID       `json:"account_id"`
	Email          string          `json:"email"`
	Type           TransactionType `json:"type"`
	Amount         decimal.Decimal `json:"amount"`
	Balance        decimal.Decimal `json:"balance"`
	CounterpartyID uuid.UUID       `json:"counterparty_id,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}
