package service

import (
	"fmt"

	"github.com/Dan9191/bank-account/internal/models"
	"github.com/sirupsen/logrus"
)

// LogNotifier reports completed operations through the logger
type LogNotifier struct {
	log    *logrus.Logger
	symbol string
}

// NewLogNotifier creates a notifier that prints amounts with the given currency symbol
func NewLogNotifier(log *logrus.Logger, symbol string) *LogNotifier {
	return &LogNotifier{log: log, symbol: symbol}
}

// Notify logs a human-readable summary of tx
func (n *LogNotifier) Notify(tx models.Transaction) error {
	n.log.WithFields(logrus.Fields{
		"account_id": tx.AccountID,
		"type":       tx.Type,
	}).Info(Message(tx, n.symbol))
	return nil
}

// Message describes tx and the resulting balance
func Message(tx models.Transaction, symbol string) string {
	amount := symbol + tx.Amount.StringFixed(2)
	balance := symbol + tx.Balance.StringFixed(2)

	switch tx.Type {
	case models.TransactionDeposit:
		return fmt.Sprintf("You deposited %s. Your balance is %s.", amount, balance)
	case models.TransactionWithdrawal:
		return fmt.Sprintf("You withdrew %s. Your balance is %s.", amount, balance)
	case models.TransactionTransferOut:
		return fmt.Sprintf("You transferred %s to %s. Your balance is %s.", amount, tx.CounterpartyID, balance)
	case models.TransactionTransferIn:
		return fmt.Sprintf("You received %s from %s. Your balance is %s.", amount, tx.CounterpartyID, balance)
	default:
		return fmt.Sprintf("%s of %s. Your balance is %s.", tx.Type, amount, balance)
	}
}
