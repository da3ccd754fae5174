package service

import (
	"fmt"
	"time"

	"github.com/Dan9191/bank-account/internal/account"
	"github.com/Dan9191/bank-account/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Notifier receives every completed balance change
type Notifier interface {
	Notify(tx models.Transaction) error
}

// Service handles account operations
type Service struct {
	log      *logrus.Logger
	notifier Notifier
	now      func() time.Time
}

// NewService initializes a new service
func NewService(log *logrus.Logger, notifier Notifier) *Service {
	return &Service{log: log, notifier: notifier, now: time.Now}
}

// OpenAccount creates an account for a valid email address
func (s *Service) OpenAccount(email string, startingBalance decimal.Decimal) (*account.Account, error) {
	acct, err := account.New(email, startingBalance)
	if err != nil {
		s.fail("open account", err, logrus.Fields{"email": email})
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"account_id": acct.ID(),
		"email":      acct.Email(),
		"balance":    startingBalance.String(),
	}).Info("Account opened")
	return acct, nil
}

// Deposit credits amount to acct
func (s *Service) Deposit(acct *account.Account, amount decimal.Decimal) (*models.Transaction, error) {
	if acct == nil {
		return nil, fmt.Errorf("%w: deposit requires an account", account.ErrInvalidArgument)
	}
	balance, err := acct.Deposit(amount)
	if err != nil {
		s.fail("deposit", err, logrus.Fields{"account_id": acct.ID(), "amount": amount.String()})
		return nil, fmt.Errorf("deposit: %w", err)
	}

	tx := s.transaction(acct, models.TransactionDeposit, amount, balance, uuid.Nil)
	s.notify(tx)
	return &tx, nil
}

// Withdraw debits amount from acct
func (s *Service) Withdraw(acct *account.Account, amount decimal.Decimal) (*models.Transaction, error) {
	if acct == nil {
		return nil, fmt.Errorf("%w: withdraw requires an account", account.ErrInvalidArgument)
	}
	balance, err := acct.Withdraw(amount)
	if err != nil {
		s.fail("withdraw", err, logrus.Fields{"account_id": acct.ID(), "amount": amount.String()})
		return nil, fmt.Errorf("withdraw: %w", err)
	}

	tx := s.transaction(acct, models.TransactionWithdrawal, amount, balance, uuid.Nil)
	s.notify(tx)
	return &tx, nil
}

// Transfer moves amount between two accounts and notifies both holders
func (s *Service) Transfer(from, to *account.Account, amount decimal.Decimal) (*models.Transfer, error) {
	fromBalance, toBalance, err := account.Transfer(from, to, amount)
	if err != nil {
		fields := logrus.Fields{"amount": amount.String()}
		if from != nil {
			fields["from"] = from.ID()
		}
		if to != nil {
			fields["to"] = to.ID()
		}
		s.fail("transfer", err, fields)
		return nil, fmt.Errorf("transfer: %w", err)
	}

	transfer := &models.Transfer{
		ID:     uuid.New(),
		Amount: amount,
		Debit:  s.transaction(from, models.TransactionTransferOut, amount, fromBalance, to.ID()),
		Credit: s.transaction(to, models.TransactionTransferIn, amount, toBalance, from.ID()),
	}
	transfer.CreatedAt = transfer.Debit.CreatedAt

	s.log.WithFields(logrus.Fields{
		"transfer_id": transfer.ID,
		"from":        from.ID(),
		"to":          to.ID(),
		"amount":      amount.String(),
	}).Info("Transfer completed")
	s.notify(transfer.Debit)
	s.notify(transfer.Credit)
	return transfer, nil
}

func (s *Service) transaction(acct *account.Account, typ models.TransactionType, amount, balance decimal.Decimal, counterparty uuid.UUID) models.Transaction {
	return models.Transaction{
		ID:             uuid.New(),
		AccountID:      acct.ID(),
		Email:          acct.Email(),
		Type:           typ,
		Amount:         amount,
		Balance:        balance,
		CounterpartyID: counterparty,
		CreatedAt:      s.now(),
	}
}

// notify never fails the operation: the balance change has already happened.
func (s *Service) notify(tx models.Transaction) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(tx); err != nil {
		s.log.WithFields(logrus.Fields{
			"transaction_id": tx.ID,
			"type":           tx.Type,
		}).Errorf("Failed to send notification: %v", err)
	}
}

func (s *Service) fail(op string, err error, fields logrus.Fields) {
	fields["kind"] = account.KindOf(err).String()
	s.log.WithFields(fields).Warnf("%s rejected: %v", op, err)
}
