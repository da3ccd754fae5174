// Package account holds a single bank account identified by an email address.
// Balances are decimal amounts in major currency units.
package account

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/Dan9191/bank-account/internal/validate"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account is an email identity with a balance.
// All balance changes go through the account's mutex.
type Account struct {
	id    uuid.UUID
	email string

	mu      sync.Mutex
	balance decimal.Decimal
}

// New creates an account. The starting balance is stored as given.
func New(email string, startingBalance decimal.Decimal) (*Account, error) {
	if res := validate.Validate(email); !res.Valid() {
		return nil, fmt.Errorf("%w: cannot create account: %v", ErrInvalidIdentity, res.Err())
	}
	return &Account{
		id:      uuid.New(),
		email:   email,
		balance: startingBalance,
	}, nil
}

// ID returns the account identifier
func (a *Account) ID() uuid.UUID {
	return a.id
}

// Email returns the address the account was created with
func (a *Account) Email() string {
	return a.email
}

// Balance returns the current balance
func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// constructed reports whether a came from New. The zero Account has no identity.
func (a *Account) constructed() bool {
	return a != nil && a.id != uuid.Nil
}

var errNotConstructed = fmt.Errorf("%w: account was not created with New", ErrInvalidArgument)

// Deposit adds a positive amount and returns the resulting balance
func (a *Account) Deposit(amount decimal.Decimal) (decimal.Decimal, error) {
	if !a.constructed() {
		return decimal.Zero, errNotConstructed
	}
	if err := checkPositive(amount); err != nil {
		return decimal.Zero, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.balance = a.balance.Add(amount)
	return a.balance, nil
}

// Withdraw removes amount if the balance covers it and returns the resulting balance.
// A zero withdrawal is accepted and changes nothing.
func (a *Account) Withdraw(amount decimal.Decimal) (decimal.Decimal, error) {
	if !a.constructed() {
		return decimal.Zero, errNotConstructed
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: withdrawal cannot be negative, got %s", ErrInvalidAmount, amount)
	}
	if err := checkShape(amount); err != nil {
		return decimal.Zero, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if amount.GreaterThan(a.balance) {
		return decimal.Zero, fmt.Errorf("%w: withdraw %s from balance %s", ErrInsufficientFunds, amount, a.balance)
	}
	a.balance = a.balance.Sub(amount)
	return a.balance, nil
}

// Transfer moves amount from one account to another and returns both
// resulting balances. Either both balances change or neither does.
func Transfer(from, to *Account, amount decimal.Decimal) (decimal.Decimal, decimal.Decimal, error) {
	if !from.constructed() || !to.constructed() {
		return decimal.Zero, decimal.Zero, fmt.Errorf("transfer requires two accounts: %w", errNotConstructed)
	}
	if err := checkPositive(amount); err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	if from == to || from.id == to.id {
		return decimal.Zero, decimal.Zero, ErrSameAccount
	}

	first, second := from, to
	if bytes.Compare(from.id[:], to.id[:]) > 0 {
		first, second = to, from
	}
	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()

	if from.balance.LessThan(amount) {
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: transfer %s from balance %s", ErrInsufficientFunds, amount, from.balance)
	}
	from.balance = from.balance.Sub(amount)
	to.balance = to.balance.Add(amount)
	return from.balance, to.balance, nil
}
