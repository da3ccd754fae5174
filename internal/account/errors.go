package account

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument means the caller supplied an unacceptable input
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInsufficientFunds means the amount exceeds the available balance
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidIdentity rejects an email address at account creation
	ErrInvalidIdentity = fmt.Errorf("%w: invalid email address", ErrInvalidArgument)

	// ErrInvalidAmount rejects a negative, zero or sub-cent amount
	ErrInvalidAmount = fmt.Errorf("%w: amount must be positive with at most two decimal places", ErrInvalidArgument)

	// ErrSameAccount rejects a transfer whose source and destination are one account
	ErrSameAccount = fmt.Errorf("%w: cannot transfer to the same account", ErrInvalidArgument)
)

// Kind classifies an error returned by this package
type Kind int

const (
	// KindNone is the kind of a nil error
	KindNone Kind = iota
	// KindInvalidArgument means the input was unacceptable, retry with corrected input
	KindInvalidArgument
	// KindInsufficientFunds means the balance does not cover the amount right now
	KindInsufficientFunds
	// KindUnknown is any error not produced by this package
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindInvalidArgument:
		return "invalid_argument"
	case KindInsufficientFunds:
		return "insufficient_funds"
	default:
		return "unknown"
	}
}

// KindOf returns the kind of err, KindNone for a nil error
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrInvalidArgument):
		return KindInvalidArgument
	case errors.Is(err, ErrInsufficientFunds):
		return KindInsufficientFunds
	default:
		return KindUnknown
	}
}
