package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/Dan9191/bank-account/internal/account"
	"github.com/Dan9191/bank-account/internal/models"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

type recordingNotifier struct {
	txs []models.Transaction
	err error
}

func (n *recordingNotifier) Notify(tx models.Transaction) error {
	n.txs = append(n.txs, tx)
	return n.err
}

func newTestService(t *testing.T) (*Service, *recordingNotifier, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	n := &recordingNotifier{}
	return NewService(logger, n), n, hook
}

func open(t *testing.T, s *Service, email string, balance int64) *account.Account {
	t.Helper()
	acct, err := s.OpenAccount(email, decimal.NewFromInt(balance))
	if err != nil {
		t.Fatalf("OpenAccount(%q) err=%v", email, err)
	}
	return acct
}

func TestOpenAccountInvalidEmail(t *testing.T) {
	s, _, hook := newTestService(t)

	acct, err := s.OpenAccount("abc#def@mail.com", decimal.NewFromInt(10))
	if acct != nil || !errors.Is(err, account.ErrInvalidIdentity) {
		t.Fatalf("acct=%v err=%v", acct, err)
	}
	entry := hook.LastEntry()
	if entry == nil || entry.Level != logrus.WarnLevel {
		t.Fatalf("expected warn entry, got %+v", entry)
	}
	if entry.Data["kind"] != account.KindInvalidArgument.String() {
		t.Fatalf("kind=%v", entry.Data["kind"])
	}
}

func TestDepositWithdrawNotify(t *testing.T) {
	s, n, _ := newTestService(t)
	acct := open(t, s, "a@b.com", 200)

	tx, err := s.Deposit(acct, decimal.NewFromInt(50))
	if err != nil {
		t.Fatal(err)
	}
	if tx.Type != models.TransactionDeposit || !tx.Balance.Equal(decimal.NewFromInt(250)) {
		t.Fatalf("unexpected tx %+v", tx)
	}

	tx, err = s.Withdraw(acct, decimal.NewFromInt(100))
	if err != nil {
		t.Fatal(err)
	}
	if tx.Type != models.TransactionWithdrawal || !tx.Balance.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("unexpected tx %+v", tx)
	}
	if tx.Email != "a@b.com" || tx.AccountID != acct.ID() || tx.CreatedAt.IsZero() {
		t.Fatalf("tx identity not set: %+v", tx)
	}

	if len(n.txs) != 2 {
		t.Fatalf("notifications=%d want=2", len(n.txs))
	}
}

func TestFailuresDoNotNotify(t *testing.T) {
	s, n, _ := newTestService(t)
	acct := open(t, s, "a@b.com", 100)

	if _, err := s.Deposit(acct, decimal.Zero); account.KindOf(err) != account.KindInvalidArgument {
		t.Fatalf("deposit zero err=%v", err)
	}
	if _, err := s.Withdraw(acct, decimal.NewFromInt(101)); account.KindOf(err) != account.KindInsufficientFunds {
		t.Fatalf("withdraw err=%v", err)
	}
	if _, err := s.Withdraw(nil, decimal.NewFromInt(1)); !errors.Is(err, account.ErrInvalidArgument) {
		t.Fatalf("nil account err=%v", err)
	}
	if len(n.txs) != 0 {
		t.Fatalf("notifications=%d want=0", len(n.txs))
	}
	if !acct.Balance().Equal(decimal.NewFromInt(100)) {
		t.Fatalf("balance=%s want=100", acct.Balance())
	}
}

func TestTransfer(t *testing.T) {
	s, n, hook := newTestService(t)
	from := open(t, s, "a@b.com", 1000)
	to := open(t, s, "abc.def@mail.cc", 500)

	tr, err := s.Transfer(from, to, decimal.NewFromInt(300))
	if err != nil {
		t.Fatal(err)
	}
	if tr.Debit.AccountID != from.ID() || tr.Debit.CounterpartyID != to.ID() || !tr.Debit.Balance.Equal(decimal.NewFromInt(700)) {
		t.Fatalf("unexpected debit %+v", tr.Debit)
	}
	if tr.Credit.AccountID != to.ID() || tr.Credit.CounterpartyID != from.ID() || !tr.Credit.Balance.Equal(decimal.NewFromInt(800)) {
		t.Fatalf("unexpected credit %+v", tr.Credit)
	}
	if len(n.txs) != 2 || n.txs[0].Type != models.TransactionTransferOut || n.txs[1].Type != models.TransactionTransferIn {
		t.Fatalf("unexpected notifications %+v", n.txs)
	}

	if _, err := s.Transfer(from, from, decimal.NewFromInt(1)); !errors.Is(err, account.ErrSameAccount) {
		t.Fatalf("want ErrSameAccount, got %v", err)
	}
	if entry := hook.LastEntry(); entry == nil || entry.Level != logrus.WarnLevel {
		t.Fatalf("expected warn entry, got %+v", entry)
	}
	if _, err := s.Transfer(nil, to, decimal.NewFromInt(1)); !errors.Is(err, account.ErrInvalidArgument) {
		t.Fatalf("want ErrInvalidArgument, got %v", err)
	}
}

func TestNotifierErrorIsLogged(t *testing.T) {
	s, n, hook := newTestService(t)
	n.err = errors.New("smtp down")
	acct := open(t, s, "a@b.com", 0)

	if _, err := s.Deposit(acct, decimal.NewFromInt(5)); err != nil {
		t.Fatalf("notifier failure must not fail deposit: %v", err)
	}
	entry := hook.LastEntry()
	if entry == nil || entry.Level != logrus.ErrorLevel || !strings.Contains(entry.Message, "smtp down") {
		t.Fatalf("expected error entry, got %+v", entry)
	}
}

func TestLogNotifier(t *testing.T) {
	logger, hook := test.NewNullLogger()
	s := NewService(logger, NewLogNotifier(logger, "$"))
	acct := open(t, s, "a@b.com", 200)

	if _, err := s.Withdraw(acct, decimal.NewFromInt(100)); err != nil {
		t.Fatal(err)
	}
	if got, want := hook.LastEntry().Message, "You withdrew $100.00. Your balance is $100.00."; got != want {
		t.Fatalf("message=%q want=%q", got, want)
	}
}
