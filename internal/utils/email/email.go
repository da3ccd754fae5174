package email

import (
	"fmt"
	"net/smtp"

	"github.com/Dan9191/bank-account/internal/config"
	"github.com/Dan9191/bank-account/internal/models"
	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// Notify sends a transaction notification to the account holder
func (s *Sender) Notify(tx models.Transaction) error {
	return s.SendTransactionNotification(tx)
}

// SendTransactionNotification sends a notification email for a completed balance change
func (s *Sender) SendTransactionNotification(tx models.Transaction) error {
	e := s.buildNotification(tx)

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	var auth smtp.Auth
	if s.cfg.SMTPUsername != "" {
		auth = smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	}
	if err := e.Send(addr, auth); err != nil {
		s.logger.Errorf("Failed to send %s notification to %s: %v", tx.Type, tx.Email, err)
		return fmt.Errorf("failed to send %s notification: %w", tx.Type, err)
	}

	s.logger.Infof("Email sent to %s: %s", tx.Email, e.Subject)
	return nil
}

func (s *Sender) buildNotification(tx models.Transaction) *email.Email {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{tx.Email}

	sym := s.cfg.CurrencySymbol
	amount := sym + tx.Amount.StringFixed(2)
	balance := sym + tx.Balance.StringFixed(2)

	body := "Hello,\n\n"
	switch tx.Type {
	case models.TransactionDeposit:
		e.Subject = "Deposit Notification"
		body += fmt.Sprintf("Your account has been credited with %s.\n", amount)
	case models.TransactionWithdrawal:
		e.Subject = "Withdrawal Notification"
		body += fmt.Sprintf("An amount of %s has been withdrawn from your account.\n", amount)
	case models.TransactionTransferOut:
		e.Subject = "Transfer Notification"
		body += fmt.Sprintf("You transferred %s to account %s.\n", amount, tx.CounterpartyID)
	case models.TransactionTransferIn:
		e.Subject = "Transfer Notification"
		body += fmt.Sprintf("You received %s from account %s.\n", amount, tx.CounterpartyID)
	default:
		e.Subject = "Account Notification"
		body += fmt.Sprintf("A %s of %s was applied to your account.\n", tx.Type, amount)
	}
	body += fmt.Sprintf(
		"Transaction time: %s\n"+
			"Current balance: %s\n",
		tx.CreatedAt.Format("2006-01-02 15:04:05"), balance,
	)
	body += "\nBest regards,\nBank Service"
	e.Text = []byte(body)
	return e
}
