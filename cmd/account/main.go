package main

import (
	"fmt"
	"os"

	"github.com/Dan9191/bank-account/internal/account"
	"github.com/Dan9191/bank-account/internal/config"
	"github.com/Dan9191/bank-account/internal/logger"
	"github.com/Dan9191/bank-account/internal/service"
	"github.com/Dan9191/bank-account/internal/utils/email"
	"github.com/Dan9191/bank-account/internal/validate"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

const usage = `Usage:
  account validate ADDRESS...
  account [--email E --balance B] deposit AMOUNT
  account [--email E --balance B] withdraw AMOUNT
  account [--email E --balance B --to-email E2 --to-balance B2] transfer AMOUNT
`

func main() {
	_ = godotenv.Load() // load .env if present

	fromEmail := pflag.String("email", "a@b.com", "Account email")
	fromBalance := pflag.String("balance", "0", "Account starting balance")
	toEmail := pflag.String("to-email", "abc.def@mail.cc", "Transfer recipient email")
	toBalance := pflag.String("to-balance", "0", "Transfer recipient starting balance")
	pflag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	pflag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg)

	args := pflag.Args()
	if len(args) < 2 {
		pflag.Usage()
		os.Exit(1)
	}

	if args[0] == "validate" {
		os.Exit(runValidate(log, args[1:]))
	}

	var notifier service.Notifier = service.NewLogNotifier(log, cfg.CurrencySymbol)
	if cfg.Notifier == config.NotifierEmail {
		notifier = email.NewSender(cfg, log)
	}
	svc := service.NewService(log, notifier)

	err = run(svc, args[0], args[1], *fromEmail, *fromBalance, *toEmail, *toBalance)
	if err != nil {
		log.Errorf("%s failed: %v", args[0], err)
	}
	os.Exit(exitCode(err))
}

func runValidate(log *logrus.Logger, addresses []string) int {
	code := 0
	for _, addr := range addresses {
		res := validate.Validate(addr)
		if res.Valid() {
			log.WithField("address", addr).Info("valid")
			continue
		}
		log.WithFields(logrus.Fields{"address": addr, "rule": res.Failed.String()}).Warn("invalid")
		code = 1
	}
	return code
}

func run(svc *service.Service, op, rawAmount, fromEmail, fromBalance, toEmail, toBalance string) error {
	amount, err := account.ParseAmount(rawAmount)
	if err != nil {
		return err
	}
	startFrom, err := account.ParseAmount(fromBalance)
	if err != nil {
		return fmt.Errorf("--balance: %w", err)
	}
	from, err := svc.OpenAccount(fromEmail, startFrom)
	if err != nil {
		return err
	}

	switch op {
	case "deposit":
		_, err = svc.Deposit(from, amount)
	case "withdraw":
		_, err = svc.Withdraw(from, amount)
	case "transfer":
		startTo, perr := account.ParseAmount(toBalance)
		if perr != nil {
			return fmt.Errorf("--to-balance: %w", perr)
		}
		to, oerr := svc.OpenAccount(toEmail, startTo)
		if oerr != nil {
			return oerr
		}
		_, err = svc.Transfer(from, to, amount)
	default:
		return fmt.Errorf("%w: unknown operation %q", account.ErrInvalidArgument, op)
	}
	return err
}

func exitCode(err error) int {
	switch account.KindOf(err) {
	case account.KindNone:
		return 0
	case account.KindInsufficientFunds:
		return 2
	default:
		return 1
	}
}
