package config

import "testing"

func TestNewConfigDefaults(t *testing.T) {
	t.Setenv("NOTIFIER", "log")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Notifier != NotifierLog {
		t.Fatalf("notifier=%q want=%q", cfg.Notifier, NotifierLog)
	}
	if cfg.SMTPPort == "" || cfg.CurrencySymbol == "" {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestNewConfigEmailNotifier(t *testing.T) {
	t.Setenv("NOTIFIER", "EMAIL")
	t.Setenv("SMTP_HOST", "smtp.mail.com")
	t.Setenv("SENDER_EMAIL", "bank@mail.com")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Notifier != NotifierEmail {
		t.Fatalf("notifier=%q want=%q", cfg.Notifier, NotifierEmail)
	}
}

func TestNewConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown notifier", map[string]string{"NOTIFIER": "sms"}},
		{"missing host", map[string]string{"NOTIFIER": "email", "SMTP_HOST": "", "SENDER_EMAIL": "bank@mail.com"}},
		{"bad sender", map[string]string{"NOTIFIER": "email", "SMTP_HOST": "smtp.mail.com", "SENDER_EMAIL": "bank@mail"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := NewConfig(); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
