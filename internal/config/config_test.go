package config

import "testing"

func validConfig() Config {
	return Config{
		BotToken:       "123456:token",
		OperatorChatID: 6614307731,
		PaymentAddress: "TM6Qf5CZCdh9BG6SodA1VRfL395apHQojQ",
		DBDriver:       "sqlite",
		DBDSN:          "bookings.db",
	}
}

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("TICKET_BOT_TOKEN", "123456:token")
	t.Setenv("TICKET_BOT_OPERATOR_CHAT_ID", "6614307731")
	t.Setenv("TICKET_BOT_PAYMENT_ADDRESS", "TM6Qf5CZCdh9BG6SodA1VRfL395apHQojQ")
	t.Setenv("TICKET_BOT_DB_DRIVER", "")
	t.Setenv("TICKET_BOT_DB_DSN", "")

	cfg := FromEnv()
	if cfg.DBDriver != "sqlite" {
		t.Fatalf("default driver = %q, want sqlite", cfg.DBDriver)
	}
	if cfg.DBDSN != "bookings.db" {
		t.Fatalf("default dsn = %q, want bookings.db", cfg.DBDSN)
	}
	if cfg.OperatorChatID != 6614307731 {
		t.Fatalf("operator chat id = %d", cfg.OperatorChatID)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config: %v", err)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("TICKET_BOT_TOKEN", " 123456:token ")
	t.Setenv("TICKET_BOT_OPERATOR_CHAT_ID", "42")
	t.Setenv("TICKET_BOT_PAYMENT_ADDRESS", "addr")
	t.Setenv("TICKET_BOT_DB_DRIVER", "Postgres")
	t.Setenv("TICKET_BOT_DB_DSN", "host=localhost dbname=tickets")

	cfg := FromEnv()
	if cfg.BotToken != "123456:token" {
		t.Fatalf("token not trimmed: %q", cfg.BotToken)
	}
	if cfg.DBDriver != "postgres" {
		t.Fatalf("driver = %q, want postgres", cfg.DBDriver)
	}
	if cfg.DBDSN != "host=localhost dbname=tickets" {
		t.Fatalf("dsn = %q", cfg.DBDSN)
	}
}

func TestFromEnvBadOperatorChatID(t *testing.T) {
	t.Setenv("TICKET_BOT_OPERATOR_CHAT_ID", "not-a-number")
	cfg := FromEnv()
	if cfg.OperatorChatID != 0 {
		t.Fatalf("expected unparsable chat id to stay zero, got %d", cfg.OperatorChatID)
	}
}

func TestValidate(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "missing token", mutate: func(c *Config) { c.BotToken = "" }},
		{name: "missing operator chat id", mutate: func(c *Config) { c.OperatorChatID = 0 }},
		{name: "missing payment address", mutate: func(c *Config) { c.PaymentAddress = " " }},
		{name: "bad driver", mutate: func(c *Config) { c.DBDriver = "mysql" }},
		{name: "missing dsn", mutate: func(c *Config) { c.DBDSN = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}
