package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	defaultDBDriver = "sqlite"
	defaultDBDSN    = "bookings.db"
)

type Config struct {
	BotToken       string
	OperatorChatID int64
	PaymentAddress string
	DBDriver       string
	DBDSN          string
}

func FromEnv() Config {
	driver := strings.TrimSpace(os.Getenv("TICKET_BOT_DB_DRIVER"))
	if driver == "" {
		driver = defaultDBDriver
	}
	dsn := strings.TrimSpace(os.Getenv("TICKET_BOT_DB_DSN"))
	if dsn == "" {
		dsn = defaultDBDSN
	}

	var operatorChatID int64
	if raw := strings.TrimSpace(os.Getenv("TICKET_BOT_OPERATOR_CHAT_ID")); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err == nil {
			operatorChatID = parsed
		}
	}

	return Config{
		BotToken:       strings.TrimSpace(os.Getenv("TICKET_BOT_TOKEN")),
		OperatorChatID: operatorChatID,
		PaymentAddress: strings.TrimSpace(os.Getenv("TICKET_BOT_PAYMENT_ADDRESS")),
		DBDriver:       strings.ToLower(driver),
		DBDSN:          dsn,
	}
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.BotToken) == "" {
		return fmt.Errorf("TICKET_BOT_TOKEN is required")
	}
	if c.OperatorChatID == 0 {
		return fmt.Errorf("TICKET_BOT_OPERATOR_CHAT_ID is required")
	}
	if strings.TrimSpace(c.PaymentAddress) == "" {
		return fmt.Errorf("TICKET_BOT_PAYMENT_ADDRESS is required")
	}
	switch strings.ToLower(strings.TrimSpace(c.DBDriver)) {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("TICKET_BOT_DB_DRIVER must be sqlite or postgres")
	}
	if strings.TrimSpace(c.DBDSN) == "" {
		return fmt.Errorf("TICKET_BOT_DB_DSN must not be empty")
	}
	return nil
}
