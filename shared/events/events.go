package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event types
const (
	AccountCreated     = "account.created"
	AccountDeposited   = "account.deposited"
	AccountWithdrawn   = "account.withdrawn"
	AccountTransferred = "account.transferred"
	AccountDeactivated = "account.deactivated"
	AccountReactivated = "account.reactivated"
)

// AccountEventsStream is the Redis stream every account event is appended to.
const AccountEventsStream = "account.events"

// Base event structure
type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

// Amounts are carried as decimal strings so consumers never see float rounding.

type AccountCreatedEvent struct {
	AccountID      string          `json:"accountId"`
	HolderName     string          `json:"holderName"`
	TaxID          string          `json:"taxId"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	CreditLimit    decimal.Decimal `json:"creditLimit"`
}

// BalanceChangedEvent backs both account.deposited and account.withdrawn.
type BalanceChangedEvent struct {
	AccountID  string          `json:"accountId"`
	Amount     decimal.Decimal `json:"amount"`
	NewBalance decimal.Decimal `json:"newBalance"`
}

type AccountTransferredEvent struct {
	OriginID           string          `json:"originId"`
	DestinationID      string          `json:"destinationId"`
	Amount             decimal.Decimal `json:"amount"`
	OriginBalance      decimal.Decimal `json:"originBalance"`
	DestinationBalance decimal.Decimal `json:"destinationBalance"`
}

// AccountStatusEvent backs account.deactivated and account.reactivated.
type AccountStatusEvent struct {
	AccountID string `json:"accountId"`
	Active    bool   `json:"active"`
}
