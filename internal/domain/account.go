// Package domain holds the Account entity and the invariants it enforces on
// every balance and state change.
package domain

import (
	"strings"
	"time"

	"github.com/eaglebank/contas/shared/utils"
	"github.com/shopspring/decimal"
)

const idPrefix = "acc"

// DefaultCreditLimit applies when an account is opened without an explicit limit.
var DefaultCreditLimit = decimal.NewFromInt(1000)

// Account is a bank account. Its fields are only reachable through methods so
// that balance >= -creditLimit and creditLimit >= 0 hold after every call.
type Account struct {
	id          string
	holderName  string
	taxID       string
	balance     decimal.Decimal
	creditLimit decimal.Decimal
	active      bool
	createdAt   time.Time
}

type accountOptions struct {
	balance     decimal.Decimal
	creditLimit decimal.Decimal
}

// Option customises NewAccount.
type Option func(*accountOptions)

// WithInitialBalance opens the account with balance v instead of zero.
func WithInitialBalance(v decimal.Decimal) Option {
	return func(o *accountOptions) { o.balance = v }
}

// WithCreditLimit opens the account with limit v instead of DefaultCreditLimit.
func WithCreditLimit(v decimal.Decimal) Option {
	return func(o *accountOptions) { o.creditLimit = v }
}

// NewAccount validates its inputs and returns an active account with a fresh
// id. No account is returned when any check fails.
func NewAccount(holderName, taxID string, opts ...Option) (*Account, error) {
	o := accountOptions{balance: decimal.Zero, creditLimit: DefaultCreditLimit}
	for _, opt := range opts {
		opt(&o)
	}

	holderName = strings.TrimSpace(holderName)
	if holderName == "" {
		return nil, ErrInvalidHolder
	}
	taxID = strings.TrimSpace(taxID)
	if !ValidateTaxID(taxID) {
		return nil, ErrInvalidTaxID
	}
	if o.creditLimit.IsNegative() {
		return nil, ErrInvalidCreditLimit
	}
	// The limit sits on the cent grid so a rounded balance can never cross it.
	limit := round2(o.creditLimit)
	if o.balance.LessThan(limit.Neg()) {
		return nil, ErrInvalidBalance
	}

	return &Account{
		id:          utils.GenerateID(idPrefix),
		holderName:  holderName,
		taxID:       taxID,
		balance:     round2(o.balance),
		creditLimit: limit,
		active:      true,
		createdAt:   time.Now().UTC(),
	}, nil
}

func (a *Account) ID() string                   { return a.id }
func (a *Account) HolderName() string           { return a.holderName }
func (a *Account) TaxID() string                { return a.taxID }
func (a *Account) Balance() decimal.Decimal     { return a.balance }
func (a *Account) CreditLimit() decimal.Decimal { return a.creditLimit }
func (a *Account) Active() bool                 { return a.active }
func (a *Account) CreatedAt() time.Time         { return a.createdAt }

// Available is the most that can currently be withdrawn.
func (a *Account) Available() decimal.Decimal {
	return a.balance.Add(a.creditLimit)
}

// FormattedTaxID returns the CPF as XXX.XXX.XXX-XX.
func (a *Account) FormattedTaxID() string {
	return FormatTaxID(a.taxID)
}

// Clone returns an independent copy of a.
func (a *Account) Clone() *Account {
	c := *a
	return &c
}

// Deposit credits amount and returns the new balance.
func (a *Account) Deposit(amount decimal.Decimal) (decimal.Decimal, error) {
	if err := a.checkDeposit(amount); err != nil {
		return a.balance, err
	}
	a.balance = round2(a.balance.Add(amount))
	return a.balance, nil
}

// Withdraw debits amount, drawing on the credit limit if needed, and returns
// the new balance.
func (a *Account) Withdraw(amount decimal.Decimal) (decimal.Decimal, error) {
	if err := a.checkWithdraw(amount); err != nil {
		return a.balance, err
	}
	a.balance = round2(a.balance.Sub(amount))
	return a.balance, nil
}

// Transfer moves amount from a to destination. Every precondition of both the
// withdrawal and the deposit is checked before either balance changes, so a
// failed transfer leaves both accounts as they were.
func (a *Account) Transfer(amount decimal.Decimal, destination *Account) error {
	if destination == nil {
		return ErrInvalidDestination
	}
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if destination.id == a.id {
		return ErrSameAccount
	}
	if err := a.checkWithdraw(amount); err != nil {
		return err
	}
	if err := destination.checkDeposit(amount); err != nil {
		return err
	}

	a.balance = round2(a.balance.Sub(amount))
	destination.balance = round2(destination.balance.Add(amount))
	return nil
}

// Deactivate blocks further deposits and withdrawals.
func (a *Account) Deactivate() error {
	if !a.active {
		return ErrAlreadyInactive
	}
	a.active = false
	return nil
}

// Activate reverses Deactivate.
func (a *Account) Activate() error {
	if a.active {
		return ErrAlreadyActive
	}
	a.active = true
	return nil
}

func (a *Account) checkDeposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if !a.active {
		return ErrInactiveAccount
	}
	return nil
}

func (a *Account) checkWithdraw(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if !a.active {
		return ErrInactiveAccount
	}
	if amount.GreaterThan(a.Available()) {
		return ErrInsufficientFunds
	}
	return nil
}

// round2 rounds half away from zero to the cent.
func round2(v decimal.Decimal) decimal.Decimal {
	return v.Round(2)
}
