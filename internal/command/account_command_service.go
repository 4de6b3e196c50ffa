package command

import (
	"context"
	"strings"
	"sync"

	"github.com/eaglebank/contas/internal/domain"
	"github.com/eaglebank/contas/shared/cqrs"
	"github.com/eaglebank/contas/shared/events"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// AccountRepository is the slice of the store the write side needs.
type AccountRepository interface {
	Create(holderName, taxID string, balance, creditLimit decimal.Decimal) (*domain.Account, error)
	FindByID(id string) (*domain.Account, bool)
	FindByTaxID(taxID string) (*domain.Account, bool)
	Update(account *domain.Account) bool
}

type EventPublisher interface {
	Publish(ctx context.Context, stream, eventType string, data any) error
}

// TransferResult holds both accounts after a successful transfer.
type TransferResult struct {
	Origin      *domain.Account
	Destination *domain.Account
}

// AccountCommandService runs every account mutation. Each operation holds mu
// from lookup to write-back so concurrent requests cannot interleave on the
// same balance. Events are published after mu is released.
type AccountCommandService struct {
	mu        sync.Mutex
	repo      AccountRepository
	publisher EventPublisher
	logger    *zap.Logger
}

func NewAccountCommandService(repo AccountRepository, publisher EventPublisher, logger *zap.Logger) *AccountCommandService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &AccountCommandService{
		repo:      repo,
		publisher: publisher,
		logger:    logger.With(zap.String("component", "account-commands")),
	}
}

func (s *AccountCommandService) CreateAccount(ctx context.Context, cmd cqrs.CreateAccountCommand) (*domain.Account, error) {
	if strings.TrimSpace(cmd.HolderName) == "" {
		return nil, domain.ErrMissingHolder
	}
	if strings.TrimSpace(cmd.TaxID) == "" {
		return nil, domain.ErrMissingTaxID
	}

	account, err := s.create(cmd)
	if err != nil {
		return nil, err
	}

	s.logger.Info("account created", zap.String("account_id", account.ID()))
	s.publish(ctx, events.AccountCreated, events.AccountCreatedEvent{
		AccountID:      account.ID(),
		HolderName:     account.HolderName(),
		TaxID:          account.FormattedTaxID(),
		InitialBalance: account.Balance(),
		CreditLimit:    account.CreditLimit(),
	})
	return account, nil
}

func (s *AccountCommandService) create(cmd cqrs.CreateAccountCommand) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.repo.FindByTaxID(cmd.TaxID); exists {
		return nil, domain.ErrDuplicateTaxID
	}

	balance, err := parseOptional(cmd.InitialBalance, decimal.Zero, domain.ErrInvalidBalance)
	if err != nil {
		return nil, err
	}
	limit, err := parseOptional(cmd.CreditLimit, domain.DefaultCreditLimit, domain.ErrInvalidCreditLimit)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(cmd.HolderName, cmd.TaxID, balance, limit)
}

func (s *AccountCommandService) Deposit(ctx context.Context, cmd cqrs.DepositCommand) (*domain.Account, error) {
	return s.changeBalance(ctx, cmd.AccountID, cmd.Amount, events.AccountDeposited, (*domain.Account).Deposit)
}

func (s *AccountCommandService) Withdraw(ctx context.Context, cmd cqrs.WithdrawCommand) (*domain.Account, error) {
	return s.changeBalance(ctx, cmd.AccountID, cmd.Amount, events.AccountWithdrawn, (*domain.Account).Withdraw)
}

func (s *AccountCommandService) changeBalance(
	ctx context.Context,
	id string,
	rawAmount cqrs.Number,
	eventType string,
	apply func(*domain.Account, decimal.Decimal) (decimal.Decimal, error),
) (*domain.Account, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.ErrMissingID
	}
	amount, err := parseAmount(rawAmount)
	if err != nil {
		return nil, err
	}

	var newBalance decimal.Decimal
	account, err := s.mutate(id, func(a *domain.Account) (err error) {
		newBalance, err = apply(a, amount)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("balance changed",
		zap.String("account_id", id),
		zap.String("event", eventType),
		zap.Stringer("amount", amount),
		zap.Stringer("balance", newBalance),
	)
	s.publish(ctx, eventType, events.BalanceChangedEvent{
		AccountID:  id,
		Amount:     amount,
		NewBalance: newBalance,
	})
	return account, nil
}

// Transfer moves money between two distinct accounts. Both accounts are
// worked on as clones and only written back once the entity transfer has
// succeeded, so a failure leaves the store untouched.
func (s *AccountCommandService) Transfer(ctx context.Context, cmd cqrs.TransferCommand) (*TransferResult, error) {
	if strings.TrimSpace(cmd.OriginID) == "" {
		return nil, domain.ErrMissingOriginID
	}
	if strings.TrimSpace(cmd.DestinationID) == "" {
		return nil, domain.ErrMissingDestinationID
	}
	if cmd.OriginID == cmd.DestinationID {
		return nil, domain.ErrSameAccount
	}
	amount, err := parseAmount(cmd.Amount)
	if err != nil {
		return nil, err
	}

	origin, destination, err := s.transfer(cmd.OriginID, cmd.DestinationID, amount)
	if err != nil {
		return nil, err
	}

	s.logger.Info("transfer completed",
		zap.String("origin_id", origin.ID()),
		zap.String("destination_id", destination.ID()),
		zap.Stringer("amount", amount),
	)
	s.publish(ctx, events.AccountTransferred, events.AccountTransferredEvent{
		OriginID:           origin.ID(),
		DestinationID:      destination.ID(),
		Amount:             amount,
		OriginBalance:      origin.Balance(),
		DestinationBalance: destination.Balance(),
	})
	return &TransferResult{Origin: origin, Destination: destination}, nil
}

func (s *AccountCommandService) transfer(originID, destinationID string, amount decimal.Decimal) (*domain.Account, *domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	origin, err := s.find(originID)
	if err != nil {
		return nil, nil, err
	}
	destination, err := s.find(destinationID)
	if err != nil {
		return nil, nil, err
	}
	if err := origin.Transfer(amount, destination); err != nil {
		return nil, nil, err
	}
	if err := s.save(origin); err != nil {
		return nil, nil, err
	}
	if err := s.save(destination); err != nil {
		return nil, nil, err
	}
	return origin, destination, nil
}

func (s *AccountCommandService) DeactivateAccount(ctx context.Context, cmd cqrs.DeactivateAccountCommand) (*domain.Account, error) {
	return s.changeStatus(ctx, cmd.AccountID, events.AccountDeactivated, (*domain.Account).Deactivate)
}

func (s *AccountCommandService) ReactivateAccount(ctx context.Context, cmd cqrs.ReactivateAccountCommand) (*domain.Account, error) {
	return s.changeStatus(ctx, cmd.AccountID, events.AccountReactivated, (*domain.Account).Activate)
}

func (s *AccountCommandService) changeStatus(ctx context.Context, id, eventType string, apply func(*domain.Account) error) (*domain.Account, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.ErrMissingID
	}

	account, err := s.mutate(id, apply)
	if err != nil {
		return nil, err
	}

	s.logger.Info("account status changed", zap.String("account_id", id), zap.Bool("active", account.Active()))
	s.publish(ctx, eventType, events.AccountStatusEvent{AccountID: id, Active: account.Active()})
	return account, nil
}

// mutate applies fn to a clone of the account and writes it back, all under mu.
func (s *AccountCommandService) mutate(id string, fn func(*domain.Account) error) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.find(id)
	if err != nil {
		return nil, err
	}
	if err := fn(account); err != nil {
		return nil, err
	}
	if err := s.save(account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *AccountCommandService) find(id string) (*domain.Account, error) {
	account, ok := s.repo.FindByID(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return account, nil
}

func (s *AccountCommandService) save(account *domain.Account) error {
	if !s.repo.Update(account) {
		return domain.ErrNotFound
	}
	return nil
}

// publish never fails the operation; the mutation has already been stored.
// Callers must not hold mu.
func (s *AccountCommandService) publish(ctx context.Context, eventType string, data any) {
	if err := s.publisher.Publish(ctx, events.AccountEventsStream, eventType, data); err != nil {
		s.logger.Warn("failed to publish event", zap.String("event", eventType), zap.Error(err))
	}
}

func parseAmount(n cqrs.Number) (decimal.Decimal, error) {
	v, err := n.Decimal()
	if err != nil || !v.IsPositive() {
		return decimal.Zero, domain.ErrInvalidAmount
	}
	return v, nil
}

func parseOptional(n cqrs.Number, fallback decimal.Decimal, invalid error) (decimal.Decimal, error) {
	if !n.IsSet() {
		return fallback, nil
	}
	v, err := n.Decimal()
	if err != nil || v.IsNegative() {
		return decimal.Zero, invalid
	}
	return v, nil
}
