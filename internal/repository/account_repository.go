package repository

import (
	"sync"

	"github.com/eaglebank/contas/internal/domain"
	"github.com/eaglebank/contas/shared/utils"
	"github.com/shopspring/decimal"
)

// AccountStore is the in-memory account store. It owns every stored record:
// callers only ever receive clones and write changes back through Update.
type AccountStore struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]*domain.Account
}

func NewAccountStore() *AccountStore {
	return &AccountStore{byID: make(map[string]*domain.Account)}
}

// Create builds an account through the domain constructor and stores it.
// Uniqueness of the tax id is the caller's concern.
func (s *AccountStore) Create(holderName, taxID string, balance, creditLimit decimal.Decimal) (*domain.Account, error) {
	account, err := domain.NewAccount(holderName, taxID,
		domain.WithInitialBalance(balance),
		domain.WithCreditLimit(creditLimit),
	)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[account.ID()] = account
	s.order = append(s.order, account.ID())
	return account.Clone(), nil
}

func (s *AccountStore) FindByID(id string) (*domain.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	return account.Clone(), true
}

// FindByTaxID compares digits only, so formatted and bare CPFs match.
func (s *AccountStore) FindByTaxID(taxID string) (*domain.Account, bool) {
	want := utils.DigitsOnly(taxID)
	if want == "" {
		return nil, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.order {
		account := s.byID[id]
		if utils.DigitsOnly(account.TaxID()) == want {
			return account.Clone(), true
		}
	}
	return nil, false
}

// List returns every account in creation order. The slice is never nil.
func (s *AccountStore) List() []*domain.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()

	accounts := make([]*domain.Account, 0, len(s.order))
	for _, id := range s.order {
		accounts = append(accounts, s.byID[id].Clone())
	}
	return accounts
}

// Update replaces the stored record with a copy of account. It reports false
// when no record with that id exists.
func (s *AccountStore) Update(account *domain.Account) bool {
	if account == nil {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[account.ID()]; !ok {
		return false
	}
	s.byID[account.ID()] = account.Clone()
	return true
}

func (s *AccountStore) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return false
	}
	delete(s.byID, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

func (s *AccountStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
