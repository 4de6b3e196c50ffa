package query

import (
	"strings"

	"github.com/eaglebank/contas/internal/domain"
	"github.com/eaglebank/contas/shared/cqrs"
	"github.com/eaglebank/contas/shared/utils"
)

// AccountReader is the read-only slice of the store.
type AccountReader interface {
	FindByID(id string) (*domain.Account, bool)
	FindByTaxID(taxID string) (*domain.Account, bool)
	List() []*domain.Account
}

type AccountQueryService struct {
	reader AccountReader
}

func NewAccountQueryService(reader AccountReader) *AccountQueryService {
	return &AccountQueryService{reader: reader}
}

func (s *AccountQueryService) GetAccount(q cqrs.GetAccountQuery) (*domain.Account, error) {
	id := strings.TrimSpace(q.AccountID)
	if id == "" {
		return nil, domain.ErrMissingID
	}
	// Malformed ids can never match; skip the lookup.
	if !utils.ValidateAccountID(id) {
		return nil, domain.ErrNotFound
	}
	account, ok := s.reader.FindByID(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return account, nil
}

func (s *AccountQueryService) GetAccountByTaxID(q cqrs.GetAccountByTaxIDQuery) (*domain.Account, error) {
	if strings.TrimSpace(q.TaxID) == "" {
		return nil, domain.ErrMissingTaxID
	}
	account, ok := s.reader.FindByTaxID(q.TaxID)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return account, nil
}

// ListAccounts returns a snapshot in creation order, empty but never nil.
func (s *AccountQueryService) ListAccounts(cqrs.ListAccountsQuery) ([]*domain.Account, error) {
	accounts := s.reader.List()
	if accounts == nil {
		accounts = []*domain.Account{}
	}
	return accounts, nil
}
