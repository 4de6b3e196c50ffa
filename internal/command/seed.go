package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/eaglebank/contas/internal/domain"
	"github.com/eaglebank/contas/shared/cqrs"
)

var demoAccounts = []cqrs.CreateAccountCommand{
	{HolderName: "João Silva", TaxID: "529.982.247-25", InitialBalance: cqrs.NumberOf("1000"), CreditLimit: cqrs.NumberOf("500")},
	{HolderName: "Maria Souza", TaxID: "111.444.777-35", InitialBalance: cqrs.NumberOf("2500"), CreditLimit: cqrs.NumberOf("1000")},
	{HolderName: "Pedro Santos", TaxID: "935.411.347-80", InitialBalance: cqrs.NumberOf("100"), CreditLimit: cqrs.NumberOf("200")},
}

// SeedDemoAccounts opens the demo accounts through CreateAccount. Accounts
// whose CPF is already taken are skipped, so seeding twice is harmless.
func (s *AccountCommandService) SeedDemoAccounts(ctx context.Context) (int, error) {
	created := 0
	for _, cmd := range demoAccounts {
		_, err := s.CreateAccount(ctx, cmd)
		if errors.Is(err, domain.ErrDuplicateTaxID) {
			continue
		}
		if err != nil {
			return created, fmt.Errorf("seed account for %s: %w", cmd.HolderName, err)
		}
		created++
	}
	return created, nil
}
