// Package service composes the write and read sides into the single account
// API the HTTP layer and startup code use.
package service

import (
	"github.com/eaglebank/contas/internal/command"
	"github.com/eaglebank/contas/internal/query"
	"github.com/eaglebank/contas/internal/repository"
	"go.uber.org/zap"
)

// AccountService is the account API: commands from command.AccountCommandService,
// queries from query.AccountQueryService, both over one store.
type AccountService struct {
	*command.AccountCommandService
	*query.AccountQueryService
}

func NewAccountService(store *repository.AccountStore, publisher command.EventPublisher, logger *zap.Logger) *AccountService {
	return &AccountService{
		AccountCommandService: command.NewAccountCommandService(store, publisher, logger),
		AccountQueryService:   query.NewAccountQueryService(store),
	}
}
