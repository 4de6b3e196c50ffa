package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/eaglebank/contas/internal/command"
	"github.com/eaglebank/contas/internal/domain"
	"github.com/eaglebank/contas/shared/cqrs"
	"github.com/eaglebank/contas/shared/middleware"
	"github.com/eaglebank/contas/shared/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func init() {
	if err := middleware.RegisterValidation("cpf", domain.ValidateTaxID); err != nil {
		panic(err)
	}
}

// AccountCommander defines the write-side operations used by AccountHandler.
type AccountCommander interface {
	CreateAccount(context.Context, cqrs.CreateAccountCommand) (*domain.Account, error)
	Deposit(context.Context, cqrs.DepositCommand) (*domain.Account, error)
	Withdraw(context.Context, cqrs.WithdrawCommand) (*domain.Account, error)
	Transfer(context.Context, cqrs.TransferCommand) (*command.TransferResult, error)
	DeactivateAccount(context.Context, cqrs.DeactivateAccountCommand) (*domain.Account, error)
	ReactivateAccount(context.Context, cqrs.ReactivateAccountCommand) (*domain.Account, error)
}

// AccountQuerier defines the read-side operations used by AccountHandler.
type AccountQuerier interface {
	GetAccount(cqrs.GetAccountQuery) (*domain.Account, error)
	GetAccountByTaxID(cqrs.GetAccountByTaxIDQuery) (*domain.Account, error)
	ListAccounts(cqrs.ListAccountsQuery) ([]*domain.Account, error)
}

// AccountHandler handles account-related HTTP requests.
type AccountHandler struct {
	commands AccountCommander
	queries  AccountQuerier
	logger   *zap.Logger
}

// Required fields are checked by the service so its messages reach the client.
type CreateAccountRequest struct {
	HolderName     string      `json:"holderName"`
	TaxID          string      `json:"taxId" validate:"omitempty,cpf"`
	InitialBalance cqrs.Number `json:"initialBalance"`
	CreditLimit    cqrs.Number `json:"creditLimit"`
}

type AmountRequest struct {
	Amount cqrs.Number `json:"amount"`
}

type TransferRequest struct {
	DestinationID string      `json:"destinationId"`
	Amount        cqrs.Number `json:"amount"`
}

func NewAccountHandler(commands AccountCommander, queries AccountQuerier, logger *zap.Logger) *AccountHandler {
	return &AccountHandler{
		commands: commands,
		queries:  queries,
		logger:   logger.With(zap.String("component", "account-handler")),
	}
}

func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var req CreateAccountRequest
	if !bindJSON(c, &req) {
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	account, err := h.commands.CreateAccount(c.Request.Context(), cqrs.CreateAccountCommand{
		HolderName:     req.HolderName,
		TaxID:          req.TaxID,
		InitialBalance: req.InitialBalance,
		CreditLimit:    req.CreditLimit,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toView(account))
}

func (h *AccountHandler) ListAccounts(c *gin.Context) {
	accounts, err := h.queries.ListAccounts(cqrs.ListAccountsQuery{})
	if err != nil {
		h.respondError(c, err)
		return
	}

	views := make([]models.AccountView, 0, len(accounts))
	for _, a := range accounts {
		views = append(views, toView(a))
	}
	c.JSON(http.StatusOK, views)
}

func (h *AccountHandler) GetAccount(c *gin.Context) {
	account, err := h.queries.GetAccount(cqrs.GetAccountQuery{AccountID: c.Param("id")})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toView(account))
}

func (h *AccountHandler) GetAccountByTaxID(c *gin.Context) {
	account, err := h.queries.GetAccountByTaxID(cqrs.GetAccountByTaxIDQuery{TaxID: c.Param("cpf")})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toView(account))
}

func (h *AccountHandler) Deposit(c *gin.Context) {
	var req AmountRequest
	if !bindJSON(c, &req) {
		return
	}
	account, err := h.commands.Deposit(c.Request.Context(), cqrs.DepositCommand{
		AccountID: c.Param("id"),
		Amount:    req.Amount,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toView(account))
}

func (h *AccountHandler) Withdraw(c *gin.Context) {
	var req AmountRequest
	if !bindJSON(c, &req) {
		return
	}
	account, err := h.commands.Withdraw(c.Request.Context(), cqrs.WithdrawCommand{
		AccountID: c.Param("id"),
		Amount:    req.Amount,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toView(account))
}

// Transfer reads the origin from the path and the destination from the body.
func (h *AccountHandler) Transfer(c *gin.Context) {
	var req TransferRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.commands.Transfer(c.Request.Context(), cqrs.TransferCommand{
		OriginID:      c.Param("id"),
		DestinationID: req.DestinationID,
		Amount:        req.Amount,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.TransferView{
		Origin:      toView(result.Origin),
		Destination: toView(result.Destination),
	})
}

func (h *AccountHandler) DeactivateAccount(c *gin.Context) {
	account, err := h.commands.DeactivateAccount(c.Request.Context(), cqrs.DeactivateAccountCommand{AccountID: c.Param("id")})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toView(account))
}

func (h *AccountHandler) ReactivateAccount(c *gin.Context) {
	account, err := h.commands.ReactivateAccount(c.Request.Context(), cqrs.ReactivateAccountCommand{AccountID: c.Param("id")})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toView(account))
}

// respondError maps an error kind to a status. Internal errors are logged and
// answered with a generic message.
func (h *AccountHandler) respondError(c *gin.Context, err error) {
	switch domain.KindOf(err) {
	case domain.KindValidation, domain.KindBusiness:
		middleware.RespondWithError(c, http.StatusBadRequest, err.Error())
	case domain.KindNotFound:
		middleware.RespondWithError(c, http.StatusNotFound, err.Error())
	default:
		h.logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		_ = c.Error(err)
		middleware.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
	}
}

// bindJSON decodes the body into req. An empty body leaves req zero-valued.
func bindJSON(c *gin.Context, req any) bool {
	if c.Request.Body == nil || c.Request.Body == http.NoBody {
		return true
	}
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// money renders an amount as an exact JSON number with two decimals.
func money(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
}

func toView(a *domain.Account) models.AccountView {
	return models.AccountView{
		ID:               a.ID(),
		HolderName:       a.HolderName(),
		TaxID:            a.TaxID(),
		FormattedTaxID:   a.FormattedTaxID(),
		Balance:          money(a.Balance()),
		CreditLimit:      money(a.CreditLimit()),
		AvailableBalance: money(a.Available()),
		Active:           a.Active(),
		CreatedAt:        a.CreatedAt(),
	}
}
