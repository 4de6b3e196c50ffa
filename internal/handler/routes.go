package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the account API under /api/contas. Every per-account
// route names its path parameter :id; for transfers that is the origin.
func (h *AccountHandler) RegisterRoutes(r gin.IRouter) {
	contas := r.Group("/api/contas")
	{
		contas.GET("", h.ListAccounts)
		contas.POST("", h.CreateAccount)
		contas.GET("/cpf/:cpf", h.GetAccountByTaxID)
		contas.GET("/:id", h.GetAccount)
		contas.POST("/:id/depositar", h.Deposit)
		contas.POST("/:id/sacar", h.Withdraw)
		contas.POST("/:id/transferir", h.Transfer)
		contas.POST("/:id/inativar", h.DeactivateAccount)
		contas.POST("/:id/reativar", h.ReactivateAccount)
	}
}

type endpoint struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

var endpoints = []endpoint{
	{http.MethodGet, "/api/contas", "List every account"},
	{http.MethodGet, "/api/contas/:id", "Fetch an account by id"},
	{http.MethodGet, "/api/contas/cpf/:cpf", "Fetch an account by CPF"},
	{http.MethodPost, "/api/contas", "Open an account"},
	{http.MethodPost, "/api/contas/:id/depositar", "Deposit into an account"},
	{http.MethodPost, "/api/contas/:id/sacar", "Withdraw from an account"},
	{http.MethodPost, "/api/contas/:id/transferir", "Transfer to another account"},
	{http.MethodPost, "/api/contas/:id/inativar", "Deactivate an account"},
	{http.MethodPost, "/api/contas/:id/reativar", "Reactivate an account"},
}

// Welcome describes the API.
func Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":   "Contas API",
		"endpoints": endpoints,
	})
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
