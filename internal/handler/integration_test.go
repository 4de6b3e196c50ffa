package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/eaglebank/contas/internal/repository"
	"github.com/eaglebank/contas/internal/service"
	"github.com/eaglebank/contas/shared/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newServiceRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.NewAccountService(repository.NewAccountStore(), nil, zap.NewNop())
	r := gin.New()
	r.Use(middleware.RecoveryMiddleware(zap.NewNop()))
	r.NoRoute(middleware.NotFound)
	NewAccountHandler(svc, svc, zap.NewNop()).RegisterRoutes(r)
	return r
}

type accountJSON struct {
	ID               string  `json:"id"`
	Balance          float64 `json:"balance"`
	AvailableBalance float64 `json:"availableBalance"`
	Active           bool    `json:"active"`
}

func decodeAccount(t *testing.T, raw []byte) accountJSON {
	t.Helper()
	var a accountJSON
	require.NoError(t, json.Unmarshal(raw, &a), string(raw))
	return a
}

func TestAccountLifecycleOverHTTP(t *testing.T) {
	r := newServiceRouter()

	w := acctDoRequest(r, http.MethodPost, "/api/contas", map[string]interface{}{
		"holderName": "João Silva", "taxId": "529.982.247-25", "initialBalance": "1000", "creditLimit": 500,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	origin := decodeAccount(t, w.Body.Bytes())

	w = acctDoRequest(r, http.MethodPost, "/api/contas", map[string]interface{}{
		"holderName": "Maria Souza", "taxId": "111.444.777-35",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	dest := decodeAccount(t, w.Body.Bytes())

	w = acctDoRequest(r, http.MethodPost, "/api/contas", map[string]interface{}{
		"holderName": "Other", "taxId": "52998224725",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = acctDoRequest(r, http.MethodPost, "/api/contas/"+origin.ID+"/sacar", map[string]interface{}{"amount": 1200})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, -200.0, decodeAccount(t, w.Body.Bytes()).Balance)

	w = acctDoRequest(r, http.MethodPost, "/api/contas/"+origin.ID+"/sacar", map[string]interface{}{"amount": 301})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = acctDoRequest(r, http.MethodPost, "/api/contas/"+origin.ID+"/transferir",
		map[string]interface{}{"destinationId": dest.ID, "amount": "50.25"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var tr struct {
		Origin      accountJSON `json:"origin"`
		Destination accountJSON `json:"destination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tr))
	assert.Equal(t, -250.25, tr.Origin.Balance)
	assert.Equal(t, 50.25, tr.Destination.Balance)

	w = acctDoRequest(r, http.MethodPost, "/api/contas/"+dest.ID+"/inativar", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, decodeAccount(t, w.Body.Bytes()).Active)

	w = acctDoRequest(r, http.MethodPost, "/api/contas/"+dest.ID+"/depositar", map[string]interface{}{"amount": 10})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = acctDoRequest(r, http.MethodPost, "/api/contas/"+origin.ID+"/transferir",
		map[string]interface{}{"destinationId": dest.ID, "amount": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = acctDoRequest(r, http.MethodGet, "/api/contas/cpf/52998224725", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, -250.25, decodeAccount(t, w.Body.Bytes()).Balance, "failed transfer left origin untouched")

	w = acctDoRequest(r, http.MethodGet, "/api/contas", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []accountJSON
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 2)
}

func TestNotFoundRoutesOverHTTP(t *testing.T) {
	r := newServiceRouter()

	w := acctDoRequest(r, http.MethodGet, "/api/contas/acc-6f1c1f6e-3b0a-4d7e-9a55-0c1f3a2b4d5e", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"account not found"}`, w.Body.String())

	w = acctDoRequest(r, http.MethodPost, "/api/contas/acc-missing/depositar", map[string]interface{}{"amount": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = acctDoRequest(r, http.MethodGet, "/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Route not found"}`, w.Body.String())
}
