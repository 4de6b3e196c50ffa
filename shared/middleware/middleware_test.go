package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := RegisterValidation("digits", func(v string) bool {
		return v != "" && strings.Trim(v, "0123456789") == ""
	}); err != nil {
		panic(err)
	}
}

type sampleRequest struct {
	Name string `validate:"required,max=5"`
	Code string `validate:"omitempty,digits"`
}

func TestValidateRequest(t *testing.T) {
	assert.Nil(t, ValidateRequest(sampleRequest{Name: "ana", Code: "123"}))
	assert.Nil(t, ValidateRequest(sampleRequest{Name: "ana"}))

	errs := ValidateRequest(sampleRequest{Name: "", Code: "12a"})
	require.Len(t, errs, 2)
	assert.Equal(t, ValidationError{Field: "Name", Message: "This field is required", Type: "required"}, errs[0])
	assert.Equal(t, "Code", errs[1].Field)
	assert.Equal(t, "digits", errs[1].Type)

	errs = ValidateRequest(sampleRequest{Name: "too long"})
	require.Len(t, errs, 1)
	assert.Equal(t, "Value is too long", errs[0].Message)
}

func newObservedRouter() (*gin.Engine, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	r := gin.New()
	r.Use(RecoveryMiddleware(logger), LoggingMiddleware(logger))
	r.NoRoute(NotFound)
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/bad", func(c *gin.Context) { RespondWithError(c, http.StatusBadRequest, "nope") })
	r.GET("/panic", func(c *gin.Context) { panic("secret detail") })
	return r, logs
}

func serve(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestLoggingMiddleware(t *testing.T) {
	r, logs := newObservedRouter()

	serve(r, "/ok")
	serve(r, "/bad")

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "/ok", entries[0].ContextMap()["path"])
	assert.EqualValues(t, http.StatusOK, entries[0].ContextMap()["status"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
}

func TestRecoveryMiddleware(t *testing.T) {
	r, logs := newObservedRouter()

	w := serve(r, "/panic")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "secret")
	assert.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
}

func TestNotFound(t *testing.T) {
	r, _ := newObservedRouter()

	w := serve(r, "/missing")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Route not found"}`, w.Body.String())
}
