package audit

import (
	"context"
	"testing"
	"time"

	"github.com/eaglebank/contas/shared/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestHandle(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := NewLogger(zap.New(core))

	err := l.Handle(context.Background(), events.Event{
		Type:      events.AccountDeactivated,
		Timestamp: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Data:      map[string]any{"accountId": "acc-1", "active": false},
	})
	require.NoError(t, err)

	entries := logs.FilterMessage("account event").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "audit", fields["component"])
	assert.Equal(t, events.AccountDeactivated, fields["type"])
	assert.JSONEq(t, `{"accountId":"acc-1","active":false}`, fields["data"].(string))
}

func TestHandle_UnencodablePayload(t *testing.T) {
	l := NewLogger(zap.NewNop())
	err := l.Handle(context.Background(), events.Event{Type: events.AccountCreated, Data: make(chan int)})
	assert.Error(t, err)
}
