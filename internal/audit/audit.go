// Package audit writes every account event from the stream to the log.
package audit

import (
	"context"
	"encoding/json"

	"github.com/eaglebank/contas/shared/events"
	"go.uber.org/zap"
)

type Logger struct {
	logger *zap.Logger
}

func NewLogger(logger *zap.Logger) *Logger {
	return &Logger{logger: logger.With(zap.String("component", "audit"))}
}

// Handle satisfies events.Handler. It only fails on a payload it cannot
// re-encode, which leaves the message pending.
func (l *Logger) Handle(_ context.Context, event events.Event) error {
	data, err := json.Marshal(event.Data)
	if err != nil {
		return err
	}
	l.logger.Info("account event",
		zap.String("type", event.Type),
		zap.Time("occurred_at", event.Timestamp),
		zap.ByteString("data", data),
	)
	return nil
}
