package events

import (
	"context"

	"github.com/rs/zerolog"
)

// LoggingEmitter logs every event at debug level through the application
// logger, standing in for the real downstream consumer (out of scope).
type LoggingEmitter struct {
	Logger zerolog.Logger
}

func (e LoggingEmitter) Publish(_ context.Context, event ProductViewedEventV1) {
	entry := e.Logger.Debug().
		Int64("product_id", event.ProductID)
	if event.UserID != nil {
		entry = entry.Int64("user_id", *event.UserID)
	}
	entry.Msg("product_viewed_event_v1")
}
