// Package events restores the distilled spec's implied ProductViewedEventV1
// consumer contract: an emitter interface the product detail path publishes
// through, plus an in-process subscriber since the real message broker is
// out of scope. Mirrors the teacher's pattern of broadcasting typed
// event/update structs (DeltaMessage, CompactServerUpdate) over a single
// internal channel rather than reaching for a message queue.
package events

import "context"

// ProductViewedEventV1 is emitted synchronously whenever the detail path
// serves a product, before the response is returned.
type ProductViewedEventV1 struct {
	ProductID int64
	UserID    *int64
}

// Emitter publishes domain events. The production wiring wraps a
// zerolog-backed subscriber; tests can substitute a recording stub.
type Emitter interface {
	Publish(ctx context.Context, event ProductViewedEventV1)
}

// emitter is the package-level handle the catalog package publishes
// through.
var emitter Emitter = NoopEmitter{}

// Init installs the emitter used by Publish.
func Init(e Emitter) {
	emitter = e
}

// Publish forwards to the installed emitter.
func Publish(ctx context.Context, event ProductViewedEventV1) {
	emitter.Publish(ctx, event)
}

// NoopEmitter discards every event; it is the zero-value default so
// catalog code never needs a nil check.
type NoopEmitter struct{}

func (NoopEmitter) Publish(context.Context, ProductViewedEventV1) {}
