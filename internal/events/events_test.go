package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingEmitter struct {
	events []ProductViewedEventV1
}

func (r *recordingEmitter) Publish(_ context.Context, event ProductViewedEventV1) {
	r.events = append(r.events, event)
}

func TestPublish_ForwardsToInstalledEmitter(t *testing.T) {
	rec := &recordingEmitter{}
	Init(rec)
	t.Cleanup(func() { Init(NoopEmitter{}) })

	uid := int64(42)
	Publish(context.Background(), ProductViewedEventV1{ProductID: 7, UserID: &uid})

	assert.Len(t, rec.events, 1)
	assert.Equal(t, int64(7), rec.events[0].ProductID)
	assert.Equal(t, int64(42), *rec.events[0].UserID)
}

func TestNoopEmitter_DiscardsEvents(t *testing.T) {
	assert.NotPanics(t, func() {
		NoopEmitter{}.Publish(context.Background(), ProductViewedEventV1{ProductID: 1})
	})
}
