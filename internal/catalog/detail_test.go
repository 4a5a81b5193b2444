package catalog

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"productranking/internal/events"
	"productranking/internal/redisrank"
	"productranking/internal/store/postgres"
	"productranking/internal/testsupport"
)

type recordingEmitter struct {
	events []events.ProductViewedEventV1
}

func (r *recordingEmitter) Publish(_ context.Context, e events.ProductViewedEventV1) {
	r.events = append(r.events, e)
}

func TestFindProductByID_MissFillsCacheAndEmitsEvent(t *testing.T) {
	fake := testsupport.NewFakeRedis()
	Init(fake)
	redisrank.Init(fake)
	ctx := context.Background()

	rec := &recordingEmitter{}
	events.Init(rec)
	t.Cleanup(func() { events.Init(events.NoopEmitter{}) })

	originalDBFindProductByID := dbFindProductByID
	t.Cleanup(func() { dbFindProductByID = originalDBFindProductByID })
	dbFindProductByID = func(_ context.Context, id int64) (postgres.Product, bool, error) {
		return postgres.Product{ID: id, Name: "widget", Price: decimal.NewFromInt(100), Stock: 5}, true, nil
	}

	detail, found, err := FindProductByID(ctx, 42, nil)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "widget", detail.Name)
	assert.Nil(t, detail.Rank)

	cached, ok, err := readDetailCache(ctx, DetailKey(42))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "widget", cached.Name)

	require.Len(t, rec.events, 1)
	assert.Equal(t, int64(42), rec.events[0].ProductID)
}

func TestFindProductByID_NotFoundReturnsFalse(t *testing.T) {
	fake := testsupport.NewFakeRedis()
	Init(fake)
	ctx := context.Background()

	originalDBFindProductByID := dbFindProductByID
	t.Cleanup(func() { dbFindProductByID = originalDBFindProductByID })
	dbFindProductByID = func(_ context.Context, id int64) (postgres.Product, bool, error) {
		return postgres.Product{}, false, nil
	}

	_, found, err := FindProductByID(ctx, 404, nil)
	require.NoError(t, err)
	assert.False(t, found)
}
