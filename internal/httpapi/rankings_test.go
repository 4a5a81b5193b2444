package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"productranking/internal/ranking"
	"productranking/internal/redisrank"
	"productranking/internal/testsupport"
)

// TestGetRankings_ResponseShapeMatchesDocumentedContract guards
// { rankings: [{rank, productId, score}], hasNext } — the field names and
// nesting the spec's read API contract mandates, as opposed to a bare
// "items" array of untagged Go field names.
func TestGetRankings_ResponseShapeMatchesDocumentedContract(t *testing.T) {
	fake := testsupport.NewFakeRedis()
	redisrank.Init(fake)

	require.NoError(t, redisrank.Publish(context.Background(), ranking.Hourly, time.Now(), []redisrank.Entry{
		{ProductID: 100, Score: ranking.ScoreFromFloat(599.76)},
		{ProductID: 200, Score: ranking.ScoreFromFloat(275.40)},
	}))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/v1/rankings", GetRankings)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rankings?period=hourly&page=0&size=10", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	rankings, ok := body["rankings"].([]any)
	require.True(t, ok, "response must carry a %q array", "rankings")
	require.Len(t, rankings, 2)

	first, ok := rankings[0].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, first, "rank")
	assert.Contains(t, first, "productId")
	assert.Contains(t, first, "score")
	assert.NotContains(t, body, "items")
}
