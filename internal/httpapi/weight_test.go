package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestUpdateWeight_RejectsOutOfRangeWeight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.PUT("/api/v1/rankings/weight", UpdateWeight)

	body := strings.NewReader(`{"viewWeight":"5","likeWeight":"5","orderWeight":"5"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/rankings/weight", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateWeight_RejectsNegativeWeight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.PUT("/api/v1/rankings/weight", UpdateWeight)

	body := strings.NewReader(`{"viewWeight":"-0.1","likeWeight":"0.2","orderWeight":"0.6"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/rankings/weight", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateWeight_MissingFieldIsRejected(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.PUT("/api/v1/rankings/weight", UpdateWeight)

	body := strings.NewReader(`{"viewWeight":"0.1"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/rankings/weight", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
