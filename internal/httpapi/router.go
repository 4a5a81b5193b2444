// Package httpapi wires the gin routes exposing the ranking, weight,
// product and admin batch-trigger endpoints.
package httpapi

import (
	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with every route registered.
func NewRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/health", HealthCheck)

	api := r.Group("/api/v1")
	api.GET("/rankings", GetRankings)
	api.GET("/rankings/:productId", GetProductRank)
	api.GET("/rankings/weight", GetWeight)
	api.PUT("/rankings/weight", UpdateWeight)

	api.GET("/products", ListProducts)
	api.GET("/products/:id", GetProduct)

	api.POST("/admin/batch/rankings/:period", TriggerBatchRanking)

	return r
}

// HealthCheck is a liveness probe endpoint.
func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}
