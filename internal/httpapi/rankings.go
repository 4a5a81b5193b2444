package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"productranking/internal/rank"
	"productranking/internal/ranking"
)

// GetRankings serves GET /api/v1/rankings?period=&page=&size=.
func GetRankings(c *gin.Context) {
	period := ranking.ParsePeriod(c.DefaultQuery("period", "hourly"))
	page := queryInt(c, "page", 0)
	size := queryInt(c, "size", 20)

	result, err := rank.FindTopN(c.Request.Context(), period, page, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"period":   period.String(),
		"page":     page,
		"size":     size,
		"rankings": result.Items,
		"hasNext":  result.HasNext,
	})
}

// GetProductRank serves GET /api/v1/rankings/:productId?period=.
func GetProductRank(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid productId"})
		return
	}
	period := ranking.ParsePeriod(c.DefaultQuery("period", "hourly"))

	position, found, err := rank.FindRank(c.Request.Context(), productID, period)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "not ranked"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"productId": productID, "period": period.String(), "rank": position})
}

func queryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
