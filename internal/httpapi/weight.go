package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"productranking/internal/store/postgres"
)

// GetWeight serves GET /api/v1/rankings/weight.
func GetWeight(c *gin.Context) {
	w, err := postgres.CurrentWeight(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"viewWeight": w.View, "likeWeight": w.Like, "orderWeight": w.Order})
}

type updateWeightRequest struct {
	View  *decimal.Decimal `json:"viewWeight" binding:"required"`
	Like  *decimal.Decimal `json:"likeWeight" binding:"required"`
	Order *decimal.Decimal `json:"orderWeight" binding:"required"`
}

var (
	weightMin = decimal.Zero
	weightMax = decimal.NewFromInt(1)
)

// isValidWeight reports whether w falls in the [0, 1] range every weight in
// the composition formula must stay within.
func isValidWeight(w decimal.Decimal) bool {
	return !w.LessThan(weightMin) && !w.GreaterThan(weightMax)
}

// UpdateWeight serves PUT /api/v1/rankings/weight, inserting a new weight
// row rather than mutating one in place. Any weight outside [0, 1] is
// rejected rather than persisted.
func UpdateWeight(c *gin.Context) {
	var req updateWeightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !isValidWeight(*req.View) || !isValidWeight(*req.Like) || !isValidWeight(*req.Order) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "viewWeight, likeWeight and orderWeight must each be in [0, 1]"})
		return
	}

	w, err := postgres.SaveWeight(c.Request.Context(), *req.View, *req.Like, *req.Order)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": w.ID, "viewWeight": w.View, "likeWeight": w.Like, "orderWeight": w.Order})
}
