package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"productranking/internal/catalog"
)

// GetProduct serves GET /api/v1/products/:id.
func GetProduct(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var userID *int64
	if raw := c.Query("userId"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
			userID = &v
		}
	}

	detail, found, err := catalog.FindProductByID(c.Request.Context(), productID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, detail)
}

// ListProducts serves GET /api/v1/products?page=&size=&sort=&brandId=.
func ListProducts(c *gin.Context) {
	criteria := catalog.ListCriteria{
		Page: queryInt(c, "page", 0),
		Size: queryInt(c, "size", 20),
		Sort: c.DefaultQuery("sort", ""),
	}
	if raw := c.Query("brandId"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
			criteria.BrandID = &v
		}
	}

	result, err := catalog.FindProducts(c.Request.Context(), criteria)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"products": result.Products,
		"total":    result.Total,
		"page":     criteria.Page,
		"size":     criteria.Size,
	})
}
