package handlers

import (
	"net/http"

	"github.com/bol3ezzz/spalux-backend/services/advertisement"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func listQueryFromContext(c *gin.Context) advertisement.ListQuery {
	return advertisement.ListQuery{
		Category:    c.Query("category"),
		SubCategory: c.Query("subCategory"),
		Governorate: c.Query("governorate"),
		Audience:    c.Query("audience"),
		Limit:       c.Query("limit"),
		Skip:        c.Query("skip"),
	}
}

// ListAdvertisementsHandler serves the public, paginated listing feed.
func (hb *HandlerBundle) ListAdvertisementsHandler(c *gin.Context) {
	logger := getLogger(c)

	result, err := hb.AdService.List(c.Request.Context(), listQueryFromContext(c))
	if err != nil {
		logger.Error("Failed to list advertisements", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   result.Count,
		"total":   result.Total,
		"data":    result.Data,
	})
}

// GetAdvertisementHandler serves a single advertisement by ID.
func (hb *HandlerBundle) GetAdvertisementHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	view, err := hb.AdService.GetPublicByID(c.Request.Context(), id)
	if err != nil {
		logger.Error("Failed to fetch advertisement", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false})
		return
	}
	if view == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": view})
}

// ListByCategoryHandler serves every visible advertisement of one category.
func (hb *HandlerBundle) ListByCategoryHandler(c *gin.Context) {
	logger := getLogger(c)
	category := c.Param("category")

	result, err := hb.AdService.ListByCategory(c.Request.Context(), category, listQueryFromContext(c))
	if err != nil {
		logger.Error("Failed to list advertisements by category",
			zap.String("category", category), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   result.Count,
		"data":    result.Data,
	})
}

// RandomAdvertisementHandler serves one advertisement drawn at random from
// the visible set. An empty set yields an explicit empty result, not an error.
func (hb *HandlerBundle) RandomAdvertisementHandler(c *gin.Context) {
	logger := getLogger(c)

	view, err := hb.AdService.Random(c.Request.Context())
	if err != nil {
		logger.Error("Failed to sample advertisement", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false})
		return
	}
	if view == nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": view})
}
