package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CategoryFetch lists every known category. Cached on the router because
// the set changes rarely
func (a *API) CategoryFetch(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	categories, err := a.Store.Categories.All()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch categories", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, categories)
}
