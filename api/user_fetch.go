package api

import (
	"net/http"

	"bucketlist/bucket-api/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserFetch returns the caller's profile and their 10 newest buckets.
// This is used when initially loading the dashboard
func (a *API) UserFetch(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(uint)

	user, err := a.Store.Users.ByID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	buckets, err := a.Store.Buckets.ByUser(userID, 10, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch initial user data", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	serialized := make([]model.SerializedBucket, len(buckets))
	for i := range buckets {
		serialized[i] = buckets[i].Serialize()
	}

	c.JSON(http.StatusOK, gin.H{
		"user":    user,
		"buckets": serialized,
	})
}
