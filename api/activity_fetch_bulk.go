package api

import (
	"net/http"
	"strconv"

	"bucketlist/bucket-api/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) ActivityFetchBulk(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(uint)

	bucketID, err := strconv.ParseUint(c.Param("bucketID"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Bucket ID is not a valid integer",
			"requestID": requestID,
		})
		return
	}

	pageStr := c.DefaultQuery("page", "0")
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid page provided",
			"requestID": requestID,
		})
		return
	}

	limitStr := c.DefaultQuery("limit", "20")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 || limit > 100 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid limit provided",
			"requestID": requestID,
		})
		return
	}

	owned, err := a.Store.Buckets.Exists(uint(bucketID), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to check if bucket exists", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if !owned {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "Bucket not found. It either doesn't exist or you don't own it",
			"requestID": requestID,
		})
		return
	}

	activities, err := a.Store.Activities.ByBucket(uint(bucketID), userID, limit, page*limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch activities", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	serialized := make([]model.SerializedActivity, len(activities))
	for i := range activities {
		serialized[i] = activities[i].Serialize()
	}

	c.JSON(http.StatusOK, serialized)
}
