package api

import (
	"errors"
	"net/http"
	"strconv"

	"bucketlist/bucket-api/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) ActivityDelete(c *gin.Context) {
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

	activityID, err := strconv.ParseUint(c.Param("activityID"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Activity ID is not a valid integer",
			"requestID": requestID,
		})
		return
	}

	err = a.Store.Activities.Delete(uint(bucketID), userID, uint(activityID))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Activity not found. It either doesn't exist or you don't own it",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to delete activity", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Activity deleted",
	})
}
