package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"bucketlist/bucket-api/internal/model"
	"bucketlist/bucket-api/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type activityBody struct {
	Description string `json:"description"`
}

func (a *API) ActivityCreate(c *gin.Context) {
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

	var data activityBody
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})

		zap.L().Error("Failed to read JSON body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if strings.TrimSpace(data.Description) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "No description provided",
			"requestID": requestID,
		})
		return
	}

	// The store rejects buckets the caller doesn't own with the same
	// not-found a bad ID produces
	saved, err := a.Store.Activities.Save(&model.Activity{
		Description: data.Description,
		BucketID:    uint(bucketID),
		UserID:      userID,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Bucket not found. It either doesn't exist or you don't own it",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create activity", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, saved.Serialize())
}
