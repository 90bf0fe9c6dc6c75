package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"bucketlist/bucket-api/internal/store"
	"bucketlist/bucket-api/pkg/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) BucketUpdate(c *gin.Context) {
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

	var data bucketBody
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})

		zap.L().Error("Failed to read JSON body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	bucket, err := a.Store.Buckets.Get(uint(bucketID), userID)
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

		zap.L().Error("Failed to fetch bucket", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if strings.TrimSpace(data.BucketName) != "" {
		if err := validators.BucketNameValidator(data.BucketName); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})
			return
		}

		bucket.BucketName = data.BucketName
	}

	if strings.TrimSpace(data.Description) != "" {
		if err := validators.DescriptionValidator(data.Description); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})
			return
		}

		bucket.Description = data.Description
	}

	if data.Category != "" {
		if err := validators.CategoryValidator(data.Category); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})
			return
		}

		category, err := a.Store.Categories.GetOrCreate(data.Category)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to resolve category", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		bucket.CategoryID = &category.ID
	}

	saved, err := a.Store.Buckets.Save(bucket)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update bucket", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, saved.Serialize())
}
