package api

import (
	"net/http"

	"bucketlist/bucket-api/internal/model"
	"bucketlist/bucket-api/pkg/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type bucketBody struct {
	BucketName  string `json:"bucket_name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

func (a *API) BucketCreate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(uint)

	var data bucketBody
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})

		zap.L().Error("Failed to read JSON body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := validators.BucketNameValidator(data.BucketName); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	if err := validators.DescriptionValidator(data.Description); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	if err := validators.CategoryValidator(data.Category); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	bucket := model.Bucket{
		BucketName:  data.BucketName,
		Description: data.Description,
		UserID:      userID,
	}

	// Categories spring into existence the first time a bucket names them
	if data.Category != "" {
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

	saved, err := a.Store.Buckets.Save(&bucket)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create bucket", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, saved.Serialize())
}
