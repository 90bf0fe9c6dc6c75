// Package service holds background tasks that run next to the API
package service

import (
	"time"

	"bucketlist/bucket-api/internal/model"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AccountCleanup periodically hard-deletes accounts that have been
// deactivated for longer than the retention window. The FK cascades remove
// their buckets and activities in the same statement
func AccountCleanup(tick time.Duration, retention time.Duration, db *gorm.DB) {
	ticker := time.NewTicker(tick)

	zap.L().Debug("Account cleanup attached", zap.Duration("tick_every", tick))

	go func() {
		for range ticker.C {
			cutoff := time.Now().Add(-retention)

			res := db.
				Where("is_active = ? AND (last_login < ? OR (last_login IS NULL AND date_joined < ?))",
					false, cutoff, cutoff).
				Delete(&model.User{})
			if res.Error != nil {
				zap.L().Error("Failed to delete stale accounts", zap.Error(res.Error))
				continue
			}

			if res.RowsAffected > 0 {
				zap.L().Info("Account cleanup finished", zap.Int64("deleted", res.RowsAffected))
			}
		}
	}()
}
