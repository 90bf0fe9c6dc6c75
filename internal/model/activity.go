package model

import "time"

type Activity struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Description string    `gorm:"type:text" json:"description"`
	BucketID    uint      `gorm:"not null;index" json:"bucket_id"`
	UserID      uint      `gorm:"not null;index" json:"-"`
	Created     time.Time `gorm:"autoCreateTime" json:"created"`
	Updated     time.Time `gorm:"autoUpdateTime" json:"updated"`

	User   User   `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Bucket Bucket `gorm:"foreignKey:BucketID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

// SerializedActivity mirrors the legacy response shape, activity_id and all
type SerializedActivity struct {
	ActivityID  uint      `json:"activity_id"`
	Description string    `json:"description"`
	User        string    `json:"user"`
	Created     time.Time `json:"created"`
	BucketID    uint      `json:"bucket_id"`
	Updated     time.Time `json:"updated"`
}

// Serialize flattens the activity for external consumption. Requires the
// owner to be preloaded
func (a *Activity) Serialize() SerializedActivity {
	return SerializedActivity{
		ActivityID:  a.ID,
		Description: a.Description,
		User:        a.User.Email,
		Created:     a.Created,
		BucketID:    a.BucketID,
		Updated:     a.Updated,
	}
}
