package model

import "time"

type Bucket struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	BucketName  string    `gorm:"size:70;not null" json:"bucket_name"`
	Description string    `gorm:"size:100;not null" json:"description"`
	UserID      uint      `gorm:"not null;index" json:"-"`
	CategoryID  *uint     `gorm:"index" json:"-"`
	Created     time.Time `gorm:"autoCreateTime" json:"created"`
	Updated     time.Time `gorm:"autoUpdateTime" json:"updated"`

	User       User       `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Activities []Activity `gorm:"foreignKey:BucketID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

// SerializedBucket is the flat shape buckets take in API responses. Field
// names are frontend contract, don't rename them
type SerializedBucket struct {
	ID          uint      `json:"id"`
	BucketName  string    `json:"bucket_name"`
	Created     time.Time `json:"created"`
	User        string    `json:"user"`
	Description string    `json:"description"`
	Updated     time.Time `json:"updated"`
}

// Serialize flattens the bucket for external consumption. The user field
// carries the owner's email, not the numeric ID. Requires the owner to be
// preloaded
func (b *Bucket) Serialize() SerializedBucket {
	return SerializedBucket{
		ID:          b.ID,
		BucketName:  b.BucketName,
		Created:     b.Created,
		User:        b.User.Email,
		Description: b.Description,
		Updated:     b.Updated,
	}
}
