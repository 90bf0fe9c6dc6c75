package model

// Category is a shared classification for buckets. Names are globally
// unique. Deleting a category detaches its buckets instead of deleting them
type Category struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryName string `gorm:"size:70;uniqueIndex;not null" json:"category_name"`

	Buckets []Bucket `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
}
