// Package model defines database models
package model

import "time"

type User struct {
	ID           uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string     `gorm:"size:50;uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	FirstName    *string    `gorm:"size:30" json:"first_name,omitempty"`
	LastName     *string    `gorm:"size:30" json:"last_name,omitempty"`
	DateJoined   time.Time  `gorm:"autoCreateTime" json:"date_joined"`
	IsActive     bool       `gorm:"default:true" json:"is_active"`
	LastLogin    *time.Time `json:"last_login,omitempty"`

	// Ownership is exclusive. Removing a user takes every bucket and
	// activity they own with them
	Buckets    []Bucket   `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Activities []Activity `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
