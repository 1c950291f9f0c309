package models

import (
	"time"
)

type User struct {
	ID        string    `gorm:"primaryKey;size:50" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Password  string    `gorm:"not null" json:"-"` // Hash
	Fullname  string    `gorm:"size:100" json:"fullname"`
	CreatedAt time.Time `json:"created_at"`
}
