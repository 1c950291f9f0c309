package models

import (
	"time"
)

type Thread struct {
	ID        string    `gorm:"primaryKey;size:50" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Body      string    `gorm:"type:text" json:"body"`
	Owner     string    `gorm:"size:50;not null;index" json:"owner"`
	User      User      `gorm:"foreignKey:Owner;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	CreatedAt time.Time `gorm:"column:date" json:"date"`
}
