package models

import (
	"time"
)

type Comment struct {
	ID        string    `gorm:"primaryKey;size:50" json:"id"`
	ThreadID  string    `gorm:"size:50;not null;index" json:"thread_id"`
	Thread    Thread    `gorm:"foreignKey:ThreadID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Content   string    `gorm:"type:text" json:"content"`
	Owner     string    `gorm:"size:50;not null;index" json:"owner"`
	User      User      `gorm:"foreignKey:Owner;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	CreatedAt time.Time `gorm:"column:date" json:"date"`
	// Tombstone flag. A deleted comment keeps its row so ordering and
	// reply attachment stay intact; only rendering is affected.
	IsDelete bool `gorm:"column:is_delete;default:false" json:"is_delete"`
}
