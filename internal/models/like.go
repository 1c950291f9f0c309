package models

import (
	"time"
)

// Like is one user's active like on a comment. The unique index enforces
// one like per user per comment and closes the check-then-act race in the
// toggle path: a concurrent duplicate insert fails at the database instead
// of producing a second row.
type Like struct {
	ID        string    `gorm:"primaryKey;size:50" json:"id"`
	CommentID string    `gorm:"size:50;not null;uniqueIndex:idx_comment_owner_like" json:"comment_id"`
	Comment   Comment   `gorm:"foreignKey:CommentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Owner     string    `gorm:"size:50;not null;uniqueIndex:idx_comment_owner_like" json:"owner"`
	User      User      `gorm:"foreignKey:Owner;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	CreatedAt time.Time `gorm:"column:date" json:"created_at"`
}
