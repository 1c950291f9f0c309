package entities

import (
	"fmt"
	"time"
)

// DeletedReplyContent replaces a tombstoned reply's content when rendered.
const DeletedReplyContent = "**balasan telah dihapus**"

type ReplyPayload struct {
	Content string `json:"content"`
}

type AddedReply struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

// ReplyRow is a raw reply row from storage. CommentID is only used to group
// replies under their comment during aggregation and never rendered.
type ReplyRow struct {
	ID        string    `gorm:"column:id"`
	CommentID string    `gorm:"column:comment_id"`
	Content   string    `gorm:"column:content"`
	Date      time.Time `gorm:"column:date"`
	Username  string    `gorm:"column:username"`
	IsDelete  bool      `gorm:"column:is_delete"`
}

type ReplyDetail struct {
	ID       string    `json:"id"`
	Content  string    `json:"content"`
	Date     time.Time `json:"date"`
	Username string    `json:"username"`
}

// NewReplyDetail masks a tombstoned reply the same way NewCommentDetail
// masks a comment.
func NewReplyDetail(row ReplyRow) (ReplyDetail, error) {
	content := row.Content
	if row.IsDelete {
		content = DeletedReplyContent
	} else if content == "" {
		return ReplyDetail{}, fmt.Errorf("reply %s has no content", row.ID)
	}

	return ReplyDetail{
		ID:       row.ID,
		Content:  content,
		Date:     row.Date,
		Username: row.Username,
	}, nil
}
