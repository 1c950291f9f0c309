package entities

import (
	"fmt"
	"time"

	"forumapi/internal/utils"
)

// DeletedCommentContent replaces a tombstoned comment's content when rendered.
const DeletedCommentContent = "**komentar telah dihapus**"

type CommentPayload struct {
	Content string `json:"content"`
}

type AddedComment struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

// CommentRow is a raw comment row as the storage layer returns it: owner
// already resolved to a username and the like aggregate attached. The
// aggregate count arrives as text (COUNT is cast in the query, the way
// bigint aggregates come off the wire) and is parsed during normalization.
type CommentRow struct {
	ID        string    `gorm:"column:id"`
	Username  string    `gorm:"column:username"`
	Date      time.Time `gorm:"column:date"`
	Content   string    `gorm:"column:content"`
	IsDelete  bool      `gorm:"column:is_delete"`
	LikeCount string    `gorm:"column:like_count"`
}

// CommentDetail is the display-ready comment inside a thread view.
type CommentDetail struct {
	ID        string        `json:"id"`
	Username  string        `json:"username"`
	Date      time.Time     `json:"date"`
	Replies   []ReplyDetail `json:"replies"`
	Content   string        `json:"content"`
	LikeCount int           `json:"likeCount"`
}

// NewCommentDetail builds the display record for one comment. A tombstoned
// row is masked unconditionally, without looking at its stored content: a
// deleted row may legitimately have been scrubbed. For a live row an empty
// content is a contract violation, since the write path never accepts one.
func NewCommentDetail(row CommentRow, replies []ReplyDetail) (CommentDetail, error) {
	if replies == nil {
		replies = []ReplyDetail{}
	}

	content := row.Content
	if row.IsDelete {
		content = DeletedCommentContent
	} else if content == "" {
		return CommentDetail{}, fmt.Errorf("comment %s has no content", row.ID)
	}

	return CommentDetail{
		ID:        row.ID,
		Username:  row.Username,
		Date:      row.Date,
		Replies:   replies,
		Content:   content,
		LikeCount: utils.StringToInt(row.LikeCount),
	}, nil
}
