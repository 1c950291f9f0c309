package reply

import (
	"forumapi/internal/entities"
)

type ReplyStorage interface {
	AddReply(threadID, commentID, content, owner string) (*entities.AddedReply, error)
	// GetRepliesByThreadID returns every reply under the thread's comments,
	// ordered by creation time ascending across the whole thread.
	GetRepliesByThreadID(threadID string) ([]entities.ReplyRow, error)
	VerifyReplyID(replyID string) error
	VerifyReplyOwnership(replyID, owner string) error
	DeleteReplyByID(replyID string) error
}
