package comment

import (
	"forumapi/internal/entities"
)

type CommentStorage interface {
	AddComment(threadID, content, owner string) (*entities.AddedComment, error)
	// GetCommentsByThreadID returns all comments of a thread ordered by
	// creation time ascending, each row carrying its owner's username and
	// the like-count aggregate.
	GetCommentsByThreadID(threadID string) ([]entities.CommentRow, error)
	VerifyCommentID(commentID string) error
	// VerifyCommentOwnership returns an AuthorizationError when owner is
	// not the comment's owner.
	VerifyCommentOwnership(commentID, owner string) error
	// DeleteCommentByID flips the tombstone flag; the row stays.
	DeleteCommentByID(commentID string) error
}
