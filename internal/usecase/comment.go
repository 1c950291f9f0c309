package usecase

import (
	"forumapi/internal/apperrors"
	"forumapi/internal/comment"
	"forumapi/internal/entities"
	"forumapi/internal/thread"
)

type CommentUseCase struct {
	threads  thread.ThreadStorage
	comments comment.CommentStorage
}

func NewCommentUseCase(threads thread.ThreadStorage, comments comment.CommentStorage) *CommentUseCase {
	return &CommentUseCase{threads: threads, comments: comments}
}

func (u *CommentUseCase) AddComment(payload entities.CommentPayload, threadID, credentialID string) (*entities.AddedComment, error) {
	if payload.Content == "" {
		return nil, apperrors.NewValidationError("harus mengirimkan content")
	}
	if err := u.threads.VerifyThreadID(threadID); err != nil {
		return nil, err
	}
	return u.comments.AddComment(threadID, payload.Content, credentialID)
}

// DeleteCommentByID tombstones a comment. Checks run in a fixed order:
// existence (thread, then comment), then ownership, then the mutation.
func (u *CommentUseCase) DeleteCommentByID(threadID, commentID, credentialID string) error {
	if err := u.threads.VerifyThreadID(threadID); err != nil {
		return err
	}
	if err := u.comments.VerifyCommentID(commentID); err != nil {
		return err
	}
	if err := u.comments.VerifyCommentOwnership(commentID, credentialID); err != nil {
		return err
	}
	return u.comments.DeleteCommentByID(commentID)
}
