package usecase

import (
	"forumapi/internal/comment"
	"forumapi/internal/like"
	"forumapi/internal/thread"
)

type LikeUseCase struct {
	threads  thread.ThreadStorage
	comments comment.CommentStorage
	likes    like.LikeStorage
}

func NewLikeUseCase(threads thread.ThreadStorage, comments comment.CommentStorage, likes like.LikeStorage) *LikeUseCase {
	return &LikeUseCase{
		threads:  threads,
		comments: comments,
		likes:    likes,
	}
}

// ToggleLike likes the comment when the user has no active like on it, and
// removes the existing like otherwise. A single endpoint covers both
// directions.
func (u *LikeUseCase) ToggleLike(threadID, commentID, credentialID string) error {
	if err := u.threads.VerifyThreadID(threadID); err != nil {
		return err
	}
	if err := u.comments.VerifyCommentID(commentID); err != nil {
		return err
	}

	likeID, err := u.likes.IsAlreadyLiked(commentID, credentialID)
	if err != nil {
		return err
	}
	if likeID != "" {
		return u.likes.DeleteLikeByID(likeID)
	}

	_, err = u.likes.AddLike(commentID, credentialID)
	return err
}
