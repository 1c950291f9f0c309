package usecase

import (
	"forumapi/internal/apperrors"
	"forumapi/internal/comment"
	"forumapi/internal/entities"
	"forumapi/internal/reply"
	"forumapi/internal/thread"
)

type ReplyUseCase struct {
	threads  thread.ThreadStorage
	comments comment.CommentStorage
	replies  reply.ReplyStorage
}

func NewReplyUseCase(threads thread.ThreadStorage, comments comment.CommentStorage, replies reply.ReplyStorage) *ReplyUseCase {
	return &ReplyUseCase{
		threads:  threads,
		comments: comments,
		replies:  replies,
	}
}

func (u *ReplyUseCase) AddReply(payload entities.ReplyPayload, threadID, commentID, credentialID string) (*entities.AddedReply, error) {
	if payload.Content == "" {
		return nil, apperrors.NewValidationError("harus mengirimkan content")
	}
	if err := u.threads.VerifyThreadID(threadID); err != nil {
		return nil, err
	}
	if err := u.comments.VerifyCommentID(commentID); err != nil {
		return nil, err
	}
	return u.replies.AddReply(threadID, commentID, payload.Content, credentialID)
}

func (u *ReplyUseCase) DeleteReplyByID(threadID, commentID, replyID, credentialID string) error {
	if err := u.threads.VerifyThreadID(threadID); err != nil {
		return err
	}
	if err := u.comments.VerifyCommentID(commentID); err != nil {
		return err
	}
	if err := u.replies.VerifyReplyID(replyID); err != nil {
		return err
	}
	if err := u.replies.VerifyReplyOwnership(replyID, credentialID); err != nil {
		return err
	}
	return u.replies.DeleteReplyByID(replyID)
}
