package usecase

import (
	"forumapi/internal/apperrors"
	"forumapi/internal/comment"
	"forumapi/internal/entities"
	"forumapi/internal/reply"
	"forumapi/internal/thread"
)

type ThreadUseCase struct {
	threads  thread.ThreadStorage
	comments comment.CommentStorage
	replies  reply.ReplyStorage
}

func NewThreadUseCase(threads thread.ThreadStorage, comments comment.CommentStorage, replies reply.ReplyStorage) *ThreadUseCase {
	return &ThreadUseCase{
		threads:  threads,
		comments: comments,
		replies:  replies,
	}
}

func (u *ThreadUseCase) AddThread(payload entities.ThreadPayload, credentialID string) (*entities.AddedThread, error) {
	if payload.Title == "" || payload.Body == "" {
		return nil, apperrors.NewValidationError("harus mengirimkan title dan body")
	}
	return u.threads.AddThread(payload.Title, payload.Body, credentialID)
}

// GetThreadByID assembles the nested thread view: header, comments in
// creation order, and each comment's replies in creation order. Replies are
// pre-grouped by comment id so attachment is a single pass over the
// comments; within a group the storage ordering is preserved.
func (u *ThreadUseCase) GetThreadByID(threadID string) (*entities.ThreadDetail, error) {
	// Missing thread short-circuits before any comment or reply query.
	if err := u.threads.VerifyThreadID(threadID); err != nil {
		return nil, err
	}

	header, err := u.threads.GetThreadByID(threadID)
	if err != nil {
		return nil, err
	}

	commentRows, err := u.comments.GetCommentsByThreadID(threadID)
	if err != nil {
		return nil, err
	}

	replyRows, err := u.replies.GetRepliesByThreadID(threadID)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]entities.ReplyDetail, len(commentRows))
	for _, row := range replyRows {
		detail, err := entities.NewReplyDetail(row)
		if err != nil {
			return nil, err
		}
		grouped[row.CommentID] = append(grouped[row.CommentID], detail)
	}

	comments := make([]entities.CommentDetail, 0, len(commentRows))
	for _, row := range commentRows {
		detail, err := entities.NewCommentDetail(row, grouped[row.ID])
		if err != nil {
			return nil, err
		}
		comments = append(comments, detail)
	}

	return &entities.ThreadDetail{
		ID:       header.ID,
		Title:    header.Title,
		Body:     header.Body,
		Date:     header.Date,
		Username: header.Username,
		Comments: comments,
	}, nil
}
