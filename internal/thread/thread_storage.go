package thread

import (
	"forumapi/internal/entities"
)

type ThreadStorage interface {
	AddThread(title, body, owner string) (*entities.AddedThread, error)
	// VerifyThreadID returns a NotFoundError when the id resolves to no row.
	VerifyThreadID(threadID string) error
	GetThreadByID(threadID string) (*entities.ThreadHeader, error)
}
