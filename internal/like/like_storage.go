package like

type LikeStorage interface {
	// IsAlreadyLiked returns the like id for (commentID, owner), or the
	// empty string when no such like exists.
	IsAlreadyLiked(commentID, owner string) (string, error)
	AddLike(commentID, owner string) (string, error)
	DeleteLikeByID(likeID string) error
}
