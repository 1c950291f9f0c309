package postgres

import (
	"errors"

	"gorm.io/gorm"

	"forumapi/internal/apperrors"
	"forumapi/internal/entities"
	"forumapi/internal/models"
	"forumapi/internal/utils"
)

type CommentPostgresStorage struct {
	db *gorm.DB
}

func NewCommentPostgresStorage(db *gorm.DB) *CommentPostgresStorage {
	return &CommentPostgresStorage{db: db}
}

func (s *CommentPostgresStorage) AddComment(threadID, content, owner string) (*entities.AddedComment, error) {
	c := models.Comment{
		ID:       utils.GenerateID("comment"),
		ThreadID: threadID,
		Content:  content,
		Owner:    owner,
	}

	if err := s.db.Create(&c).Error; err != nil {
		return nil, err
	}

	return &entities.AddedComment{ID: c.ID, Content: c.Content, Owner: c.Owner}, nil
}

// GetCommentsByThreadID loads all comments of a thread in creation order.
// The like aggregate is cast to text so the row shape matches what the
// normalizer expects regardless of how the driver maps bigint counts.
func (s *CommentPostgresStorage) GetCommentsByThreadID(threadID string) ([]entities.CommentRow, error) {
	rows := make([]entities.CommentRow, 0)
	err := s.db.Raw(`
		SELECT comments.id, users.username, comments.date, comments.content, comments.is_delete,
		       COUNT(likes.id)::TEXT AS like_count
		FROM comments
		LEFT JOIN users ON comments.owner = users.id
		LEFT JOIN likes ON likes.comment_id = comments.id
		WHERE comments.thread_id = ?
		GROUP BY comments.id, users.username
		ORDER BY comments.date ASC`, threadID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *CommentPostgresStorage) VerifyCommentID(commentID string) error {
	var c models.Comment
	if err := s.db.Select("id").Where("id = ?", commentID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFoundError("Komentar tidak ditemukan")
		}
		return err
	}
	return nil
}

func (s *CommentPostgresStorage) VerifyCommentOwnership(commentID, owner string) error {
	var c models.Comment
	if err := s.db.Select("owner").Where("id = ?", commentID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFoundError("Komentar tidak ditemukan")
		}
		return err
	}
	if c.Owner != owner {
		return apperrors.NewAuthorizationError("Komentar hanya dapat dihapus oleh pemiliknya")
	}
	return nil
}

func (s *CommentPostgresStorage) DeleteCommentByID(commentID string) error {
	return s.db.Model(&models.Comment{}).
		Where("id = ?", commentID).
		Update("is_delete", true).Error
}
