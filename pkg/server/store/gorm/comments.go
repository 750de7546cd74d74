package gorm

import (
	"errors"

	"gorm.io/gorm"

	"github.com/folioboard/folioboard/pkg/model"
	"github.com/folioboard/folioboard/pkg/server/store"
)

// Ensure CommentsStore implements store.CommentsStore
var _ store.CommentsStore = (*CommentsStore)(nil)

// CommentsStore implements store.CommentsStore using GORM
type CommentsStore struct {
	db *gorm.DB
}

// NewCommentsStore creates a new CommentsStore
func NewCommentsStore(db *gorm.DB) *CommentsStore {
	return &CommentsStore{db: db}
}

// CreateComment inserts a new comment.
func (s *CommentsStore) CreateComment(comment *model.Comment) error {
	return s.db.Create(comment).Error
}

// CommentByID retrieves a comment.
func (s *CommentsStore) CommentByID(id string) (*model.Comment, error) {
	var comment model.Comment
	err := s.db.First(&comment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrCommentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListComments returns comments for a parent, oldest first.
func (s *CommentsStore) ListComments(parentKind, parentID string) ([]store.CommentDetails, error) {
	var details []store.CommentDetails
	err := s.db.Raw(`
		SELECT c.*, u.name AS author_name, u.image AS author_image
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.parent_kind = ? AND c.parent_id = ?
		ORDER BY c.created_at
	`, parentKind, parentID).Scan(&details).Error
	return details, err
}

// DeleteComment removes a comment.
func (s *CommentsStore) DeleteComment(id string) error {
	result := s.db.Exec(`DELETE FROM comments WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return store.ErrCommentNotFound
	}
	return nil
}
