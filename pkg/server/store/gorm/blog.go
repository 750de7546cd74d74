package gorm

import (
	"errors"

	"gorm.io/gorm"

	"github.com/folioboard/folioboard/pkg/model"
	"github.com/folioboard/folioboard/pkg/server/store"
)

// Ensure BlogStore implements store.BlogStore
var _ store.BlogStore = (*BlogStore)(nil)

// BlogStore implements store.BlogStore using GORM
type BlogStore struct {
	db *gorm.DB
}

// NewBlogStore creates a new BlogStore
func NewBlogStore(db *gorm.DB) *BlogStore {
	return &BlogStore{db: db}
}

// CreatePost inserts a new blog post.
func (s *BlogStore) CreatePost(post *model.BlogPost) error {
	return s.db.Create(post).Error
}

// PostByID retrieves a post by id.
func (s *BlogStore) PostByID(id string) (*model.BlogPost, error) {
	var post model.BlogPost
	err := s.db.First(&post, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// PostBySlug retrieves a post by slug.
func (s *BlogStore) PostBySlug(slug string) (*model.BlogPost, error) {
	var post model.BlogPost
	err := s.db.First(&post, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// ListPosts returns posts, optionally only published ones, newest first.
func (s *BlogStore) ListPosts(publishedOnly bool, limit, offset int) ([]model.BlogPost, error) {
	query := s.db.Order("created_at DESC")
	if publishedOnly {
		query = query.Where("published = ?", true)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var posts []model.BlogPost
	err := query.Find(&posts).Error
	return posts, err
}

// UpdatePost applies a sparse patch and returns the updated row.
func (s *BlogStore) UpdatePost(id string, patch map[string]interface{}) (*model.BlogPost, error) {
	result := s.db.Model(&model.BlogPost{}).Where("id = ?", id).Updates(patch)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, store.ErrPostNotFound
	}
	return s.PostByID(id)
}

// DeletePost removes a post and its comments.
func (s *BlogStore) DeletePost(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM comments WHERE parent_kind = 'blog' AND parent_id = ?`, id).Error; err != nil {
			return err
		}
		result := tx.Exec(`DELETE FROM blog_posts WHERE id = ?`, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return store.ErrPostNotFound
		}
		return nil
	})
}
