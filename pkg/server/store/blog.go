package store

import (
	"errors"

	"github.com/folioboard/folioboard/pkg/model"
)

// ErrPostNotFound is returned when a blog post doesn't exist
var ErrPostNotFound = errors.New("post not found")

// BlogStore abstracts blog post storage operations
type BlogStore interface {
	// CreatePost inserts a new blog post.
	CreatePost(post *model.BlogPost) error

	// PostByID retrieves a post by id. Returns ErrPostNotFound.
	PostByID(id string) (*model.BlogPost, error)

	// PostBySlug retrieves a post by slug. Returns ErrPostNotFound.
	PostBySlug(slug string) (*model.BlogPost, error)

	// ListPosts returns posts, optionally only published ones.
	ListPosts(publishedOnly bool, limit, offset int) ([]model.BlogPost, error)

	// UpdatePost applies a sparse patch and returns the updated row.
	UpdatePost(id string, patch map[string]interface{}) (*model.BlogPost, error)

	// DeletePost removes a post and its comments.
	DeletePost(id string) error
}
