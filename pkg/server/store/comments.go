package store

import (
	"errors"

	"github.com/folioboard/folioboard/pkg/model"
)

// ErrCommentNotFound is returned when a comment doesn't exist
var ErrCommentNotFound = errors.New("comment not found")

// CommentDetails is a comment joined with its author's display fields.
type CommentDetails struct {
	model.Comment
	AuthorName  string `json:"authorName"`
	AuthorImage string `json:"authorImage,omitempty"`
}

// CommentsStore abstracts comment storage operations
type CommentsStore interface {
	// CreateComment inserts a new comment.
	CreateComment(comment *model.Comment) error

	// CommentByID retrieves a comment. Returns ErrCommentNotFound.
	CommentByID(id string) (*model.Comment, error)

	// ListComments returns comments for a parent, oldest first.
	ListComments(parentKind, parentID string) ([]CommentDetails, error)

	// DeleteComment removes a comment.
	DeleteComment(id string) error
}
