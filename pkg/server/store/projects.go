package store

import (
	"errors"

	"github.com/folioboard/folioboard/pkg/model"
)

// ErrProjectNotFound is returned when a project doesn't exist
var ErrProjectNotFound = errors.New("project not found")

// ProjectDetails is a project joined with display fields for responses.
type ProjectDetails struct {
	model.Project
	AuthorName   string `json:"authorName"`
	AuthorImage  string `json:"authorImage,omitempty"`
	LikeCount    int64  `json:"likeCount"`
	CommentCount int64  `json:"commentCount"`
}

// ProjectsStore abstracts portfolio project storage operations
type ProjectsStore interface {
	// CreateProject inserts a new project.
	CreateProject(project *model.Project) error

	// ProjectByID retrieves a single project with display fields and, as a
	// deliberate analytics side effect, increments its view counter by
	// exactly 1 per call. Returns ErrProjectNotFound.
	ProjectByID(id string) (*ProjectDetails, error)

	// ProjectRecord retrieves the bare project row without touching the
	// view counter. Used by authorization and mutation paths.
	ProjectRecord(id string) (*model.Project, error)

	// ListProjects returns projects ordered by creation time, newest first.
	ListProjects(limit, offset int) ([]ProjectDetails, error)

	// UpdateProject applies a sparse patch and returns the updated row.
	UpdateProject(id string, patch map[string]interface{}) (*model.Project, error)

	// DeleteProject removes a project and its likes and comments.
	DeleteProject(id string) error

	// ToggleLike likes the project for the user, or removes the like if it
	// already exists. Returns whether the project is now liked and the new
	// like count.
	ToggleLike(projectID, userID string) (liked bool, count int64, err error)
}
