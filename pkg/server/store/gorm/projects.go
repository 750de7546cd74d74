package gorm

import (
	"errors"

	"gorm.io/gorm"

	"github.com/folioboard/folioboard/pkg/model"
	"github.com/folioboard/folioboard/pkg/server/store"
)

// Ensure ProjectsStore implements store.ProjectsStore
var _ store.ProjectsStore = (*ProjectsStore)(nil)

// ProjectsStore implements store.ProjectsStore using GORM
type ProjectsStore struct {
	db *gorm.DB
}

// NewProjectsStore creates a new ProjectsStore
func NewProjectsStore(db *gorm.DB) *ProjectsStore {
	return &ProjectsStore{db: db}
}

// CreateProject inserts a new project.
func (s *ProjectsStore) CreateProject(project *model.Project) error {
	return s.db.Create(project).Error
}

const projectDetailsQuery = `
	SELECT p.*,
	       u.name AS author_name,
	       u.image AS author_image,
	       (SELECT COUNT(*) FROM project_likes l WHERE l.project_id = p.id) AS like_count,
	       (SELECT COUNT(*) FROM comments c WHERE c.parent_kind = 'project' AND c.parent_id = p.id) AS comment_count
	FROM projects p
	JOIN users u ON u.id = p.author_id
`

// ProjectByID retrieves a single project with display fields. Every call
// increments the view counter by exactly 1, including repeat fetches by the
// same caller.
func (s *ProjectsStore) ProjectByID(id string) (*store.ProjectDetails, error) {
	result := s.db.Exec(`UPDATE projects SET views = views + 1 WHERE id = ?`, id)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, store.ErrProjectNotFound
	}

	var details store.ProjectDetails
	err := s.db.Raw(projectDetailsQuery+` WHERE p.id = ?`, id).Scan(&details).Error
	if err != nil {
		return nil, err
	}
	if details.ID == "" {
		return nil, store.ErrProjectNotFound
	}
	return &details, nil
}

// ProjectRecord retrieves the bare project row without touching the view
// counter.
func (s *ProjectsStore) ProjectRecord(id string) (*model.Project, error) {
	var project model.Project
	err := s.db.First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrProjectNotFound
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// ListProjects returns projects ordered by creation time, newest first.
func (s *ProjectsStore) ListProjects(limit, offset int) ([]store.ProjectDetails, error) {
	query := projectDetailsQuery + ` ORDER BY p.created_at DESC`
	args := []interface{}{}

	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	if offset > 0 {
		query += ` OFFSET ?`
		args = append(args, offset)
	}

	var details []store.ProjectDetails
	err := s.db.Raw(query, args...).Scan(&details).Error
	return details, err
}

// UpdateProject applies a sparse patch and returns the updated row.
func (s *ProjectsStore) UpdateProject(id string, patch map[string]interface{}) (*model.Project, error) {
	result := s.db.Model(&model.Project{}).Where("id = ?", id).Updates(patch)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, store.ErrProjectNotFound
	}
	return s.ProjectRecord(id)
}

// DeleteProject removes a project and its likes and comments.
func (s *ProjectsStore) DeleteProject(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM project_likes WHERE project_id = ?`, id).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM comments WHERE parent_kind = 'project' AND parent_id = ?`, id).Error; err != nil {
			return err
		}
		result := tx.Exec(`DELETE FROM projects WHERE id = ?`, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return store.ErrProjectNotFound
		}
		return nil
	})
}

// ToggleLike likes the project for the user, or removes an existing like.
func (s *ProjectsStore) ToggleLike(projectID, userID string) (bool, int64, error) {
	var liked bool
	err := s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Exec(`DELETE FROM project_likes WHERE project_id = ? AND user_id = ?`, projectID, userID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			liked = true
			return tx.Create(&model.ProjectLike{ProjectID: projectID, UserID: userID}).Error
		}
		return nil
	})
	if err != nil {
		return false, 0, err
	}

	var count int64
	err = s.db.Model(&model.ProjectLike{}).Where("project_id = ?", projectID).Count(&count).Error
	return liked, count, err
}
