package gorm

import (
	"errors"

	"gorm.io/gorm"

	"github.com/folioboard/folioboard/pkg/model"
	"github.com/folioboard/folioboard/pkg/server/store"
)

// Ensure ApplicationsStore implements store.ApplicationsStore
var _ store.ApplicationsStore = (*ApplicationsStore)(nil)

// ApplicationsStore implements store.ApplicationsStore using GORM
type ApplicationsStore struct {
	db *gorm.DB
}

// NewApplicationsStore creates a new ApplicationsStore
func NewApplicationsStore(db *gorm.DB) *ApplicationsStore {
	return &ApplicationsStore{db: db}
}

// CreateApplication inserts a new application. The unique (job_id, user_id)
// index rejects a second application by the same user.
func (s *ApplicationsStore) CreateApplication(app *model.JobApplication) error {
	err := s.db.Create(app).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return store.ErrDuplicateApplication
	}
	return err
}

// ApplicationByID retrieves an application.
func (s *ApplicationsStore) ApplicationByID(id string) (*model.JobApplication, error) {
	var app model.JobApplication
	err := s.db.First(&app, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrApplicationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

const applicationDetailsQuery = `
	SELECT a.*, u.name AS applicant_name, j.title AS job_title
	FROM job_applications a
	JOIN users u ON u.id = a.user_id
	JOIN jobs j ON j.id = a.job_id
`

// ListApplicationsByJob returns all applications for a job, oldest first.
func (s *ApplicationsStore) ListApplicationsByJob(jobID string) ([]store.ApplicationDetails, error) {
	var details []store.ApplicationDetails
	err := s.db.Raw(applicationDetailsQuery+` WHERE a.job_id = ? ORDER BY a.created_at`, jobID).Scan(&details).Error
	return details, err
}

// ListApplicationsByUser returns a user's own applications, newest first.
func (s *ApplicationsStore) ListApplicationsByUser(userID string) ([]store.ApplicationDetails, error) {
	var details []store.ApplicationDetails
	err := s.db.Raw(applicationDetailsQuery+` WHERE a.user_id = ? ORDER BY a.created_at DESC`, userID).Scan(&details).Error
	return details, err
}

// UpdateApplication applies a sparse patch and returns the updated row.
func (s *ApplicationsStore) UpdateApplication(id string, patch map[string]interface{}) (*model.JobApplication, error) {
	result := s.db.Model(&model.JobApplication{}).Where("id = ?", id).Updates(patch)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, store.ErrApplicationNotFound
	}
	return s.ApplicationByID(id)
}

// DeleteApplication removes an application.
func (s *ApplicationsStore) DeleteApplication(id string) error {
	result := s.db.Exec(`DELETE FROM job_applications WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return store.ErrApplicationNotFound
	}
	return nil
}
