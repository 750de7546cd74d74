package gorm

import (
	"gorm.io/gorm"

	"github.com/folioboard/folioboard/pkg/model"
	"github.com/folioboard/folioboard/pkg/server/store"
)

// Ensure JobsStore implements store.JobsStore
var _ store.JobsStore = (*JobsStore)(nil)

// JobsStore implements store.JobsStore using GORM
type JobsStore struct {
	db *gorm.DB
}

// NewJobsStore creates a new JobsStore
func NewJobsStore(db *gorm.DB) *JobsStore {
	return &JobsStore{db: db}
}

// CreateJob inserts a new job.
func (s *JobsStore) CreateJob(job *model.Job) error {
	return s.db.Create(job).Error
}

const jobDetailsQuery = `
	SELECT j.*, c.name AS company_name, c.logo AS company_logo
	FROM jobs j
	JOIN companies c ON c.id = j.company_id
`

// JobByID retrieves a job with company display fields.
func (s *JobsStore) JobByID(id string) (*store.JobDetails, error) {
	var details store.JobDetails
	err := s.db.Raw(jobDetailsQuery+` WHERE j.id = ?`, id).Scan(&details).Error
	if err != nil {
		return nil, err
	}
	if details.ID == "" {
		return nil, store.ErrJobNotFound
	}
	return &details, nil
}

// ListJobs returns jobs, optionally restricted to active postings.
func (s *JobsStore) ListJobs(activeOnly bool, limit, offset int) ([]store.JobDetails, error) {
	query := jobDetailsQuery
	args := []interface{}{}

	if activeOnly {
		query += ` WHERE j.active = ?`
		args = append(args, true)
	}
	query += ` ORDER BY j.created_at DESC`

	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	if offset > 0 {
		query += ` OFFSET ?`
		args = append(args, offset)
	}

	var details []store.JobDetails
	err := s.db.Raw(query, args...).Scan(&details).Error
	return details, err
}

// ListJobsByCompany returns all jobs under a company.
func (s *JobsStore) ListJobsByCompany(companyID string) ([]model.Job, error) {
	var jobs []model.Job
	err := s.db.Where("company_id = ?", companyID).Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

// UpdateJob applies a sparse patch and returns the updated row.
func (s *JobsStore) UpdateJob(id string, patch map[string]interface{}) (*model.Job, error) {
	result := s.db.Model(&model.Job{}).Where("id = ?", id).Updates(patch)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, store.ErrJobNotFound
	}

	var job model.Job
	if err := s.db.First(&job, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// DeleteJob removes a job and its applications.
func (s *JobsStore) DeleteJob(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM job_applications WHERE job_id = ?`, id).Error; err != nil {
			return err
		}
		result := tx.Exec(`DELETE FROM jobs WHERE id = ?`, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return store.ErrJobNotFound
		}
		return nil
	})
}
