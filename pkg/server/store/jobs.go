package store

import (
	"errors"

	"github.com/folioboard/folioboard/pkg/model"
)

// ErrJobNotFound is returned when a job doesn't exist
var ErrJobNotFound = errors.New("job not found")

// JobDetails is a job joined with its company's display fields.
type JobDetails struct {
	model.Job
	CompanyName string `json:"companyName"`
	CompanyLogo string `json:"companyLogo,omitempty"`
}

// JobsStore abstracts job posting storage operations
type JobsStore interface {
	// CreateJob inserts a new job.
	CreateJob(job *model.Job) error

	// JobByID retrieves a job with company display fields. Returns
	// ErrJobNotFound.
	JobByID(id string) (*JobDetails, error)

	// ListJobs returns jobs, optionally restricted to active postings.
	ListJobs(activeOnly bool, limit, offset int) ([]JobDetails, error)

	// ListJobsByCompany returns all jobs under a company.
	ListJobsByCompany(companyID string) ([]model.Job, error)

	// UpdateJob applies a sparse patch and returns the updated row.
	UpdateJob(id string, patch map[string]interface{}) (*model.Job, error)

	// DeleteJob removes a job and its applications.
	DeleteJob(id string) error
}
