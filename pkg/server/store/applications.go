package store

import (
	"errors"

	"github.com/folioboard/folioboard/pkg/model"
)

// ErrApplicationNotFound is returned when an application doesn't exist
var ErrApplicationNotFound = errors.New("application not found")

// ErrDuplicateApplication is returned when a user applies to a job twice
var ErrDuplicateApplication = errors.New("already applied to this job")

// ApplicationDetails is an application joined with applicant and job
// display fields.
type ApplicationDetails struct {
	model.JobApplication
	ApplicantName string `json:"applicantName"`
	JobTitle      string `json:"jobTitle"`
}

// ApplicationsStore abstracts job application storage operations
type ApplicationsStore interface {
	// CreateApplication inserts a new application. Returns
	// ErrDuplicateApplication when the user already applied to the job.
	CreateApplication(app *model.JobApplication) error

	// ApplicationByID retrieves an application. Returns
	// ErrApplicationNotFound.
	ApplicationByID(id string) (*model.JobApplication, error)

	// ListApplicationsByJob returns all applications for a job.
	ListApplicationsByJob(jobID string) ([]ApplicationDetails, error)

	// ListApplicationsByUser returns a user's own applications.
	ListApplicationsByUser(userID string) ([]ApplicationDetails, error)

	// UpdateApplication applies a sparse patch and returns the updated row.
	UpdateApplication(id string, patch map[string]interface{}) (*model.JobApplication, error)

	// DeleteApplication removes an application.
	DeleteApplication(id string) error
}
