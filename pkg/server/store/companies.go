package store

import (
	"errors"

	"github.com/folioboard/folioboard/pkg/model"
)

// ErrCompanyNotFound is returned when a company doesn't exist
var ErrCompanyNotFound = errors.New("company not found")

// ErrDuplicateTaxID is returned when a company's tax id is already registered
var ErrDuplicateTaxID = errors.New("tax id already registered")

// CompaniesStore abstracts employer storage operations
type CompaniesStore interface {
	// CreateCompany inserts a new company. Returns ErrDuplicateTaxID on
	// conflict.
	CreateCompany(company *model.Company) error

	// CompanyByID retrieves a company. Returns ErrCompanyNotFound.
	CompanyByID(id string) (*model.Company, error)

	// ListCompanies returns companies ordered by creation time.
	ListCompanies(limit, offset int) ([]model.Company, error)

	// UpdateCompany applies a sparse patch and returns the updated row.
	UpdateCompany(id string, patch map[string]interface{}) (*model.Company, error)

	// DeleteCompany removes a company, its jobs, and their applications.
	DeleteCompany(id string) error

	// SetVerified flips the verified flag and returns the updated row.
	SetVerified(id string, verified bool) (*model.Company, error)
}
