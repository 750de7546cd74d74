package gorm

import (
	"errors"

	"gorm.io/gorm"

	"github.com/folioboard/folioboard/pkg/model"
	"github.com/folioboard/folioboard/pkg/server/store"
)

// Ensure CompaniesStore implements store.CompaniesStore
var _ store.CompaniesStore = (*CompaniesStore)(nil)

// CompaniesStore implements store.CompaniesStore using GORM
type CompaniesStore struct {
	db *gorm.DB
}

// NewCompaniesStore creates a new CompaniesStore
func NewCompaniesStore(db *gorm.DB) *CompaniesStore {
	return &CompaniesStore{db: db}
}

// CreateCompany inserts a new company.
func (s *CompaniesStore) CreateCompany(company *model.Company) error {
	err := s.db.Create(company).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return store.ErrDuplicateTaxID
	}
	return err
}

// CompanyByID retrieves a company.
func (s *CompaniesStore) CompanyByID(id string) (*model.Company, error) {
	var company model.Company
	err := s.db.First(&company, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrCompanyNotFound
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// ListCompanies returns companies ordered by creation time, newest first.
func (s *CompaniesStore) ListCompanies(limit, offset int) ([]model.Company, error) {
	query := s.db.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var companies []model.Company
	err := query.Find(&companies).Error
	return companies, err
}

// UpdateCompany applies a sparse patch and returns the updated row.
func (s *CompaniesStore) UpdateCompany(id string, patch map[string]interface{}) (*model.Company, error) {
	result := s.db.Model(&model.Company{}).Where("id = ?", id).Updates(patch)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, store.ErrDuplicateTaxID
		}
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, store.ErrCompanyNotFound
	}
	return s.CompanyByID(id)
}

// DeleteCompany removes a company, its jobs, and their applications.
func (s *CompaniesStore) DeleteCompany(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`
			DELETE FROM job_applications
			WHERE job_id IN (SELECT id FROM jobs WHERE company_id = ?)
		`, id).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM jobs WHERE company_id = ?`, id).Error; err != nil {
			return err
		}
		result := tx.Exec(`DELETE FROM companies WHERE id = ?`, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return store.ErrCompanyNotFound
		}
		return nil
	})
}

// SetVerified flips the verified flag and returns the updated row.
func (s *CompaniesStore) SetVerified(id string, verified bool) (*model.Company, error) {
	result := s.db.Model(&model.Company{}).Where("id = ?", id).Update("verified", verified)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, store.ErrCompanyNotFound
	}
	return s.CompanyByID(id)
}
