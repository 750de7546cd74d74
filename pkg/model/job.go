package model

import "time"

// Employment types for a job posting
const (
	EmploymentFullTime = "full-time"
	EmploymentPartTime = "part-time"
	EmploymentContract = "contract"
	EmploymentIntern   = "internship"
)

// Job represents a job posting under a company
type Job struct {
	ID          string    `gorm:"column:id;primaryKey"`
	CompanyID   string    `gorm:"column:company_id;index;not null"`
	Title       string    `gorm:"column:title;not null"`
	Slug        string    `gorm:"column:slug;uniqueIndex;not null"`
	Description string    `gorm:"column:description"`
	Location    string    `gorm:"column:location"`
	SalaryMin   int64     `gorm:"column:salary_min"`
	SalaryMax   int64     `gorm:"column:salary_max"`
	Employment  string    `gorm:"column:employment"`
	Active      bool      `gorm:"column:active;not null;default:true"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Job) TableName() string {
	return "jobs"
}
