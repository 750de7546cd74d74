package model

import "time"

// Company represents an employer profile. Verified is controlled by admins
// only; jobs can only be posted under a verified company.
type Company struct {
	ID          string    `gorm:"column:id;primaryKey"`
	OwnerID     string    `gorm:"column:owner_id;index;not null"`
	Name        string    `gorm:"column:name;not null"`
	Slug        string    `gorm:"column:slug;uniqueIndex;not null"`
	Description string    `gorm:"column:description"`
	Website     string    `gorm:"column:website"`
	Logo        string    `gorm:"column:logo"`
	TaxID       string    `gorm:"column:tax_id;uniqueIndex;not null"`
	Verified    bool      `gorm:"column:verified;not null;default:false"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Company) TableName() string {
	return "companies"
}
