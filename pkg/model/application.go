package model

import "time"

// Application status values. Status transitions are driven by the company
// owner; applicants can only touch their own resume and cover letter.
const (
	ApplicationPending  = "pending"
	ApplicationAccepted = "accepted"
	ApplicationRejected = "rejected"
)

// ValidApplicationStatus reports whether s is a known status value.
func ValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationPending, ApplicationAccepted, ApplicationRejected:
		return true
	}
	return false
}

// JobApplication links an applicant to a job. The (job_id, user_id) pair is
// unique; a second application by the same user is a conflict.
type JobApplication struct {
	ID          string    `gorm:"column:id;primaryKey"`
	JobID       string    `gorm:"column:job_id;index:idx_applications_job_user,unique;not null"`
	UserID      string    `gorm:"column:user_id;index:idx_applications_job_user,unique;not null"`
	ResumeURL   string    `gorm:"column:resume_url"`
	CoverLetter string    `gorm:"column:cover_letter"`
	Status      string    `gorm:"column:status;not null;default:pending"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (JobApplication) TableName() string {
	return "job_applications"
}
