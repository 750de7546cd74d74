package model

import "time"

// Project represents a portfolio project shared by a user
type Project struct {
	ID          string    `gorm:"column:id;primaryKey"`
	AuthorID    string    `gorm:"column:author_id;index;not null"`
	Title       string    `gorm:"column:title;not null"`
	Slug        string    `gorm:"column:slug;uniqueIndex;not null"`
	Description string    `gorm:"column:description"`
	Content     string    `gorm:"column:content"`
	CoverImage  string    `gorm:"column:cover_image"`
	Tags        string    `gorm:"column:tags"`
	Views       int64     `gorm:"column:views;not null;default:0"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Project) TableName() string {
	return "projects"
}

// ProjectLike marks that a user liked a project. The (project_id, user_id)
// pair is unique; liking twice toggles the like off.
type ProjectLike struct {
	ProjectID string    `gorm:"column:project_id;primaryKey"`
	UserID    string    `gorm:"column:user_id;primaryKey"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (ProjectLike) TableName() string {
	return "project_likes"
}
