package model

import "time"

// BlogPost represents a markdown blog post. Authorship is admin-only; the
// stored content is markdown, rendered to HTML on read.
type BlogPost struct {
	ID         string    `gorm:"column:id;primaryKey"`
	AuthorID   string    `gorm:"column:author_id;index;not null"`
	Title      string    `gorm:"column:title;not null"`
	Slug       string    `gorm:"column:slug;uniqueIndex;not null"`
	Excerpt    string    `gorm:"column:excerpt"`
	Content    string    `gorm:"column:content"`
	CoverImage string    `gorm:"column:cover_image"`
	Published  bool      `gorm:"column:published;not null;default:false"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (BlogPost) TableName() string {
	return "blog_posts"
}
