package model

import "time"

// Comment parent kinds
const (
	CommentOnProject = "project"
	CommentOnBlog    = "blog"
)

// Comment represents a comment on a project or blog post. ParentKind
// disambiguates the parent table.
type Comment struct {
	ID         string    `gorm:"column:id;primaryKey"`
	ParentKind string    `gorm:"column:parent_kind;index:idx_comments_parent;not null"`
	ParentID   string    `gorm:"column:parent_id;index:idx_comments_parent;not null"`
	AuthorID   string    `gorm:"column:author_id;index;not null"`
	Body       string    `gorm:"column:body;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Comment) TableName() string {
	return "comments"
}
