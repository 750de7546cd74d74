package model

import "time"

// Roles assignable to a user. Admin is an explicit attribute on the record,
// resolved into the session token at login.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an account holder
type User struct {
	ID             string    `gorm:"column:id;primaryKey"`
	Name           string    `gorm:"column:name;not null"`
	Email          string    `gorm:"column:email;uniqueIndex;not null"`
	Image          string    `gorm:"column:image"`
	Bio            string    `gorm:"column:bio"`
	Website        string    `gorm:"column:website"`
	PasswordDigest string    `gorm:"column:password_digest;not null"`
	Role           string    `gorm:"column:role;not null;default:user"`
	Premium        bool      `gorm:"column:premium;not null;default:false"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user carries the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
