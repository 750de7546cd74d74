package store

import (
	"errors"

	"github.com/folioboard/folioboard/pkg/model"
)

// ErrUserNotFound is returned when a user doesn't exist
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateEmail is returned when registering an email that is taken
var ErrDuplicateEmail = errors.New("email already registered")

// UsersStore abstracts account storage operations
type UsersStore interface {
	// CreateUser inserts a new user. Returns ErrDuplicateEmail on conflict.
	CreateUser(user *model.User) error

	// UserByID retrieves a user by id. Returns ErrUserNotFound.
	UserByID(id string) (*model.User, error)

	// UserByEmail retrieves a user by email. Returns ErrUserNotFound.
	UserByEmail(email string) (*model.User, error)

	// UpdateUser applies a sparse patch to a user and returns the result.
	UpdateUser(id string, patch map[string]interface{}) (*model.User, error)

	// SetRole changes a user's role, keyed by email. Used by the CLI.
	SetRole(email, role string) (*model.User, error)

	// ListAdmins returns all users carrying the admin role.
	ListAdmins() ([]model.User, error)
}
