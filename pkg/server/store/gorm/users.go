package gorm

import (
	"errors"

	"gorm.io/gorm"

	"github.com/folioboard/folioboard/pkg/model"
	"github.com/folioboard/folioboard/pkg/server/store"
)

// Ensure UsersStore implements store.UsersStore
var _ store.UsersStore = (*UsersStore)(nil)

// UsersStore implements store.UsersStore using GORM
type UsersStore struct {
	db *gorm.DB
}

// NewUsersStore creates a new UsersStore
func NewUsersStore(db *gorm.DB) *UsersStore {
	return &UsersStore{db: db}
}

// CreateUser inserts a new user.
func (s *UsersStore) CreateUser(user *model.User) error {
	err := s.db.Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return store.ErrDuplicateEmail
	}
	return err
}

// UserByID retrieves a user by id.
func (s *UsersStore) UserByID(id string) (*model.User, error) {
	var user model.User
	err := s.db.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UserByEmail retrieves a user by email.
func (s *UsersStore) UserByEmail(email string) (*model.User, error) {
	var user model.User
	err := s.db.First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser applies a sparse patch to a user and returns the result.
func (s *UsersStore) UpdateUser(id string, patch map[string]interface{}) (*model.User, error) {
	result := s.db.Model(&model.User{}).Where("id = ?", id).Updates(patch)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, store.ErrDuplicateEmail
		}
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, store.ErrUserNotFound
	}
	return s.UserByID(id)
}

// SetRole changes a user's role, keyed by email.
func (s *UsersStore) SetRole(email, role string) (*model.User, error) {
	result := s.db.Model(&model.User{}).Where("email = ?", email).Update("role", role)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, store.ErrUserNotFound
	}
	return s.UserByEmail(email)
}

// ListAdmins returns all users carrying the admin role.
func (s *UsersStore) ListAdmins() ([]model.User, error) {
	var admins []model.User
	err := s.db.Where("role = ?", model.RoleAdmin).Order("email").Find(&admins).Error
	return admins, err
}
