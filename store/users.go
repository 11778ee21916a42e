package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"autorepair/models"
)

// NewUser carries the fields of the registration form. Every field except
// Role and Photo is required.
type NewUser struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
	FullName string `validate:"required"`
	Email    string `validate:"required"`
	Phone    string `validate:"required"`
	Role     models.Role
	Photo    string
}

// CreateUser registers an account. An empty role means client; the username
// must not be taken.
func (s *Store) CreateUser(in NewUser) (uint, error) {
	if err := s.validate.Struct(in); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	role := in.Role
	if role == "" {
		role = models.RoleClient
	}
	if !role.Valid() {
		return 0, fmt.Errorf("%w: unknown role %q", ErrValidation, role)
	}

	var existing models.User
	err := s.db.Where("username = ?", in.Username).First(&existing).Error
	if err == nil {
		return 0, fmt.Errorf("%w: username %q", ErrDuplicateKey, in.Username)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	user := models.User{
		Username: in.Username,
		Password: in.Password,
		FullName: in.FullName,
		Email:    in.Email,
		Phone:    in.Phone,
		Role:     role,
		Photo:    in.Photo,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return 0, err
	}
	return user.ID, nil
}

// Authenticate returns the matching user, or nil when the username is unknown
// or the credential does not verify. A nil user is not an error; failed
// logins simply re-prompt.
func (s *Store) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	err := s.db.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !s.creds.Verify(password, user.Password) {
		return nil, nil
	}
	return &user, nil
}

// UserByUsername looks a user up by their unique username.
func (s *Store) UserByUsername(username string) (*models.User, error) {
	var user models.User
	err := s.db.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: user %q", ErrNotFound, username)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes the named account. Self-deletion is blocked so the
// session in progress can never orphan itself. Service orders for the removed
// client keep their rows but lose the client reference.
func (s *Store) DeleteUser(username string, requester *models.User) error {
	if requester != nil && requester.Username == username {
		return fmt.Errorf("%w: cannot remove your own account", ErrForbidden)
	}

	user, err := s.UserByUsername(username)
	if err != nil {
		return err
	}

	if err := s.db.Model(&models.Service{}).
		Where("client_id = ?", user.ID).
		Update("client_id", nil).Error; err != nil {
		return err
	}
	return s.db.Delete(&models.User{}, user.ID).Error
}

// ListUsers returns all accounts in insertion order.
func (s *Store) ListUsers() ([]models.User, error) {
	var users []models.User
	err := s.db.Order("id").Find(&users).Error
	return users, err
}

func (s *Store) CountUsers() (int64, error) {
	var n int64
	err := s.db.Model(&models.User{}).Count(&n).Error
	return n, err
}
