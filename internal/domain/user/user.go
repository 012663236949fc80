package user

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type UserStatus string

const (
	StatusActive   UserStatus = "active"
	StatusInactive UserStatus = "inactive"
)

// User is a lean account aggregate: identity, credentials, activation state.
// Authorization lives in role assignments and the casbin policy, not here.
type User struct {
	id           uint
	name         string
	email        string
	passwordHash string
	status       UserStatus
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(name, email, password string, bcryptCost int) (*User, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if len(email) == 0 || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("valid email is required")
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	return &User{
		name:         name,
		email:        email,
		passwordHash: string(hash),
		status:       StatusActive,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(id uint, name, email, passwordHash string, status UserStatus, createdAt, updatedAt time.Time) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}
	if status != StatusActive && status != StatusInactive {
		return nil, fmt.Errorf("invalid user status: %s", status)
	}

	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		status:       status,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint             { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Email() string        { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Status() UserStatus   { return u.status }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

func (u *User) IsActive() bool {
	return u.status == StatusActive
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(password)) == nil
}

func (u *User) Deactivate() {
	u.status = StatusInactive
	u.updatedAt = time.Now()
}

func (u *User) Reactivate() {
	u.status = StatusActive
	u.updatedAt = time.Now()
}

func (u *User) UpdateProfile(name string) error {
	if len(name) == 0 {
		return fmt.Errorf("name cannot be empty")
	}
	u.name = name
	u.updatedAt = time.Now()
	return nil
}
