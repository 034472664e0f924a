package model

import (
	"time"

	"quiz-platform/internal/domain"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
	RoleBoss  UserRole = "boss"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleBoss:
		return true
	}
	return false
}

// User is a platform account. OAuth accounts carry an empty PasswordHash.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	Avatar       string
	Role         UserRole
	GoogleID     string
	GithubID     string
	Provider     string // local | google | github
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewUser(id, email, passwordHash, fullName string, role UserRole) (*User, error) {
	if id == "" {
		id = uuid.NewString()
	}
	if email == "" || fullName == "" {
		return nil, domain.ErrInvalidArgument
	}
	if role == "" {
		role = RoleUser
	}
	if !role.Valid() {
		return nil, domain.ErrInvalidArgument
	}
	now := time.Now()
	return &User{
		ID:           id,
		Email:        email,
		PasswordHash: passwordHash,
		FullName:     fullName,
		Role:         role,
		Provider:     "local",
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func (u *User) IsZero() bool { return u == nil || u.ID == "" }
