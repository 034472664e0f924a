// File: internal/usecase/auth_uc.go
package usecase

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"quiz-platform/internal/domain"
	"quiz-platform/internal/domain/model"
	"quiz-platform/internal/domain/ports/repository"
	"quiz-platform/internal/infra/logging"
	"quiz-platform/internal/infra/metrics"
)

// Compile-time check
var _ AuthUseCase = (*authUC)(nil)

// OAuthProfile is the provider identity handed over by the OAuth callback.
type OAuthProfile struct {
	Provider   string // google | github
	ProviderID string
	Email      string
	Name       string
	AvatarURL  string
}

type AuthUseCase interface {
	// Register creates a local account. Duplicate emails are a conflict. An
	// empty role defaults to the student role; unknown roles are rejected.
	Register(ctx context.Context, email, password, fullName string, role model.UserRole) (*model.User, error)
	// Login verifies local credentials. Unknown email and wrong password are
	// indistinguishable to the caller.
	Login(ctx context.Context, email, password string) (*model.User, error)
	// Validate resolves the authenticated user for middleware.
	Validate(ctx context.Context, userID string) (*model.User, error)
	// OAuthLogin finds or creates the account behind a provider profile.
	OAuthLogin(ctx context.Context, p OAuthProfile) (*model.User, error)
}

const bcryptCost = 10

type authUC struct {
	users repository.UserRepository
	log   *zerolog.Logger
}

func NewAuthUseCase(users repository.UserRepository, logger *zerolog.Logger) *authUC {
	return &authUC{users: users, log: logger}
}

func (u *authUC) Register(ctx context.Context, email, password, fullName string, role model.UserRole) (*model.User, error) {
	defer logging.TraceDuration(u.log, "AuthUC.Register")()
	if email == "" || fullName == "" || len(password) < 6 {
		return nil, domain.ErrInvalidArgument
	}

	if existing, err := u.users.FindByEmail(ctx, repository.NoTX, email); err == nil && existing != nil {
		metrics.IncAuthRequest("local", "register_conflict")
		return nil, domain.ErrAlreadyExists
	} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, domain.ErrOperationFailed
	}
	user, err := model.NewUser("", email, string(hash), fullName, role)
	if err != nil {
		return nil, err
	}
	if err := u.users.Save(ctx, repository.NoTX, user); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}

	metrics.IncUsersRegistered()
	metrics.IncAuthRequest("local", "register_ok")
	u.log.Info().Str("user_id", user.ID).Msg("user registered")
	return user, nil
}

func (u *authUC) Login(ctx context.Context, email, password string) (*model.User, error) {
	defer logging.TraceDuration(u.log, "AuthUC.Login")()
	user, err := u.users.FindByEmail(ctx, repository.NoTX, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			metrics.IncAuthRequest("local", "failed")
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	if user.PasswordHash == "" {
		// OAuth-only account; no password to check.
		metrics.IncAuthRequest("local", "failed")
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		metrics.IncAuthRequest("local", "failed")
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, domain.ErrForbidden
	}
	metrics.IncAuthRequest("local", "ok")
	return user, nil
}

func (u *authUC) Validate(ctx context.Context, userID string) (*model.User, error) {
	user, err := u.users.FindByID(ctx, repository.NoTX, userID)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, domain.ErrForbidden
	}
	return user, nil
}

func (u *authUC) OAuthLogin(ctx context.Context, p OAuthProfile) (*model.User, error) {
	defer logging.TraceDuration(u.log, "AuthUC.OAuthLogin")()
	if p.Email == "" || p.ProviderID == "" {
		return nil, domain.ErrInvalidArgument
	}
	var googleID, githubID string
	switch p.Provider {
	case "google":
		googleID = p.ProviderID
	case "github":
		githubID = p.ProviderID
	default:
		return nil, domain.ErrInvalidArgument
	}

	user, err := u.users.FindForOAuth(ctx, repository.NoTX, googleID, githubID, p.Email)
	switch {
	case err == nil:
		// Attach the provider identity to the existing account.
		if googleID != "" {
			user.GoogleID = googleID
		}
		if githubID != "" {
			user.GithubID = githubID
		}
		if user.Avatar == "" && p.AvatarURL != "" {
			user.Avatar = p.AvatarURL
		}
		user.Provider = p.Provider
	case errors.Is(err, domain.ErrNotFound):
		name := p.Name
		if name == "" {
			name = p.Email
		}
		user, err = model.NewUser("", p.Email, "", name, model.RoleUser)
		if err != nil {
			return nil, err
		}
		user.GoogleID = googleID
		user.GithubID = githubID
		user.Provider = p.Provider
		user.Avatar = p.AvatarURL
		metrics.IncUsersRegistered()
	default:
		return nil, err
	}

	if !user.IsActive {
		return nil, domain.ErrForbidden
	}
	if err := u.users.Save(ctx, repository.NoTX, user); err != nil {
		return nil, err
	}
	metrics.IncAuthRequest(p.Provider, "ok")
	return user, nil
}
