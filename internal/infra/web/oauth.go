package web

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/github"
	"github.com/markbates/goth/providers/google"

	"quiz-platform/internal/config"
	"quiz-platform/internal/usecase"
)

// OAuthService wires the goth providers from config. The callback mints the
// same bearer token local logins get.
type OAuthService struct {
	providers []string
}

func NewOAuthService(cfg config.OAuthConfig) *OAuthService {
	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.MaxAge(300)
	store.Options.HttpOnly = true
	gothic.Store = store

	svc := &OAuthService{}
	if cfg.Google.ClientID != "" {
		goth.UseProviders(google.New(
			cfg.Google.ClientID,
			cfg.Google.ClientSecret,
			fmt.Sprintf("%s/google/callback", cfg.CallbackBase),
			"email", "profile",
		))
		svc.providers = append(svc.providers, "google")
	}
	if cfg.Github.ClientID != "" {
		goth.UseProviders(github.New(
			cfg.Github.ClientID,
			cfg.Github.ClientSecret,
			fmt.Sprintf("%s/github/callback", cfg.CallbackBase),
			"user:email",
		))
		svc.providers = append(svc.providers, "github")
	}
	return svc
}

func (o *OAuthService) enabled(provider string) bool {
	for _, p := range o.providers {
		if p == provider {
			return true
		}
	}
	return false
}

func (s *Server) handleOAuthBegin(w http.ResponseWriter, r *http.Request) {
	provider := chi.URLParam(r, "provider")
	if !s.oauth.enabled(provider) {
		writeError(w, r, s.log, http.StatusNotFound, "unknown provider")
		return
	}
	// gothic reads the provider from the query string.
	q := r.URL.Query()
	q.Set("provider", provider)
	r.URL.RawQuery = q.Encode()
	gothic.BeginAuthHandler(w, r)
}

func (s *Server) handleOAuthCallback(w http.ResponseWriter, r *http.Request) {
	provider := chi.URLParam(r, "provider")
	if !s.oauth.enabled(provider) {
		writeError(w, r, s.log, http.StatusNotFound, "unknown provider")
		return
	}
	q := r.URL.Query()
	q.Set("provider", provider)
	r.URL.RawQuery = q.Encode()

	gothUser, err := gothic.CompleteUserAuth(w, r)
	if err != nil {
		s.log.Warn().Err(err).Str("provider", provider).Msg("oauth callback rejected")
		writeError(w, r, s.log, http.StatusUnauthorized, "authentication failed")
		return
	}

	name := gothUser.Name
	if name == "" {
		name = gothUser.NickName
	}
	user, err := s.authUC.OAuthLogin(r.Context(), usecase.OAuthProfile{
		Provider:   provider,
		ProviderID: gothUser.UserID,
		Email:      gothUser.Email,
		Name:       name,
		AvatarURL:  gothUser.AvatarURL,
	})
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	token, err := s.tokens.Mint(user)
	if err != nil {
		writeError(w, r, s.log, http.StatusInternalServerError, "token issue failed")
		return
	}
	writeJSON(w, http.StatusOK, authResponse{Token: token, User: publicUser(user)})
}
