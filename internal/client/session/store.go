// Package session holds the process-wide identity state of the running
// client: who is logged in, their role, and the login-prompt flag shared by
// all pages. One Store exists per application; it is injected into the
// pages that need it rather than accessed as an ambient singleton.
package session

import (
	"context"

	"github.com/egiraffe/egiraffe-cli/internal/client/api"
	"github.com/egiraffe/egiraffe-cli/internal/client/models"
	"github.com/egiraffe/egiraffe-cli/internal/client/viewstate"
	"github.com/egiraffe/egiraffe-cli/internal/logging"
)

type Store struct {
	client      api.Client
	log         logging.Logger
	identity    *viewstate.Signal[*models.User]
	loginPrompt *viewstate.Signal[bool]
}

func NewStore(client api.Client, log logging.Logger) *Store {
	return &Store{
		client:      client,
		log:         log.With("component", "session"),
		identity:    viewstate.NewSignal[*models.User](nil),
		loginPrompt: viewstate.NewSignal(false),
	}
}

// Init fetches the identity belonging to an existing session cookie, if
// any. Failure is the normal outcome for visitors without a session and is
// swallowed; the identity simply stays absent.
func (s *Store) Init(ctx context.Context) {
	user, err := s.client.GetMe(ctx)
	if err != nil {
		s.log.Debug(ctx, "no existing session", "error", err)
		return
	}
	s.identity.Set(user)
}

// Login authenticates and then re-fetches the identity via GetMe: the
// authoritative state comes from the server, not from the login echo.
func (s *Store) Login(ctx context.Context, req api.LoginRequest) error {
	if err := s.client.Login(ctx, req); err != nil {
		return err
	}
	user, err := s.client.GetMe(ctx)
	if err != nil {
		return err
	}
	s.identity.Set(user)
	s.loginPrompt.Set(false)
	return nil
}

// Logout clears the local identity first and tells the server afterwards.
// The local clear is never rolled back; a failing server call is logged and
// otherwise ignored.
func (s *Store) Logout(ctx context.Context) {
	s.identity.Set(nil)
	if err := s.client.Logout(ctx); err != nil {
		s.log.Warn(ctx, "server logout failed", "error", err)
	}
}

func (s *Store) Register(ctx context.Context, req api.RegisterRequest) error {
	return s.client.Register(ctx, req)
}

// Identity returns the current user, or nil when anonymous.
func (s *Store) Identity() *models.User {
	return s.identity.Get()
}

// HasRole reports whether the current identity meets the threshold. An
// absent identity counts as AuthLevelAnyone. Advisory only: it hides
// affordances, the server is the authority on every gated operation.
func (s *Store) HasRole(level models.AuthLevel) bool {
	role := models.AuthLevelAnyone
	if user := s.identity.Get(); user != nil {
		role = user.Role
	}
	return role >= level
}

// OnChange registers fn to run whenever the identity changes; the returned
// function removes the subscription.
func (s *Store) OnChange(fn func(*models.User)) func() {
	return s.identity.Subscribe(fn)
}

// LoginPrompt exposes the shared "login required" flag pages raise when an
// anonymous user hits a gated affordance.
func (s *Store) LoginPrompt() *viewstate.Signal[bool] {
	return s.loginPrompt
}
