// Package services contains the application services of the calculator
// client: authentication, operation submission, and the records browser.
// They sit between the CLI views and the API client, and own every mutation
// of the session store.
package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/calcfront/internal/client/api"
	"github.com/dmitrijs2005/calcfront/internal/client/session"
)

// ErrNotAuthenticated is returned by services that need an access token when
// the session carries none.
var ErrNotAuthenticated = errors.New("not authenticated")

// AuthService logs users in and out, keeping the session store in sync with
// the server's answer.
type AuthService struct {
	client api.Client
	store  *session.Store
}

func NewAuthService(client api.Client, store *session.Store) *AuthService {
	return &AuthService{client: client, store: store}
}

// Login authenticates against the server and, on success, dispatches the
// returned identity triple into the session store.
func (s *AuthService) Login(ctx context.Context, username, password string) error {
	res, err := s.client.Login(ctx, username, password)
	if err != nil {
		return err
	}

	return s.store.Dispatch(ctx, session.Login{
		Username:    res.Username,
		AccessToken: res.AccessToken,
		Balance:     res.Balance,
	})
}

// Logout clears the persisted session triple.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.store.Dispatch(ctx, session.Logout{})
}
