// Package session holds the authenticated identity of the client: username,
// access token, and balance. The triple is kept in memory and mirrored to a
// durable sqlite key-value table, so it survives a restart the way browser
// tab storage survives a reload.
package session

import (
	"context"
	"database/sql"
	"sync"

	"github.com/dmitrijs2005/calcfront/internal/dbx"
)

// Persisted field keys. These are the fixed storage keys of the session
// contract; changing them breaks rehydration of existing state.
const (
	keyUsername    = "username"
	keyAccessToken = "access_token"
	keyBalance     = "balance"
)

// Session is the current identity snapshot. All three fields are nil when
// logged out and non-nil when logged in. A partial triple can only come from
// previously persisted inconsistent state, which rehydration preserves as-is.
type Session struct {
	Username    *string
	AccessToken *string
	Balance     *string
}

// LoggedIn reports whether the session carries an access token. This is the
// only check the access guard performs.
func (s Session) LoggedIn() bool {
	return s.AccessToken != nil
}

// Action is a named session transition. The store accepts exactly three:
// Login, Logout, and UpdateBalance.
type Action interface {
	isAction()
}

// Login sets all three session fields.
type Login struct {
	Username    string
	AccessToken string
	Balance     string
}

// Logout clears all three session fields.
type Logout struct{}

// UpdateBalance replaces the balance, leaving identity intact. It is
// dispatched after every operation submission and record deletion.
type UpdateBalance struct {
	Balance string
}

func (Login) isAction()         {}
func (Logout) isAction()        {}
func (UpdateBalance) isAction() {}

// Store is the session state container. It is constructed once per process
// and passed by reference to every consumer; there is no package-level state.
type Store struct {
	db *sql.DB

	mu    sync.RWMutex
	state Session
}

// NewStore rehydrates the session from the database and returns the store.
// Each field is read independently; a missing key leaves the field nil and
// an inconsistent triple is not repaired.
func NewStore(ctx context.Context, db *sql.DB) (*Store, error) {
	s := &Store{db: db}
	if err := s.rehydrate(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) rehydrate(ctx context.Context) error {
	repo := NewSQLiteRepository(s.db)

	var state Session
	var err error
	if state.Username, err = repo.Get(ctx, keyUsername); err != nil {
		return err
	}
	if state.AccessToken, err = repo.Get(ctx, keyAccessToken); err != nil {
		return err
	}
	if state.Balance, err = repo.Get(ctx, keyBalance); err != nil {
		return err
	}

	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
	return nil
}

// State returns the current session snapshot.
func (s *Store) State() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch applies a transition, persisting it before the in-memory state
// changes. Login and Logout write all three keys in one transaction, so no
// reader ever observes a partially written triple.
func (s *Store) Dispatch(ctx context.Context, a Action) error {
	switch act := a.(type) {
	case Login:
		err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
			repo := NewSQLiteRepository(tx)
			if err := repo.Set(ctx, keyUsername, act.Username); err != nil {
				return err
			}
			if err := repo.Set(ctx, keyAccessToken, act.AccessToken); err != nil {
				return err
			}
			return repo.Set(ctx, keyBalance, act.Balance)
		})
		if err != nil {
			return err
		}

		s.mu.Lock()
		s.state = Session{
			Username:    &act.Username,
			AccessToken: &act.AccessToken,
			Balance:     &act.Balance,
		}
		s.mu.Unlock()
		return nil

	case Logout:
		err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
			return NewSQLiteRepository(tx).Clear(ctx)
		})
		if err != nil {
			return err
		}

		s.mu.Lock()
		s.state = Session{}
		s.mu.Unlock()
		return nil

	case UpdateBalance:
		if err := NewSQLiteRepository(s.db).Set(ctx, keyBalance, act.Balance); err != nil {
			return err
		}

		s.mu.Lock()
		s.state.Balance = &act.Balance
		s.mu.Unlock()
		return nil
	}
	return nil
}
