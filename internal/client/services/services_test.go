package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/calcfront/internal/client/api"
	"github.com/dmitrijs2005/calcfront/internal/client/models"
	"github.com/dmitrijs2005/calcfront/internal/client/session"
)

// fakeClient implements api.Client with pluggable behavior per operation and
// records every call for assertions.
type fakeClient struct {
	loginFn  func(username, password string) (*api.LoginResult, error)
	createFn func(req api.OperationRequest, token string) (*api.OperationResult, error)
	listFn   func(token string, page, perPage int, sort models.Sort) (*api.RecordsPage, error)
	deleteFn func(id int64, token string) error

	createCalls []api.OperationRequest
	listCalls   []listCall
	deleteCalls []int64
}

type listCall struct {
	page    int
	perPage int
	sort    models.Sort
}

func (f *fakeClient) Login(_ context.Context, username, password string) (*api.LoginResult, error) {
	if f.loginFn == nil {
		return &api.LoginResult{}, nil
	}
	return f.loginFn(username, password)
}

func (f *fakeClient) CreateOperation(_ context.Context, req api.OperationRequest, token string) (*api.OperationResult, error) {
	f.createCalls = append(f.createCalls, req)
	if f.createFn == nil {
		return &api.OperationResult{}, nil
	}
	return f.createFn(req, token)
}

func (f *fakeClient) ListRecords(_ context.Context, token string, page, perPage int, sort models.Sort) (*api.RecordsPage, error) {
	f.listCalls = append(f.listCalls, listCall{page: page, perPage: perPage, sort: sort})
	if f.listFn == nil {
		return &api.RecordsPage{}, nil
	}
	return f.listFn(token, page, perPage, sort)
}

func (f *fakeClient) DeleteOperation(_ context.Context, id int64, token string) error {
	f.deleteCalls = append(f.deleteCalls, id)
	if f.deleteFn == nil {
		return nil
	}
	return f.deleteFn(id, token)
}

func newTestStore(t *testing.T) *session.Store {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE session (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);`)
	require.NoError(t, err)

	store, err := session.NewStore(context.Background(), db)
	require.NoError(t, err)
	return store
}

func loggedInStore(t *testing.T, balance string) *session.Store {
	t.Helper()
	store := newTestStore(t)
	require.NoError(t, store.Dispatch(context.Background(), session.Login{
		Username:    "alice",
		AccessToken: "t1",
		Balance:     balance,
	}))
	return store
}
