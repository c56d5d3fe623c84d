package session

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
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
	return db
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(context.Background(), setupDB(t))
	require.NoError(t, err)
	return s
}

func TestNewStore_StartsLoggedOut(t *testing.T) {
	s := newTestStore(t)

	st := s.State()
	assert.Nil(t, st.Username)
	assert.Nil(t, st.AccessToken)
	assert.Nil(t, st.Balance)
	assert.False(t, st.LoggedIn())
}

func TestDispatch_LoginSetsAllThreeFields(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Dispatch(ctx, Login{Username: "alice", AccessToken: "t1", Balance: "0"}))

	st := s.State()
	require.True(t, st.LoggedIn())
	assert.Equal(t, "alice", *st.Username)
	assert.Equal(t, "t1", *st.AccessToken)
	assert.Equal(t, "0", *st.Balance)
}

func TestDispatch_LoginThenLogoutYieldsNullTriple(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Dispatch(ctx, Login{Username: "alice", AccessToken: "t1", Balance: "0"}))
	require.NoError(t, s.Dispatch(ctx, Logout{}))

	st := s.State()
	assert.Nil(t, st.Username)
	assert.Nil(t, st.AccessToken)
	assert.Nil(t, st.Balance)
}

func TestDispatch_UpdateBalanceLeavesIdentityIntact(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Dispatch(ctx, Login{Username: "alice", AccessToken: "t1", Balance: "10.00"}))
	require.NoError(t, s.Dispatch(ctx, UpdateBalance{Balance: "13.50"}))

	st := s.State()
	assert.Equal(t, "alice", *st.Username)
	assert.Equal(t, "t1", *st.AccessToken)
	assert.Equal(t, "13.50", *st.Balance)
}

func TestRehydrate_AfterSimulatedReload(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "session.db")

	db, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)

	s, err := NewStore(ctx, db)
	require.NoError(t, err)
	require.NoError(t, s.Dispatch(ctx, Login{Username: "alice", AccessToken: "t1", Balance: "0"}))
	require.NoError(t, db.Close())

	// reopen the database, as a new process would
	db2, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db2.Close() })

	s2, err := NewStore(ctx, db2)
	require.NoError(t, err)

	st := s2.State()
	require.True(t, st.LoggedIn())
	assert.Equal(t, "alice", *st.Username)
	assert.Equal(t, "t1", *st.AccessToken)
	assert.Equal(t, "0", *st.Balance)
}

func TestRehydrate_PartialStateIsPreservedNotRepaired(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	// a balance with no identity, as a crashed writer could leave behind
	_, err := db.Exec(`INSERT INTO session(key, value) VALUES ('balance', '5.00')`)
	require.NoError(t, err)

	s, err := NewStore(ctx, db)
	require.NoError(t, err)

	st := s.State()
	assert.Nil(t, st.Username)
	assert.Nil(t, st.AccessToken)
	require.NotNil(t, st.Balance)
	assert.Equal(t, "5.00", *st.Balance)
	assert.False(t, st.LoggedIn())
}
