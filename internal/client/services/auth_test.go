package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/calcfront/internal/client/api"
)

func TestAuthService_LoginStoresReturnedTriple(t *testing.T) {
	store := newTestStore(t)
	client := &fakeClient{
		loginFn: func(username, password string) (*api.LoginResult, error) {
			require.Equal(t, "alice", username)
			require.Equal(t, "pw", password)
			return &api.LoginResult{AccessToken: "t1", Username: "alice", Balance: "0"}, nil
		},
	}

	svc := NewAuthService(client, store)
	require.NoError(t, svc.Login(context.Background(), "alice", "pw"))

	st := store.State()
	require.True(t, st.LoggedIn())
	assert.Equal(t, "alice", *st.Username)
	assert.Equal(t, "t1", *st.AccessToken)
	assert.Equal(t, "0", *st.Balance)
}

func TestAuthService_LoginFailureLeavesSessionUntouched(t *testing.T) {
	store := newTestStore(t)
	client := &fakeClient{
		loginFn: func(username, password string) (*api.LoginResult, error) {
			return nil, &api.Error{Kind: api.KindAuth, Message: "Invalid credentials"}
		},
	}

	svc := NewAuthService(client, store)
	err := svc.Login(context.Background(), "alice", "wrong")
	require.Error(t, err)
	assert.True(t, api.IsKind(err, api.KindAuth))

	assert.False(t, store.State().LoggedIn())
}

func TestAuthService_LogoutClearsSession(t *testing.T) {
	store := loggedInStore(t, "0")
	svc := NewAuthService(&fakeClient{}, store)

	require.NoError(t, svc.Logout(context.Background()))

	st := store.State()
	assert.Nil(t, st.Username)
	assert.Nil(t, st.AccessToken)
	assert.Nil(t, st.Balance)
}
