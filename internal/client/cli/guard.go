package cli

import "errors"

// ErrLoginRequired is returned by guarded views invoked without a session.
var ErrLoginRequired = errors.New("login required")

// requireAuth gates the views that need an authenticated session. The live
// session state is re-checked on every invocation, never cached; without an
// access token the user is sent back to the login prompt.
func (a *App) requireAuth() error {
	if !a.store.State().LoggedIn() {
		printlnFn("Please login first.")
		return ErrLoginRequired
	}
	return nil
}
