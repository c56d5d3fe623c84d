// Package cli implements the interactive terminal front-end of the
// calculator client: a REPL with a login view, an operation submission form,
// and a records browser. Views read the session store, call the application
// services, and render every failure as an inline message.
package cli
