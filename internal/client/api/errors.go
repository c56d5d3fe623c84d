package api

import (
	"errors"
	"fmt"
)

// ErrorKind discriminates API client failures so views can switch on the
// failure class instead of probing error shapes.
type ErrorKind int

const (
	// KindUnknown covers anything that does not fit the other kinds.
	KindUnknown ErrorKind = iota
	// KindTransport means no response was received from the server.
	KindTransport
	// KindAuth means the server rejected the credentials or token.
	KindAuth
	// KindValidation means the server rejected the request payload.
	KindValidation
	// KindNotFound means the addressed resource no longer exists.
	KindNotFound
	// KindServer is any other structured failure reported by the server.
	KindServer
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindAuth:
		return "auth"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindServer:
		return "server"
	default:
		return "unknown"
	}
}

// Error is the failure type returned by the Client. Message carries the
// server-provided text verbatim when the response body had one, otherwise
// a generic fallback. Status is the HTTP status code, 0 when no response
// reached the client.
type Error struct {
	Kind    ErrorKind
	Message string
	Status  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == kind
}

// MessageOf extracts the server-provided message from err when the failure
// carries one worth showing verbatim (auth, validation, not-found, server).
// It returns "" for transport and unknown failures, which should be rendered
// with a view-level fallback.
func MessageOf(err error) string {
	var ae *Error
	if !errors.As(err, &ae) {
		return ""
	}
	switch ae.Kind {
	case KindAuth, KindValidation, KindNotFound, KindServer:
		return ae.Message
	}
	return ""
}
