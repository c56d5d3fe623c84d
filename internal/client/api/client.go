// Package api implements the client of the calculator backend: four
// request/response mappings over HTTP/JSON with bearer authentication.
// There are no retries and no caching; every failure is surfaced as *Error.
package api

import (
	"context"

	"github.com/dmitrijs2005/calcfront/internal/client/models"
)

// Client is the remote operation surface consumed by the application services.
type Client interface {
	// Login exchanges credentials for an access token, the canonical
	// username, and the current balance.
	Login(ctx context.Context, username, password string) (*LoginResult, error)

	// CreateOperation submits one operation for server-side computation.
	CreateOperation(ctx context.Context, req OperationRequest, accessToken string) (*OperationResult, error)

	// ListRecords fetches one page of history records. page is 1-indexed;
	// sort field/order are forwarded verbatim as query parameters.
	ListRecords(ctx context.Context, accessToken string, page, perPage int, sort models.Sort) (*RecordsPage, error)

	// DeleteOperation removes the record with the given id.
	DeleteOperation(ctx context.Context, id int64, accessToken string) error
}

// LoginResult is the response of POST /v1/auth/login.
type LoginResult struct {
	AccessToken string `json:"accessToken"`
	Username    string `json:"username"`
	Balance     string `json:"balance"`
}

// OperationRequest is the payload of POST /v1/operations. Args must hold
// exactly the operand count the type requires; for zero-operand types the
// args key is omitted from the payload entirely.
type OperationRequest struct {
	Type models.OperationType `json:"type"`
	Args []float64            `json:"args,omitempty"`
}

// OperationResult is the response of POST /v1/operations. The server is
// authoritative for both the result and the post-operation balance.
type OperationResult struct {
	OperationResponse models.ResponseValue `json:"operation_response"`
	UserBalance       models.ResponseValue `json:"user_balance"`
}

// RecordsPage is the response of GET /v1/records.
type RecordsPage struct {
	Records      []models.Record `json:"records"`
	TotalRecords int             `json:"totalRecords"`
}
