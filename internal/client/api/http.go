package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/calcfront/internal/client/models"
)

// HTTPClient talks to the calculator backend over HTTP/JSON.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client for the API at baseURL. Transport defaults
// are used as-is; the backend is expected on the local network.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	body := map[string]string{"username": username, "password": password}

	var out LoginResult
	if err := c.do(ctx, http.MethodPost, "/v1/auth/login", "", body, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CreateOperation(ctx context.Context, req OperationRequest, accessToken string) (*OperationResult, error) {
	var out OperationResult
	if err := c.do(ctx, http.MethodPost, "/v1/operations", accessToken, req, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListRecords(ctx context.Context, accessToken string, page, perPage int, sort models.Sort) (*RecordsPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("perPage", strconv.Itoa(perPage))
	query.Set("sortField", string(sort.Field))
	query.Set("sortOrder", string(sort.Order))

	var out RecordsPage
	if err := c.do(ctx, http.MethodGet, "/v1/records", accessToken, nil, query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteOperation(ctx context.Context, id int64, accessToken string) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/v1/operations/%d", id), accessToken, nil, nil, nil)
}

// do performs a single request/response round trip. body (if non-nil) is
// JSON-encoded; out (if non-nil) receives the decoded success body. Every
// failure comes back as *Error.
func (c *HTTPClient) do(ctx context.Context, method, path, accessToken string, body any, query url.Values, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindUnknown, Message: fmt.Sprintf("encode request: %s", err)}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &Error{Kind: KindUnknown, Message: fmt.Sprintf("build request: %s", err)}
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Kind: KindTransport, Message: fmt.Sprintf("no response from server: %s", err)}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindTransport, Message: fmt.Sprintf("reading response: %s", err)}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return errorFromResponse(resp.StatusCode, data)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return &Error{Kind: KindUnknown, Message: fmt.Sprintf("decode response: %s", err), Status: resp.StatusCode}
		}
	}
	return nil
}

// errorFromResponse maps an HTTP failure to *Error. The server reports
// failures as {"message": "..."}; that text is surfaced verbatim. A body
// without a structured message gets a generic fallback.
func errorFromResponse(status int, body []byte) *Error {
	kind := KindServer
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		kind = KindAuth
	case http.StatusNotFound:
		kind = KindNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		kind = KindValidation
	}

	var eb struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &eb); err == nil && eb.Message != "" {
		return &Error{Kind: kind, Message: eb.Message, Status: status}
	}
	return &Error{Kind: kind, Message: fmt.Sprintf("server returned status %d", status), Status: status}
}
