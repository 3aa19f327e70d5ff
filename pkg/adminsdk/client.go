package adminsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a client for the back-office service. Unauthenticated calls work
// straight away; Login (or SetToken) unlocks the session-protected ones.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	token string
}

// NewClient creates a back-office API client.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SetToken installs a session token for subsequent authenticated calls.
func (c *Client) SetToken(token string) { c.token = token }

// Token returns the current session token, if any.
func (c *Client) Token() string { return c.token }

func (c *Client) do(ctx context.Context, method, path string, reqBody, respBody any, expectedStatus int) error {
	var body io.Reader
	if reqBody != nil {
		b, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		return parseErrorResponse(resp, bodyBytes)
	}
	if respBody == nil {
		return nil
	}
	if err := json.Unmarshal(bodyBytes, respBody); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Login authenticates and installs the returned session token on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var out LoginResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", LoginRequest{Email: email, Password: password}, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	c.token = out.Token
	return &out, nil
}

// Me returns the identity behind the installed session token.
func (c *Client) Me(ctx context.Context) (*AdminSummary, error) {
	var out AdminSummary
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// SendInvite mints and dispatches an invite for an email address.
func (c *Client) SendInvite(ctx context.Context, email string) (*InviteResponse, error) {
	var out InviteResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/send-invite", SendInviteRequest{Email: email}, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyInvite checks an invite token and returns its email.
func (c *Client) VerifyInvite(ctx context.Context, token string) (*VerifyInviteResponse, error) {
	var out VerifyInviteResponse
	path := "/api/auth/verify-invite?token=" + url.QueryEscape(token)
	if err := c.do(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// AcceptInvite consumes an invite and installs the issued session token.
func (c *Client) AcceptInvite(ctx context.Context, req AcceptInviteRequest) (*AcceptInviteResponse, error) {
	var out AcceptInviteResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/accept-invite", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	c.token = out.Token
	return &out, nil
}

// InviteAdmin is the owner-initiated invite path.
func (c *Client) InviteAdmin(ctx context.Context, req InviteAdminRequest) (*InviteAdminResponse, error) {
	var out InviteAdminResponse
	if err := c.do(ctx, http.MethodPost, "/api/admins/invite", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAdmins returns the combined directory of active admins and pending
// invites.
func (c *Client) ListAdmins(ctx context.Context) (*AdminsResponse, error) {
	var out AdminsResponse
	if err := c.do(ctx, http.MethodGet, "/api/admins", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateAdmin applies a partial update to an identity.
func (c *Client) UpdateAdmin(ctx context.Context, id string, req UpdateAdminRequest) (*AdminSummary, error) {
	var out AdminSummary
	if err := c.do(ctx, http.MethodPut, "/api/admins/"+url.PathEscape(id), req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateAdminRole changes an identity's role.
func (c *Client) UpdateAdminRole(ctx context.Context, id, role string) (*AdminSummary, error) {
	var out AdminSummary
	req := UpdateAdminRequest{Role: &role}
	if err := c.do(ctx, http.MethodPut, "/api/admins/"+url.PathEscape(id)+"/role", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAdmin removes an identity or pending invite by id.
func (c *Client) DeleteAdmin(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/admins/"+url.PathEscape(id), nil, nil, http.StatusNoContent)
}

// CreateRequest submits a consultation request through the public intake
// endpoint.
func (c *Client) CreateRequest(ctx context.Context, req CreateRequestRequest) (*ConsultationRequest, error) {
	var out ConsultationRequest
	if err := c.do(ctx, http.MethodPost, "/api/requests", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListRequests returns all consultation requests, newest first.
func (c *Client) ListRequests(ctx context.Context) (*RequestsResponse, error) {
	var out RequestsResponse
	if err := c.do(ctx, http.MethodGet, "/api/requests", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetRequest returns one consultation request by id.
func (c *Client) GetRequest(ctx context.Context, id string) (*ConsultationRequest, error) {
	var out ConsultationRequest
	if err := c.do(ctx, http.MethodGet, "/api/requests/"+url.PathEscape(id), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteRequest removes a consultation request by id.
func (c *Client) DeleteRequest(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/requests/"+url.PathEscape(id), nil, nil, http.StatusNoContent)
}

// Livez probes the liveness endpoint.
func (c *Client) Livez(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.do(ctx, http.MethodGet, "/livez", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Readyz probes the readiness endpoint.
func (c *Client) Readyz(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.do(ctx, http.MethodGet, "/readyz", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
