// Package adminsdk holds the request/response types of the back-office HTTP
// API plus a small client for driving it. The server handlers and the e2e
// suite share these definitions so the wire contract lives in one place.
package adminsdk

import "time"

// AdminSummary is the public shape of an admin identity. Password material
// never appears here.
type AdminSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// PendingInvite is the public shape of an actionable invite. The raw token
// and its fingerprint are never listed.
type PendingInvite struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	Admin AdminSummary `json:"admin"`
}

type SendInviteRequest struct {
	Email string `json:"email"`
}

// InviteResponse reports an invite send. Token is only present in development
// mode, when no SMTP transport is configured.
type InviteResponse struct {
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expires_at"`
	Token     string    `json:"token,omitempty"`
}

type VerifyInviteResponse struct {
	Email string `json:"email"`
}

type AcceptInviteRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

type AcceptInviteResponse struct {
	Token string       `json:"token"`
	Admin AdminSummary `json:"admin"`
}

type InviteAdminRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

type InviteAdminResponse struct {
	Admin  AdminSummary   `json:"admin"`
	Invite InviteResponse `json:"invite"`
}

// DirectoryStats are the aggregate counts of the combined admin listing.
type DirectoryStats struct {
	Active  int `json:"active"`
	Pending int `json:"pending"`
}

type AdminsResponse struct {
	Admins  []AdminSummary  `json:"admins"`
	Pending []PendingInvite `json:"pending"`
	Stats   DirectoryStats  `json:"stats"`
}

// UpdateAdminRequest carries a partial update; omitted fields stay unchanged.
type UpdateAdminRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Role  *string `json:"role,omitempty"`
}

type CreateRequestRequest struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	StoreURL     string `json:"storeUrl"`
	MonthlySales string `json:"monthlySales"`
}

type ConsultationRequest struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	StoreURL     string    `json:"storeUrl"`
	MonthlySales string    `json:"monthlySales"`
	CreatedAt    time.Time `json:"created_at"`
}

type RequestsResponse struct {
	Requests []ConsultationRequest `json:"requests"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of critical dependencies in readiness
// probes.
type HealthChecks struct {
	Database string `json:"database"`
}

// ErrorResponse is the uniform error body. Fields is only populated for
// validation errors and lists the offending field names.
type ErrorResponse struct {
	Error            string   `json:"error"`
	ErrorDescription string   `json:"error_description"`
	Fields           []string `json:"fields,omitempty"`
}
