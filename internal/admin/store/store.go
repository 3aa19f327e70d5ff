package store

import (
	"context"
	"errors"

	"github.com/intlakaa/backoffice/internal/admin/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Admins() Admins
	Invites() Invites
	Requests() Requests

	ApplyMigrations() error

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Admins interface {
	// GetAdminByID returns an identity by id.
	GetAdminByID(ctx context.Context, id string) (domain.Admin, error)

	// GetAdminByEmail looks an identity up by its case-insensitive email key.
	GetAdminByEmail(ctx context.Context, email string) (domain.Admin, error)

	// CreateAdmin inserts a new identity (id is provided by app via ULID).
	// Returns ErrAlreadyExists when the email is taken.
	CreateAdmin(ctx context.Context, a domain.Admin) error

	// UpdateAdmin applies name/email/role and bumps updated_at.
	UpdateAdmin(ctx context.Context, a domain.Admin) error

	// UpdatePasswordHash sets the password digest and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, adminID string, newHash string) error

	// DeleteAdmin removes an identity. Role checks belong to the service.
	DeleteAdmin(ctx context.Context, adminID string) error

	// ListAdmins returns all identities ordered by creation date (oldest first).
	ListAdmins(ctx context.Context) ([]domain.Admin, error)

	// IsEmpty returns true if there are no identities (owner bootstrap check).
	IsEmpty(ctx context.Context) (bool, error)
}

type Invites interface {
	// CreateInvite writes a new invite (token_hash is the SHA-256 fingerprint
	// of the opaque invite token). Returns ErrAlreadyExists on a token
	// fingerprint collision.
	CreateInvite(ctx context.Context, inv domain.Invite) error

	// GetActionableInviteByTokenHash returns a not-accepted, not-expired
	// invite by fingerprint.
	GetActionableInviteByTokenHash(ctx context.Context, hash string) (domain.Invite, error)

	// GetActionableInviteByEmail returns the pending invite for an email, if
	// one exists. Used to supersede on resend.
	GetActionableInviteByEmail(ctx context.Context, email string) (domain.Invite, error)

	// GetInviteByID returns an invite regardless of state.
	GetInviteByID(ctx context.Context, id string) (domain.Invite, error)

	// MarkInviteAccepted sets accepted=1 exactly once. A second call returns
	// ErrNotFound since the actionable record no longer exists.
	MarkInviteAccepted(ctx context.Context, inviteID string) error

	// DeleteInvite removes an invite by id (supersede or owner cleanup).
	DeleteInvite(ctx context.Context, inviteID string) error

	// ListPendingInvites returns all actionable invites ordered by creation
	// date (newest first).
	ListPendingInvites(ctx context.Context) ([]domain.Invite, error)

	// DeleteExpiredInvites purges lapsed records (TTL housekeeping).
	DeleteExpiredInvites(ctx context.Context) error
}

type Requests interface {
	// CreateRequest inserts a consultation request.
	CreateRequest(ctx context.Context, r domain.ConsultationRequest) error

	// GetRequestByID returns a request by id.
	GetRequestByID(ctx context.Context, id string) (domain.ConsultationRequest, error)

	// ListRequests returns all requests ordered by creation date (newest first).
	ListRequests(ctx context.Context) ([]domain.ConsultationRequest, error)

	// DeleteRequest removes a request by id.
	DeleteRequest(ctx context.Context, id string) error
}
