package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/intlakaa/backoffice/internal/admin/domain"
	"github.com/intlakaa/backoffice/internal/admin/store"
	"github.com/intlakaa/backoffice/pkg/cryptox"
	"github.com/intlakaa/backoffice/pkg/jwtx"
	"github.com/intlakaa/backoffice/pkg/slogx"
)

var (
	// ErrInvalidCredentials covers unknown email, wrong password, and
	// identities without a password set. Callers get one answer for all
	// three so login cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrAdminNotFound = errors.New("admin not found")
)

type AuthService struct {
	Store    store.Store
	Sessions jwtx.Signer
}

// Login authenticates an admin by email and password and issues a session
// token on success.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.Admin, string, error) {
	log := slogx.FromContext(ctx)

	email = normalizeEmail(email)
	if email == "" || password == "" {
		return domain.Admin{}, "", ErrInvalidCredentials
	}

	// 1. Look the identity up. Unknown emails fail the same way as wrong
	// passwords.
	admin, err := s.Store.Admins().GetAdminByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("login attempted with unknown email")
			return domain.Admin{}, "", ErrInvalidCredentials
		}
		log.Error("failed to fetch admin", slog.Any("error", err))
		return domain.Admin{}, "", err
	}

	// 2. Identities created via the owner invite path have no password
	// until the invite is accepted. They fail closed.
	if !admin.CanLogin() {
		log.Warn("login attempted against identity without password",
			slog.String("admin_id", admin.ID),
		)
		return domain.Admin{}, "", ErrInvalidCredentials
	}

	// 3. Verify the password against the stored digest.
	if err := cryptox.VerifyPassword(password, admin.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrMismatch) {
			log.Warn("login attempted with wrong password",
				slog.String("admin_id", admin.ID),
			)
			return domain.Admin{}, "", ErrInvalidCredentials
		}
		log.Error("failed to verify password", slog.Any("error", err))
		return domain.Admin{}, "", err
	}

	// 4. Issue the session.
	token, err := s.Sessions.Sign(admin.ID, string(admin.Role))
	if err != nil {
		log.Error("failed to sign session token", slog.Any("error", err))
		return domain.Admin{}, "", err
	}

	log.Info("admin logged in",
		slog.String("admin_id", admin.ID),
		slog.String("role", string(admin.Role)),
	)

	return admin, token, nil
}

// GetAdminByID returns the identity behind a session subject.
func (s *AuthService) GetAdminByID(ctx context.Context, id string) (domain.Admin, error) {
	admin, err := s.Store.Admins().GetAdminByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Admin{}, ErrAdminNotFound
		}
		return domain.Admin{}, err
	}
	return admin, nil
}

// normalizeEmail is the single canonical form for email keys: trimmed and
// lowercased before any lookup or write.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
