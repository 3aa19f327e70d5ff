package service

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"time"

	"github.com/intlakaa/backoffice/internal/admin/domain"
	"github.com/intlakaa/backoffice/internal/admin/store"
	"github.com/intlakaa/backoffice/pkg/cryptox"
	"github.com/intlakaa/backoffice/pkg/idx"
	"github.com/intlakaa/backoffice/pkg/jwtx"
	"github.com/intlakaa/backoffice/pkg/mailx"
	"github.com/intlakaa/backoffice/pkg/slogx"
)

var (
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrInvalidOrExpiredToken is returned whether the token never existed,
	// was already accepted, or lapsed. One answer for all three.
	ErrInvalidOrExpiredToken = errors.New("invalid or expired invite token")

	ErrWeakPassword   = errors.New("password must be at least 6 characters")
	ErrDeliveryFailed = errors.New("failed to deliver invite email")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrInvalidRole    = errors.New("invalid role")
)

// MinPasswordLength is the minimum accepted password length for invite
// acceptance and owner bootstrap.
const MinPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// DefaultInviteTTL is how long an invite link stays actionable.
const DefaultInviteTTL = time.Hour

type InviteService struct {
	Store       store.Store
	Mailer      mailx.Mailer
	Sessions    jwtx.Signer
	FrontendURL string
	InviteTTL   time.Duration
}

func (s *InviteService) ttl() time.Duration {
	if s.InviteTTL <= 0 {
		return DefaultInviteTTL
	}
	return s.InviteTTL
}

// SendInviteResult reports what SendInvite did. Token is only populated when
// Delivered is false: with no SMTP settings configured the service runs in a
// development mode that hands the token straight back to the caller.
type SendInviteResult struct {
	Token     string
	ExpiresAt time.Time
	Delivered bool
}

// SendInvite mints a fresh single-use invite for an email address. Any prior
// actionable invite for the same email is superseded so at most one live link
// exists per address.
func (s *InviteService) SendInvite(ctx context.Context, email string) (SendInviteResult, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate and normalize the address.
	email = normalizeEmail(email)
	if !emailPattern.MatchString(email) {
		log.Warn("send-invite attempted with malformed email")
		return SendInviteResult{}, ErrInvalidEmail
	}

	// 2. Supersede and create atomically to narrow the concurrent-resend
	// window.
	invite, token, err := s.mintInvite(ctx, email)
	if err != nil {
		return SendInviteResult{}, err
	}

	// 3. Development fallback: no SMTP settings means the token goes back
	// to the caller and the invite stays actionable.
	if !s.Mailer.Configured() {
		log.Info("mailer not configured, returning invite token to caller",
			slog.String("invite_id", invite.ID),
		)
		return SendInviteResult{Token: token, ExpiresAt: invite.ExpiresAt}, nil
	}

	// 4. Deliver. A configured-but-failing transport rolls the invite back
	// so no actionable record exists without a dispatched email.
	if err := s.deliverInviteEmail(ctx, email, email, token); err != nil {
		log.Error("invite delivery failed, rolling back invite",
			slog.String("invite_id", invite.ID),
			slog.Any("error", err),
		)
		if delErr := s.Store.Invites().DeleteInvite(ctx, invite.ID); delErr != nil {
			log.Error("failed to roll back undelivered invite",
				slog.String("invite_id", invite.ID),
				slog.Any("error", delErr),
			)
		}
		return SendInviteResult{}, ErrDeliveryFailed
	}

	log.Info("invite sent",
		slog.String("invite_id", invite.ID),
		slog.Time("expires_at", invite.ExpiresAt),
	)
	return SendInviteResult{ExpiresAt: invite.ExpiresAt, Delivered: true}, nil
}

// VerifyInvite returns the email behind a token if it is still actionable.
func (s *InviteService) VerifyInvite(ctx context.Context, token string) (string, error) {
	log := slogx.FromContext(ctx)

	if token == "" {
		return "", ErrInvalidOrExpiredToken
	}

	fingerprint := cryptox.FingerprintToken(token)
	invite, err := s.Store.Invites().GetActionableInviteByTokenHash(ctx, fingerprint)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("verify attempted with invalid or expired token")
			return "", ErrInvalidOrExpiredToken
		}
		log.Error("failed to fetch invite", slog.Any("error", err))
		return "", err
	}
	return invite.Email, nil
}

// AcceptInvite consumes an actionable invite: the identity write commits
// first, then the invite flips to accepted, then a session is issued. A crash
// between the two writes leaves a re-usable token pointing at an
// already-updated identity, which is safe because a second accept is
// idempotent in effect.
func (s *InviteService) AcceptInvite(ctx context.Context, token, password, name string) (domain.Admin, string, error) {
	log := slogx.FromContext(ctx)

	// 1. Look the invite up through its fingerprint.
	if token == "" {
		return domain.Admin{}, "", ErrInvalidOrExpiredToken
	}
	fingerprint := cryptox.FingerprintToken(token)
	invite, err := s.Store.Invites().GetActionableInviteByTokenHash(ctx, fingerprint)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("accept attempted with invalid or expired token")
			return domain.Admin{}, "", ErrInvalidOrExpiredToken
		}
		log.Error("failed to fetch invite", slog.Any("error", err))
		return domain.Admin{}, "", err
	}

	// 2. Password policy before any write.
	if len(password) < MinPasswordLength {
		return domain.Admin{}, "", ErrWeakPassword
	}
	passwordHash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.Admin{}, "", err
	}

	// 3. Commit the identity. Existing identities (owner invite path) get
	// their password and optionally name updated in place; otherwise a new
	// admin-role identity is created.
	var admin domain.Admin
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		existing, err := tx.Admins().GetAdminByEmail(ctx, invite.Email)
		switch {
		case err == nil:
			if name != "" {
				existing.Name = name
				existing.UpdatedAt = time.Now().UTC()
				if err := tx.Admins().UpdateAdmin(ctx, existing); err != nil {
					return err
				}
			}
			if err := tx.Admins().UpdatePasswordHash(ctx, existing.ID, passwordHash); err != nil {
				return err
			}
			existing.PasswordHash = passwordHash
			admin = existing
			return nil

		case errors.Is(err, store.ErrNotFound):
			now := time.Now().UTC()
			admin = domain.Admin{
				ID:           idx.New().String(),
				Name:         name,
				Email:        invite.Email,
				PasswordHash: passwordHash,
				Role:         domain.RoleAdmin,
				CreatedAt:    now,
				UpdatedAt:    now,
			}
			if admin.Name == "" {
				admin.Name = invite.Email
			}
			return tx.Admins().CreateAdmin(ctx, admin)

		default:
			return err
		}
	})
	if err != nil {
		log.Error("failed to commit identity for invite",
			slog.String("invite_id", invite.ID),
			slog.Any("error", err),
		)
		return domain.Admin{}, "", err
	}

	// 4. Consume the invite. The accepted=0 guard makes a concurrent double
	// accept lose here with ErrNotFound.
	if err := s.Store.Invites().MarkInviteAccepted(ctx, invite.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("invite consumed concurrently",
				slog.String("invite_id", invite.ID),
			)
			return domain.Admin{}, "", ErrInvalidOrExpiredToken
		}
		log.Error("failed to mark invite accepted",
			slog.String("invite_id", invite.ID),
			slog.Any("error", err),
		)
		return domain.Admin{}, "", err
	}

	// 5. Issue the session.
	sessionToken, err := s.Sessions.Sign(admin.ID, string(admin.Role))
	if err != nil {
		log.Error("failed to sign session token", slog.Any("error", err))
		return domain.Admin{}, "", err
	}

	log.Info("invite accepted",
		slog.String("invite_id", invite.ID),
		slog.String("admin_id", admin.ID),
	)
	return admin, sessionToken, nil
}

// InviteAdmin is the owner-initiated path: it creates the identity
// immediately, without a password, and mints a ledger invite whose acceptance
// sets the password. The invite token lives in the same ledger namespace as
// SendInvite tokens.
func (s *InviteService) InviteAdmin(ctx context.Context, name, email string, role domain.Role) (domain.Admin, SendInviteResult, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input.
	email = normalizeEmail(email)
	if !emailPattern.MatchString(email) {
		return domain.Admin{}, SendInviteResult{}, ErrInvalidEmail
	}
	if role == "" {
		role = domain.RoleAdmin
	}
	if !role.Valid() {
		return domain.Admin{}, SendInviteResult{}, ErrInvalidRole
	}
	if name == "" {
		name = email
	}

	// 2. Create the passwordless identity and the invite in one transaction.
	now := time.Now().UTC()
	admin := domain.Admin{
		ID:        idx.New().String(),
		Name:      name,
		Email:     email,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	invite, token, err := s.mintInviteWith(ctx, email, func(tx store.Tx) error {
		return tx.Admins().CreateAdmin(ctx, admin)
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Warn("invite attempted for already-registered email")
			return domain.Admin{}, SendInviteResult{}, ErrDuplicateEmail
		}
		return domain.Admin{}, SendInviteResult{}, err
	}

	// 3. Development fallback, same as SendInvite.
	if !s.Mailer.Configured() {
		log.Info("mailer not configured, returning invite token to caller",
			slog.String("invite_id", invite.ID),
			slog.String("admin_id", admin.ID),
		)
		return admin, SendInviteResult{Token: token, ExpiresAt: invite.ExpiresAt}, nil
	}

	// 4. Deliver, rolling back both the invite and the placeholder identity
	// on transport failure.
	if err := s.deliverInviteEmail(ctx, email, name, token); err != nil {
		log.Error("invite delivery failed, rolling back identity and invite",
			slog.String("invite_id", invite.ID),
			slog.String("admin_id", admin.ID),
			slog.Any("error", err),
		)
		rollbackErr := s.Store.WithTx(ctx, func(tx store.Tx) error {
			if err := tx.Invites().DeleteInvite(ctx, invite.ID); err != nil && !errors.Is(err, store.ErrNotFound) {
				return err
			}
			if err := tx.Admins().DeleteAdmin(ctx, admin.ID); err != nil && !errors.Is(err, store.ErrNotFound) {
				return err
			}
			return nil
		})
		if rollbackErr != nil {
			log.Error("failed to roll back undelivered admin invite",
				slog.Any("error", rollbackErr),
			)
		}
		return domain.Admin{}, SendInviteResult{}, ErrDeliveryFailed
	}

	log.Info("admin invited",
		slog.String("admin_id", admin.ID),
		slog.String("invite_id", invite.ID),
		slog.String("role", string(role)),
	)
	return admin, SendInviteResult{ExpiresAt: invite.ExpiresAt, Delivered: true}, nil
}

// mintInvite supersedes any actionable invite for email and writes a fresh
// one, returning the raw token. Only the fingerprint is persisted.
func (s *InviteService) mintInvite(ctx context.Context, email string) (domain.Invite, string, error) {
	return s.mintInviteWith(ctx, email, nil)
}

// mintInviteWith additionally runs extra inside the same transaction, before
// the invite write. A token fingerprint collision is retried once with a
// fresh token.
func (s *InviteService) mintInviteWith(ctx context.Context, email string, extra func(tx store.Tx) error) (domain.Invite, string, error) {
	log := slogx.FromContext(ctx)

	const attempts = 2
	var lastErr error
	for range attempts {
		token, err := cryptox.GenerateToken(cryptox.TokenSize256)
		if err != nil {
			log.Error("failed to generate invite token", slog.Any("error", err))
			return domain.Invite{}, "", err
		}

		now := time.Now().UTC()
		invite := domain.Invite{
			ID:        idx.New().String(),
			Email:     email,
			TokenHash: cryptox.FingerprintToken(token),
			ExpiresAt: now.Add(s.ttl()),
			CreatedAt: now,
			UpdatedAt: now,
		}

		err = s.Store.WithTx(ctx, func(tx store.Tx) error {
			if extra != nil {
				if err := extra(tx); err != nil {
					return err
				}
			}
			prior, err := tx.Invites().GetActionableInviteByEmail(ctx, email)
			if err == nil {
				if err := tx.Invites().DeleteInvite(ctx, prior.ID); err != nil {
					return err
				}
				log.Debug("superseded prior invite",
					slog.String("prior_invite_id", prior.ID),
				)
			} else if !errors.Is(err, store.ErrNotFound) {
				return err
			}
			return tx.Invites().CreateInvite(ctx, invite)
		})
		if err == nil {
			return invite, token, nil
		}
		lastErr = err
		if !errors.Is(err, store.ErrAlreadyExists) || extra != nil {
			// extra-write conflicts (duplicate admin email) are not token
			// collisions; surface them.
			return domain.Invite{}, "", err
		}
		log.Warn("invite token fingerprint collision, retrying")
	}
	return domain.Invite{}, "", lastErr
}

func (s *InviteService) deliverInviteEmail(ctx context.Context, email, name, token string) error {
	inviteURL := s.FrontendURL + "/accept-invite?token=" + token
	body, err := mailx.RenderInvite(name, inviteURL)
	if err != nil {
		return err
	}
	return s.Mailer.Send(ctx, email, mailx.InviteSubject, body)
}
