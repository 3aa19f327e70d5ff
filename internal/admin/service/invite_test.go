package service

import (
	"context"
	"testing"
	"time"

	"github.com/intlakaa/backoffice/internal/admin/domain"
	"github.com/intlakaa/backoffice/pkg/cryptox"
	"github.com/intlakaa/backoffice/pkg/idx"
	"github.com/intlakaa/backoffice/pkg/mailx"
	"github.com/stretchr/testify/require"
)

func newInviteService(t *testing.T, mailer mailx.Mailer) *InviteService {
	t.Helper()
	return &InviteService{
		Store:       newTestStore(t),
		Mailer:      mailer,
		Sessions:    newTestSigner(t),
		FrontendURL: "https://admin.example.com",
	}
}

func TestSendInviteSupersedesPrior(t *testing.T) {
	ctx := context.Background()
	svc := newInviteService(t, mailx.Disabled{})

	first, err := svc.SendInvite(ctx, "a@b.com")
	require.NoError(t, err)
	require.NotEmpty(t, first.Token)

	second, err := svc.SendInvite(ctx, "a@b.com")
	require.NoError(t, err)
	require.NotEmpty(t, second.Token)
	require.NotEqual(t, first.Token, second.Token)

	// Exactly one actionable invite remains and the first link is dead.
	pending, err := svc.Store.Invites().ListPendingInvites(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	_, err = svc.VerifyInvite(ctx, first.Token)
	require.ErrorIs(t, err, ErrInvalidOrExpiredToken)

	email, err := svc.VerifyInvite(ctx, second.Token)
	require.NoError(t, err)
	require.Equal(t, "a@b.com", email)
}

func TestSendInviteRejectsMalformedEmail(t *testing.T) {
	ctx := context.Background()
	svc := newInviteService(t, mailx.Disabled{})

	for _, email := range []string{"", "not-an-email", "a@b", "a b@c.com"} {
		_, err := svc.SendInvite(ctx, email)
		require.ErrorIs(t, err, ErrInvalidEmail, "email %q", email)
	}
}

func TestSendInviteNormalizesEmail(t *testing.T) {
	ctx := context.Background()
	svc := newInviteService(t, mailx.Disabled{})

	res, err := svc.SendInvite(ctx, "  Someone@Example.COM ")
	require.NoError(t, err)

	email, err := svc.VerifyInvite(ctx, res.Token)
	require.NoError(t, err)
	require.Equal(t, "someone@example.com", email)
}

func TestSendInviteRollsBackOnDeliveryFailure(t *testing.T) {
	ctx := context.Background()
	mailer := &fakeMailer{configured: true, fail: true}
	svc := newInviteService(t, mailer)

	_, err := svc.SendInvite(ctx, "a@b.com")
	require.ErrorIs(t, err, ErrDeliveryFailed)

	pending, err := svc.Store.Invites().ListPendingInvites(ctx)
	require.NoError(t, err)
	require.Empty(t, pending)
}

func TestSendInviteDeliversWhenConfigured(t *testing.T) {
	ctx := context.Background()
	mailer := &fakeMailer{configured: true}
	svc := newInviteService(t, mailer)

	res, err := svc.SendInvite(ctx, "a@b.com")
	require.NoError(t, err)
	require.True(t, res.Delivered)
	require.Empty(t, res.Token, "raw token must not leak when mail was delivered")

	sent := mailer.sentMails()
	require.Len(t, sent, 1)
	require.Equal(t, "a@b.com", sent[0].To)
	require.Contains(t, sent[0].HTML, "https://admin.example.com/accept-invite?token=")
}

func TestAcceptInviteLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newInviteService(t, mailx.Disabled{})
	auth := &AuthService{Store: svc.Store, Sessions: svc.Sessions}

	res, err := svc.SendInvite(ctx, "a@b.com")
	require.NoError(t, err)

	email, err := svc.VerifyInvite(ctx, res.Token)
	require.NoError(t, err)
	require.Equal(t, "a@b.com", email)

	admin, session, err := svc.AcceptInvite(ctx, res.Token, "secret1", "Ali")
	require.NoError(t, err)
	require.Equal(t, "a@b.com", admin.Email)
	require.Equal(t, domain.RoleAdmin, admin.Role)
	require.Equal(t, "Ali", admin.Name)
	require.NotEmpty(t, session)

	claims, err := newTestSigner(t).Verify(session)
	require.NoError(t, err)
	require.Equal(t, admin.ID, claims.Subject)

	// The accepted account can log in straight away.
	loggedIn, _, err := auth.Login(ctx, "a@b.com", "secret1")
	require.NoError(t, err)
	require.Equal(t, admin.ID, loggedIn.ID)
}

func TestAcceptInviteSingleUse(t *testing.T) {
	ctx := context.Background()
	svc := newInviteService(t, mailx.Disabled{})

	res, err := svc.SendInvite(ctx, "a@b.com")
	require.NoError(t, err)

	_, _, err = svc.AcceptInvite(ctx, res.Token, "secret1", "")
	require.NoError(t, err)

	_, _, err = svc.AcceptInvite(ctx, res.Token, "secret2", "")
	require.ErrorIs(t, err, ErrInvalidOrExpiredToken)
}

func TestAcceptInviteExpiredToken(t *testing.T) {
	ctx := context.Background()
	svc := newInviteService(t, mailx.Disabled{})

	// Plant an invite whose expiry has already lapsed.
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	require.NoError(t, err)
	now := time.Now().UTC()
	require.NoError(t, svc.Store.Invites().CreateInvite(ctx, domain.Invite{
		ID:        idx.New().String(),
		Email:     "late@b.com",
		TokenHash: cryptox.FingerprintToken(token),
		ExpiresAt: now.Add(-time.Minute),
		CreatedAt: now.Add(-2 * time.Hour),
		UpdatedAt: now.Add(-2 * time.Hour),
	}))

	_, _, err = svc.AcceptInvite(ctx, token, "secret1", "")
	require.ErrorIs(t, err, ErrInvalidOrExpiredToken)

	// No identity was created along the way.
	_, err = svc.Store.Admins().GetAdminByEmail(ctx, "late@b.com")
	require.Error(t, err)
}

func TestAcceptInviteWeakPassword(t *testing.T) {
	ctx := context.Background()
	svc := newInviteService(t, mailx.Disabled{})

	res, err := svc.SendInvite(ctx, "a@b.com")
	require.NoError(t, err)

	_, _, err = svc.AcceptInvite(ctx, res.Token, "short", "")
	require.ErrorIs(t, err, ErrWeakPassword)

	// The invite survives a rejected password attempt.
	_, err = svc.VerifyInvite(ctx, res.Token)
	require.NoError(t, err)
}

func TestAcceptInviteUpdatesExistingIdentity(t *testing.T) {
	ctx := context.Background()
	svc := newInviteService(t, mailx.Disabled{})
	auth := &AuthService{Store: svc.Store, Sessions: svc.Sessions}

	// Owner path: a passwordless identity already exists for the email.
	created, res, err := svc.InviteAdmin(ctx, "Sara", "sara@b.com", domain.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)

	// Passwordless identities cannot log in yet.
	_, _, err = auth.Login(ctx, "sara@b.com", "anything")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	admin, _, err := svc.AcceptInvite(ctx, res.Token, "secret1", "")
	require.NoError(t, err)
	require.Equal(t, created.ID, admin.ID, "acceptance updates the identity in place")

	_, _, err = auth.Login(ctx, "sara@b.com", "secret1")
	require.NoError(t, err)
}

func TestInviteAdminDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := newInviteService(t, mailx.Disabled{})

	_, _, err := svc.InviteAdmin(ctx, "Sara", "sara@b.com", domain.RoleAdmin)
	require.NoError(t, err)

	_, _, err = svc.InviteAdmin(ctx, "Other", "sara@b.com", domain.RoleAdmin)
	require.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestInviteAdminRollsBackOnDeliveryFailure(t *testing.T) {
	ctx := context.Background()
	mailer := &fakeMailer{configured: true, fail: true}
	svc := newInviteService(t, mailer)

	_, _, err := svc.InviteAdmin(ctx, "Sara", "sara@b.com", domain.RoleAdmin)
	require.ErrorIs(t, err, ErrDeliveryFailed)

	// Neither the placeholder identity nor the invite survives.
	_, err = svc.Store.Admins().GetAdminByEmail(ctx, "sara@b.com")
	require.Error(t, err)
	pending, err := svc.Store.Invites().ListPendingInvites(ctx)
	require.NoError(t, err)
	require.Empty(t, pending)

	// A retry with a working transport succeeds.
	mailer.fail = false
	_, res, err := svc.InviteAdmin(ctx, "Sara", "sara@b.com", domain.RoleAdmin)
	require.NoError(t, err)
	require.True(t, res.Delivered)
}

func TestInviteAdminRejectsInvalidRole(t *testing.T) {
	ctx := context.Background()
	svc := newInviteService(t, mailx.Disabled{})

	_, _, err := svc.InviteAdmin(ctx, "X", "x@b.com", domain.Role("superuser"))
	require.ErrorIs(t, err, ErrInvalidRole)
}
