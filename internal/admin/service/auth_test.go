package service

import (
	"context"
	"testing"
	"time"

	"github.com/intlakaa/backoffice/internal/admin/domain"
	"github.com/intlakaa/backoffice/internal/admin/store"
	"github.com/intlakaa/backoffice/pkg/cryptox"
	"github.com/intlakaa/backoffice/pkg/idx"
	"github.com/stretchr/testify/require"
)

func seedAdmin(t *testing.T, st store.Store, email, password string, role domain.Role) domain.Admin {
	t.Helper()

	var hash string
	if password != "" {
		var err error
		hash, err = cryptox.HashPassword(password)
		require.NoError(t, err)
	}

	now := time.Now().UTC()
	admin := domain.Admin{
		ID:           idx.New().String(),
		Name:         email,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, st.Admins().CreateAdmin(context.Background(), admin))
	return admin
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &AuthService{Store: st, Sessions: newTestSigner(t)}

	seeded := seedAdmin(t, st, "owner@b.com", "abcdef", domain.RoleOwner)

	t.Run("valid credentials issue a session", func(t *testing.T) {
		admin, token, err := svc.Login(ctx, "owner@b.com", "abcdef")
		require.NoError(t, err)
		require.Equal(t, seeded.ID, admin.ID)
		require.NotEmpty(t, token)

		claims, err := newTestSigner(t).Verify(token)
		require.NoError(t, err)
		require.Equal(t, seeded.ID, claims.Subject)
		require.Equal(t, string(domain.RoleOwner), claims.Role)
	})

	t.Run("email lookup is case-insensitive", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "  OWNER@B.COM ", "abcdef")
		require.NoError(t, err)
	})

	t.Run("wrong password fails uniformly", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "owner@b.com", "wrong!")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email fails uniformly", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "nobody@b.com", "abcdef")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("empty input fails uniformly", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "", "")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestLoginFailsClosedWithoutPassword(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &AuthService{Store: st, Sessions: newTestSigner(t)}

	seedAdmin(t, st, "pending@b.com", "", domain.RoleAdmin)

	for _, password := range []string{"", "anything", "pending@b.com"} {
		_, _, err := svc.Login(ctx, "pending@b.com", password)
		require.ErrorIs(t, err, ErrInvalidCredentials, "password %q", password)
	}
}

func TestGetAdminByID(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &AuthService{Store: st, Sessions: newTestSigner(t)}

	seeded := seedAdmin(t, st, "a@b.com", "abcdef", domain.RoleAdmin)

	admin, err := svc.GetAdminByID(ctx, seeded.ID)
	require.NoError(t, err)
	require.Equal(t, seeded.Email, admin.Email)

	_, err = svc.GetAdminByID(ctx, idx.New().String())
	require.ErrorIs(t, err, ErrAdminNotFound)
}

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := cryptox.HashPassword("abcdef")
	require.NoError(t, err)

	require.NoError(t, cryptox.VerifyPassword("abcdef", hash))
	require.ErrorIs(t, cryptox.VerifyPassword("wrong", hash), cryptox.ErrMismatch)
}
