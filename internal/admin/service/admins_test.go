package service

import (
	"context"
	"testing"

	"github.com/intlakaa/backoffice/internal/admin/domain"
	"github.com/intlakaa/backoffice/pkg/idx"
	"github.com/intlakaa/backoffice/pkg/mailx"
	"github.com/stretchr/testify/require"
)

func TestListDirectory(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	invites := &InviteService{Store: st, Mailer: mailx.Disabled{}, Sessions: newTestSigner(t)}
	svc := &AdminService{Store: st}

	seedAdmin(t, st, "owner@b.com", "abcdef", domain.RoleOwner)
	seedAdmin(t, st, "admin@b.com", "abcdef", domain.RoleAdmin)

	// A pending invite plus its placeholder identity count once, as pending.
	_, _, err := invites.InviteAdmin(ctx, "Pending", "pending@b.com", domain.RoleAdmin)
	require.NoError(t, err)

	dir, err := svc.ListDirectory(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, dir.Stats.Active)
	require.Equal(t, 1, dir.Stats.Pending)
	require.Len(t, dir.Active, 2)
	require.Len(t, dir.Pending, 1)
	require.Equal(t, "pending@b.com", dir.Pending[0].Email)

	for _, a := range dir.Active {
		require.NotEqual(t, "pending@b.com", a.Email)
	}
}

func TestUpdateAdminPartial(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &AdminService{Store: st}

	seeded := seedAdmin(t, st, "a@b.com", "abcdef", domain.RoleAdmin)

	t.Run("updates only provided fields", func(t *testing.T) {
		name := "New Name"
		updated, err := svc.UpdateAdmin(ctx, seeded.ID, AdminUpdate{Name: &name})
		require.NoError(t, err)
		require.Equal(t, "New Name", updated.Name)
		require.Equal(t, "a@b.com", updated.Email)
		require.Equal(t, domain.RoleAdmin, updated.Role)
	})

	t.Run("role change", func(t *testing.T) {
		role := domain.RoleOwner
		updated, err := svc.UpdateAdmin(ctx, seeded.ID, AdminUpdate{Role: &role})
		require.NoError(t, err)
		require.Equal(t, domain.RoleOwner, updated.Role)

		back := domain.RoleAdmin
		_, err = svc.UpdateAdmin(ctx, seeded.ID, AdminUpdate{Role: &back})
		require.NoError(t, err)
	})

	t.Run("rejects invalid role", func(t *testing.T) {
		role := domain.Role("superuser")
		_, err := svc.UpdateAdmin(ctx, seeded.ID, AdminUpdate{Role: &role})
		require.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		email := "not-an-email"
		_, err := svc.UpdateAdmin(ctx, seeded.ID, AdminUpdate{Email: &email})
		require.ErrorIs(t, err, ErrInvalidEmail)
	})

	t.Run("rejects taken email", func(t *testing.T) {
		seedAdmin(t, st, "taken@b.com", "abcdef", domain.RoleAdmin)
		email := "taken@b.com"
		_, err := svc.UpdateAdmin(ctx, seeded.ID, AdminUpdate{Email: &email})
		require.ErrorIs(t, err, ErrDuplicateEmail)
	})

	t.Run("unknown id", func(t *testing.T) {
		name := "x"
		_, err := svc.UpdateAdmin(ctx, idx.New().String(), AdminUpdate{Name: &name})
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDeleteAdmin(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	invites := &InviteService{Store: st, Mailer: mailx.Disabled{}, Sessions: newTestSigner(t)}
	svc := &AdminService{Store: st}

	owner := seedAdmin(t, st, "owner@b.com", "abcdef", domain.RoleOwner)

	t.Run("owner identity is never deletable", func(t *testing.T) {
		require.ErrorIs(t, svc.DeleteAdmin(ctx, owner.ID), ErrForbidden)
	})

	t.Run("admin identity deletes cleanly", func(t *testing.T) {
		admin := seedAdmin(t, st, "gone@b.com", "abcdef", domain.RoleAdmin)
		require.NoError(t, svc.DeleteAdmin(ctx, admin.ID))

		dir, err := svc.ListDirectory(ctx)
		require.NoError(t, err)
		for _, a := range dir.Active {
			require.NotEqual(t, admin.ID, a.ID)
		}
	})

	t.Run("pending invite deletes by id with its placeholder", func(t *testing.T) {
		_, _, err := invites.InviteAdmin(ctx, "P", "p@b.com", domain.RoleAdmin)
		require.NoError(t, err)

		dir, err := svc.ListDirectory(ctx)
		require.NoError(t, err)
		require.Len(t, dir.Pending, 1)

		require.NoError(t, svc.DeleteAdmin(ctx, dir.Pending[0].ID))

		dir, err = svc.ListDirectory(ctx)
		require.NoError(t, err)
		require.Empty(t, dir.Pending)

		// The email is free for a fresh invite again.
		_, _, err = invites.InviteAdmin(ctx, "P", "p@b.com", domain.RoleAdmin)
		require.NoError(t, err)
	})

	t.Run("unknown id", func(t *testing.T) {
		require.ErrorIs(t, svc.DeleteAdmin(ctx, idx.New().String()), ErrNotFound)
	})
}
