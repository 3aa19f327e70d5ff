package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/intlakaa/backoffice/internal/admin/domain"
	"github.com/intlakaa/backoffice/internal/admin/store"
	"github.com/intlakaa/backoffice/pkg/slogx"
)

var (
	// ErrForbidden is returned for role-based denials, notably any attempt
	// to delete the owner identity.
	ErrForbidden = errors.New("operation forbidden")

	ErrNotFound = errors.New("record not found")
)

type AdminService struct {
	Store store.Store
}

type DirectoryStats struct {
	Active  int
	Pending int
}

// Directory is the combined admin listing: identities that can log in plus
// invites still waiting for acceptance.
type Directory struct {
	Active  []domain.Admin
	Pending []domain.Invite
	Stats   DirectoryStats
}

// ListDirectory returns active identities and pending invites with aggregate
// counts. Placeholder identities created by InviteAdmin have no password yet
// and surface through their pending invite, not the active list.
func (s *AdminService) ListDirectory(ctx context.Context) (Directory, error) {
	log := slogx.FromContext(ctx)

	admins, err := s.Store.Admins().ListAdmins(ctx)
	if err != nil {
		log.Error("failed to list admins", slog.Any("error", err))
		return Directory{}, err
	}
	pending, err := s.Store.Invites().ListPendingInvites(ctx)
	if err != nil {
		log.Error("failed to list pending invites", slog.Any("error", err))
		return Directory{}, err
	}

	active := make([]domain.Admin, 0, len(admins))
	for _, a := range admins {
		if a.CanLogin() {
			active = append(active, a)
		}
	}

	return Directory{
		Active:  active,
		Pending: pending,
		Stats: DirectoryStats{
			Active:  len(active),
			Pending: len(pending),
		},
	}, nil
}

// AdminUpdate carries the optional fields of a partial update. Nil means
// leave the field alone.
type AdminUpdate struct {
	Name  *string
	Email *string
	Role  *domain.Role
}

// UpdateAdmin applies the provided fields to an identity and returns the
// updated record.
func (s *AdminService) UpdateAdmin(ctx context.Context, id string, upd AdminUpdate) (domain.Admin, error) {
	log := slogx.FromContext(ctx)

	admin, err := s.Store.Admins().GetAdminByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Admin{}, ErrNotFound
		}
		log.Error("failed to fetch admin", slog.Any("error", err))
		return domain.Admin{}, err
	}

	if upd.Name != nil && *upd.Name != "" {
		admin.Name = *upd.Name
	}
	if upd.Email != nil && *upd.Email != "" {
		email := normalizeEmail(*upd.Email)
		if !emailPattern.MatchString(email) {
			return domain.Admin{}, ErrInvalidEmail
		}
		admin.Email = email
	}
	if upd.Role != nil && *upd.Role != "" {
		if !upd.Role.Valid() {
			return domain.Admin{}, ErrInvalidRole
		}
		admin.Role = *upd.Role
	}
	admin.UpdatedAt = time.Now().UTC()

	if err := s.Store.Admins().UpdateAdmin(ctx, admin); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Admin{}, ErrDuplicateEmail
		}
		if errors.Is(err, store.ErrNotFound) {
			return domain.Admin{}, ErrNotFound
		}
		log.Error("failed to update admin",
			slog.String("admin_id", id),
			slog.Any("error", err),
		)
		return domain.Admin{}, err
	}

	log.Info("admin updated", slog.String("admin_id", admin.ID))
	return admin, nil
}

// DeleteAdmin removes an identity, or a pending invite when the id does not
// match any identity. The owner identity is never deletable. Deleting either
// side also clears its counterpart so a fresh invite for the email is
// possible afterwards.
func (s *AdminService) DeleteAdmin(ctx context.Context, id string) error {
	log := slogx.FromContext(ctx)

	admin, err := s.Store.Admins().GetAdminByID(ctx, id)
	switch {
	case err == nil:
		if admin.Role == domain.RoleOwner {
			log.Warn("attempted to delete owner identity",
				slog.String("admin_id", id),
			)
			return ErrForbidden
		}
		err = s.Store.WithTx(ctx, func(tx store.Tx) error {
			if err := tx.Admins().DeleteAdmin(ctx, admin.ID); err != nil {
				return err
			}
			inv, err := tx.Invites().GetActionableInviteByEmail(ctx, admin.Email)
			if err == nil {
				return tx.Invites().DeleteInvite(ctx, inv.ID)
			}
			if errors.Is(err, store.ErrNotFound) {
				return nil
			}
			return err
		})
		if err != nil {
			log.Error("failed to delete admin",
				slog.String("admin_id", id),
				slog.Any("error", err),
			)
			return err
		}
		log.Info("admin deleted", slog.String("admin_id", id))
		return nil

	case errors.Is(err, store.ErrNotFound):
		// Fall through to the invite ledger.
		return s.deleteInviteByID(ctx, id)

	default:
		log.Error("failed to fetch admin", slog.Any("error", err))
		return err
	}
}

func (s *AdminService) deleteInviteByID(ctx context.Context, id string) error {
	log := slogx.FromContext(ctx)

	invite, err := s.Store.Invites().GetInviteByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		log.Error("failed to fetch invite", slog.Any("error", err))
		return err
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Invites().DeleteInvite(ctx, invite.ID); err != nil {
			return err
		}
		// Clear the placeholder identity from the owner invite path, if one
		// exists and never set a password.
		admin, err := tx.Admins().GetAdminByEmail(ctx, invite.Email)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil
			}
			return err
		}
		if admin.CanLogin() || admin.Role == domain.RoleOwner {
			return nil
		}
		return tx.Admins().DeleteAdmin(ctx, admin.ID)
	})
	if err != nil {
		log.Error("failed to delete invite",
			slog.String("invite_id", invite.ID),
			slog.Any("error", err),
		)
		return err
	}

	log.Info("invite deleted", slog.String("invite_id", invite.ID))
	return nil
}
