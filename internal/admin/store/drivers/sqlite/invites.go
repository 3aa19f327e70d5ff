package sqlite

import (
	"context"
	"time"

	"github.com/intlakaa/backoffice/internal/admin/domain"
)

type invitesRepo struct {
	db dbtx
}

const inviteColumns = `id, email, token_hash, expires_at, accepted, created_at, updated_at`

func scanInvite(row interface{ Scan(dest ...any) error }) (domain.Invite, error) {
	var inv domain.Invite
	err := row.Scan(
		&inv.ID,
		&inv.Email,
		&inv.TokenHash,
		&inv.ExpiresAt,
		&inv.Accepted,
		&inv.CreatedAt,
		&inv.UpdatedAt,
	)
	return inv, err
}

func (r *invitesRepo) CreateInvite(ctx context.Context, inv domain.Invite) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO invites (id, email, token_hash, expires_at, accepted, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.Email, inv.TokenHash, inv.ExpiresAt.UTC(), inv.Accepted,
		inv.CreatedAt.UTC(), inv.UpdatedAt.UTC())
	return mapConstraint(err)
}

func (r *invitesRepo) GetActionableInviteByTokenHash(ctx context.Context, hash string) (domain.Invite, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+inviteColumns+` FROM invites
		 WHERE token_hash = ? AND accepted = 0 AND expires_at > ?`,
		hash, time.Now().UTC())
	inv, err := scanInvite(row)
	if err != nil {
		return domain.Invite{}, mapNotFound(err)
	}
	return inv, nil
}

func (r *invitesRepo) GetActionableInviteByEmail(ctx context.Context, email string) (domain.Invite, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+inviteColumns+` FROM invites
		 WHERE email = ? AND accepted = 0 AND expires_at > ?
		 ORDER BY created_at DESC LIMIT 1`,
		email, time.Now().UTC())
	inv, err := scanInvite(row)
	if err != nil {
		return domain.Invite{}, mapNotFound(err)
	}
	return inv, nil
}

func (r *invitesRepo) GetInviteByID(ctx context.Context, id string) (domain.Invite, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+inviteColumns+` FROM invites WHERE id = ?`, id)
	inv, err := scanInvite(row)
	if err != nil {
		return domain.Invite{}, mapNotFound(err)
	}
	return inv, nil
}

// MarkInviteAccepted flips accepted exactly once. The accepted = 0 guard makes
// concurrent redemptions race on the row update; the loser gets ErrNotFound.
func (r *invitesRepo) MarkInviteAccepted(ctx context.Context, inviteID string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE invites SET accepted = 1, updated_at = ? WHERE id = ? AND accepted = 0`,
		time.Now().UTC(), inviteID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *invitesRepo) DeleteInvite(ctx context.Context, inviteID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM invites WHERE id = ?`, inviteID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *invitesRepo) ListPendingInvites(ctx context.Context) ([]domain.Invite, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+inviteColumns+` FROM invites
		 WHERE accepted = 0 AND expires_at > ?
		 ORDER BY created_at DESC, id DESC`,
		time.Now().UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Invite
	for rows.Next() {
		inv, err := scanInvite(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func (r *invitesRepo) DeleteExpiredInvites(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM invites WHERE expires_at <= ? OR accepted = 1`,
		time.Now().UTC())
	return err
}
