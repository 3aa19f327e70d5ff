package sqlite

import (
	"context"
	"time"

	"github.com/intlakaa/backoffice/internal/admin/domain"
)

type adminsRepo struct {
	db dbtx
}

const adminColumns = `id, name, email, password_hash, role, created_at, updated_at`

func scanAdmin(row interface{ Scan(dest ...any) error }) (domain.Admin, error) {
	var a domain.Admin
	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Email,
		&a.PasswordHash,
		&a.Role,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}

func (r *adminsRepo) GetAdminByID(ctx context.Context, id string) (domain.Admin, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+adminColumns+` FROM admins WHERE id = ?`, id)
	a, err := scanAdmin(row)
	if err != nil {
		return domain.Admin{}, mapNotFound(err)
	}
	return a, nil
}

func (r *adminsRepo) GetAdminByEmail(ctx context.Context, email string) (domain.Admin, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+adminColumns+` FROM admins WHERE email = ?`, email)
	a, err := scanAdmin(row)
	if err != nil {
		return domain.Admin{}, mapNotFound(err)
	}
	return a, nil
}

func (r *adminsRepo) CreateAdmin(ctx context.Context, a domain.Admin) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO admins (id, name, email, password_hash, role, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Name, a.Email, a.PasswordHash, a.Role, a.CreatedAt.UTC(), a.UpdatedAt.UTC())
	return mapConstraint(err)
}

func (r *adminsRepo) UpdateAdmin(ctx context.Context, a domain.Admin) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE admins SET name = ?, email = ?, role = ?, updated_at = ? WHERE id = ?`,
		a.Name, a.Email, a.Role, a.UpdatedAt.UTC(), a.ID)
	if err != nil {
		return mapConstraint(err)
	}
	return requireAffected(res)
}

func (r *adminsRepo) UpdatePasswordHash(ctx context.Context, adminID string, newHash string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE admins SET password_hash = ?, updated_at = ? WHERE id = ?`,
		newHash, time.Now().UTC(), adminID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *adminsRepo) DeleteAdmin(ctx context.Context, adminID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM admins WHERE id = ?`, adminID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *adminsRepo) ListAdmins(ctx context.Context) ([]domain.Admin, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+adminColumns+` FROM admins ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Admin
	for rows.Next() {
		a, err := scanAdmin(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *adminsRepo) IsEmpty(ctx context.Context) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM admins`).Scan(&n)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}
