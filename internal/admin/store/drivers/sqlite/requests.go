package sqlite

import (
	"context"

	"github.com/intlakaa/backoffice/internal/admin/domain"
)

type requestsRepo struct {
	db dbtx
}

const requestColumns = `id, name, phone, store_url, monthly_sales, created_at`

func scanRequest(row interface{ Scan(dest ...any) error }) (domain.ConsultationRequest, error) {
	var cr domain.ConsultationRequest
	err := row.Scan(
		&cr.ID,
		&cr.Name,
		&cr.Phone,
		&cr.StoreURL,
		&cr.MonthlySales,
		&cr.CreatedAt,
	)
	return cr, err
}

func (r *requestsRepo) CreateRequest(ctx context.Context, cr domain.ConsultationRequest) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO consultation_requests (id, name, phone, store_url, monthly_sales, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		cr.ID, cr.Name, cr.Phone, cr.StoreURL, cr.MonthlySales, cr.CreatedAt.UTC())
	return mapConstraint(err)
}

func (r *requestsRepo) GetRequestByID(ctx context.Context, id string) (domain.ConsultationRequest, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+requestColumns+` FROM consultation_requests WHERE id = ?`, id)
	cr, err := scanRequest(row)
	if err != nil {
		return domain.ConsultationRequest{}, mapNotFound(err)
	}
	return cr, nil
}

func (r *requestsRepo) ListRequests(ctx context.Context) ([]domain.ConsultationRequest, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+requestColumns+` FROM consultation_requests
		 ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ConsultationRequest
	for rows.Next() {
		cr, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, cr)
	}
	return out, rows.Err()
}

func (r *requestsRepo) DeleteRequest(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM consultation_requests WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
