package httpx

import "context"

type ctxKey string

const (
	CtxKeyAdminID ctxKey = "admin_id"
	CtxKeyRole    ctxKey = "role"
)

// AdminIDFromContext returns the authenticated admin id, if any.
func AdminIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyAdminID).(string); ok {
		return v
	}
	return ""
}

// RoleFromContext returns the authenticated admin role, if any.
func RoleFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyRole).(string); ok {
		return v
	}
	return ""
}
