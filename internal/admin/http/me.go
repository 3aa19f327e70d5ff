package http

import (
	"errors"
	"net/http"

	"github.com/intlakaa/backoffice/internal/admin/service"
	"github.com/intlakaa/backoffice/pkg/adminsdk"
	"github.com/intlakaa/backoffice/pkg/httpx"
	"github.com/intlakaa/backoffice/pkg/slogx"
)

type MeHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Current Identity Endpoint
//	@Description	Return the identity summary behind the presented session token.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	adminsdk.AdminSummary	"id, name, email, role, created_at"
//	@Failure		401	{object}	adminsdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	adminsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/api/auth/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	adminID := httpx.AdminIDFromContext(ctx)
	if adminID == "" {
		writeError(w, http.StatusUnauthorized, adminsdk.ErrorCodeInvalidCredentials, "authentication required")
		return
	}

	admin, err := h.AuthService.GetAdminByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, service.ErrAdminNotFound) {
			// Token is valid but the identity is gone (deleted admin).
			writeError(w, http.StatusUnauthorized, adminsdk.ErrorCodeInvalidCredentials, "unknown identity")
			return
		}
		log.Error("failed to load identity", "err", err)
		writeServerError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, adminSummary(admin))
}
