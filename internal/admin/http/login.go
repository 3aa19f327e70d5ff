package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/intlakaa/backoffice/internal/admin/service"
	"github.com/intlakaa/backoffice/pkg/adminsdk"
	"github.com/intlakaa/backoffice/pkg/httpx"
	"github.com/intlakaa/backoffice/pkg/slogx"
)

type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Admin Login Endpoint
//	@Description	Authenticate an admin with email and password. On success returns a session token and the identity summary.
//	@Description	Unknown emails, wrong passwords, and identities without a password all fail identically.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		adminsdk.LoginRequest	true	"Login request"
//	@Success		200		{object}	adminsdk.LoginResponse	"token, admin"
//	@Failure		400		{object}	adminsdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	adminsdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	adminsdk.ErrorResponse	"error, error_description"
//	@Router			/api/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req adminsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	admin, token, err := h.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, adminsdk.ErrorCodeInvalidCredentials, "invalid email or password")
			return
		}
		log.Error("login failed", "err", err)
		writeServerError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, adminsdk.LoginResponse{
		Token: token,
		Admin: adminSummary(admin),
	})
}
