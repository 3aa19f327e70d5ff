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

type InviteAcceptHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		Accept Invite Endpoint
//	@Description	Consume an invite token: set the account password (creating the identity if needed) and
//	@Description	issue a session token. Each invite works exactly once.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			request	body		adminsdk.AcceptInviteRequest	true	"Accept request"
//	@Success		200		{object}	adminsdk.AcceptInviteResponse	"token, admin"
//	@Failure		400		{object}	adminsdk.ErrorResponse			"error, error_description"
//	@Failure		500		{object}	adminsdk.ErrorResponse			"error, error_description"
//	@Router			/api/auth/accept-invite [post].
func (h *InviteAcceptHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req adminsdk.AcceptInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	admin, token, err := h.InviteService.AcceptInvite(ctx, req.Token, req.Password, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidOrExpiredToken):
			writeError(w, http.StatusBadRequest, adminsdk.ErrorCodeInvalidOrExpiredToken, "invitation is invalid or has expired")
		case errors.Is(err, service.ErrWeakPassword):
			writeError(w, http.StatusBadRequest, adminsdk.ErrorCodeInvalidRequest, "password must be at least 6 characters")
		default:
			log.Error("failed to accept invite", "err", err)
			writeServerError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, adminsdk.AcceptInviteResponse{
		Token: token,
		Admin: adminSummary(admin),
	})
}
