package http

import (
	"errors"
	"net/http"

	"github.com/intlakaa/backoffice/internal/admin/service"
	"github.com/intlakaa/backoffice/pkg/adminsdk"
	"github.com/intlakaa/backoffice/pkg/httpx"
	"github.com/intlakaa/backoffice/pkg/slogx"
)

type InviteVerifyHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		Verify Invite Endpoint
//	@Description	Check an invite token and return the email it was issued for. Unknown, consumed, and
//	@Description	expired tokens all produce the same error.
//	@Tags			Invites
//	@Produce		json
//	@Param			token	query		string							true	"Invite token"
//	@Success		200		{object}	adminsdk.VerifyInviteResponse	"email"
//	@Failure		400		{object}	adminsdk.ErrorResponse			"error, error_description"
//	@Failure		500		{object}	adminsdk.ErrorResponse			"error, error_description"
//	@Router			/api/auth/verify-invite [get].
func (h *InviteVerifyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	email, err := h.InviteService.VerifyInvite(ctx, r.URL.Query().Get("token"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidOrExpiredToken) {
			writeError(w, http.StatusBadRequest, adminsdk.ErrorCodeInvalidOrExpiredToken, "invitation is invalid or has expired")
			return
		}
		log.Error("failed to verify invite", "err", err)
		writeServerError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, adminsdk.VerifyInviteResponse{Email: email})
}
