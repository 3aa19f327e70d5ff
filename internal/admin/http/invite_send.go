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

type InviteSendHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		Send Invite Endpoint
//	@Description	Mint a single-use invite for an email address and dispatch the invitation email. Any prior
//	@Description	pending invite for the same address is superseded. Without SMTP settings the token is
//	@Description	returned in the response body instead (development mode).
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			request	body		adminsdk.SendInviteRequest	true	"Invite request"
//	@Success		200		{object}	adminsdk.InviteResponse		"message, expires_at, token?"
//	@Failure		400		{object}	adminsdk.ErrorResponse		"error, error_description"
//	@Failure		502		{object}	adminsdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	adminsdk.ErrorResponse		"error, error_description"
//	@Router			/api/auth/send-invite [post].
func (h *InviteSendHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req adminsdk.SendInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	res, err := h.InviteService.SendInvite(ctx, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmail):
			writeError(w, http.StatusBadRequest, adminsdk.ErrorCodeInvalidRequest, "a valid email is required")
		case errors.Is(err, service.ErrDeliveryFailed):
			writeError(w, http.StatusBadGateway, adminsdk.ErrorCodeDeliveryFailed, "failed to send invitation email")
		default:
			log.Error("failed to send invite", "err", err)
			writeServerError(w)
		}
		return
	}

	resp := adminsdk.InviteResponse{
		Message:   "invitation sent",
		ExpiresAt: res.ExpiresAt,
	}
	if !res.Delivered {
		resp.Message = "invitation created (email not configured)"
		resp.Token = res.Token
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}
