package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/intlakaa/backoffice/internal/admin/domain"
	"github.com/intlakaa/backoffice/internal/admin/service"
	"github.com/intlakaa/backoffice/pkg/adminsdk"
	"github.com/intlakaa/backoffice/pkg/httpx"
	"github.com/intlakaa/backoffice/pkg/slogx"
)

// AdminsHandler serves the owner-only admin management endpoints.
type AdminsHandler struct {
	AdminService  *service.AdminService
	InviteService *service.InviteService
}

// HandleInvite godoc
//
//	@Summary		Invite Admin Endpoint
//	@Description	Owner-initiated invite: create the identity immediately (without a password) and send an
//	@Description	acceptance link that sets the password. Without SMTP settings the token is returned in the
//	@Description	response instead.
//	@Tags			Admins
//	@Accept			json
//	@Produce		json
//	@Param			request	body		adminsdk.InviteAdminRequest		true	"Invite request"
//	@Success		201		{object}	adminsdk.InviteAdminResponse	"admin, invite"
//	@Failure		400		{object}	adminsdk.ErrorResponse			"error, error_description"
//	@Failure		409		{object}	adminsdk.ErrorResponse			"error, error_description"
//	@Failure		502		{object}	adminsdk.ErrorResponse			"error, error_description"
//	@Failure		500		{object}	adminsdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/api/admins/invite [post].
func (h *AdminsHandler) HandleInvite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req adminsdk.InviteAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	admin, res, err := h.InviteService.InviteAdmin(ctx, req.Name, req.Email, domain.Role(req.Role))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmail):
			writeError(w, http.StatusBadRequest, adminsdk.ErrorCodeInvalidRequest, "a valid email is required")
		case errors.Is(err, service.ErrInvalidRole):
			writeError(w, http.StatusBadRequest, adminsdk.ErrorCodeInvalidRequest, "role must be owner or admin")
		case errors.Is(err, service.ErrDuplicateEmail):
			writeError(w, http.StatusConflict, adminsdk.ErrorCodeDuplicateEmail, "an admin with this email already exists")
		case errors.Is(err, service.ErrDeliveryFailed):
			writeError(w, http.StatusBadGateway, adminsdk.ErrorCodeDeliveryFailed, "failed to send invitation email")
		default:
			log.Error("failed to invite admin", "err", err)
			writeServerError(w)
		}
		return
	}

	invite := adminsdk.InviteResponse{
		Message:   "invitation sent",
		ExpiresAt: res.ExpiresAt,
	}
	if !res.Delivered {
		invite.Message = "invitation created (email not configured)"
		invite.Token = res.Token
	}
	httpx.WriteJSON(w, http.StatusCreated, adminsdk.InviteAdminResponse{
		Admin:  adminSummary(admin),
		Invite: invite,
	})
}

// HandleList godoc
//
//	@Summary		List Admins Endpoint
//	@Description	Combined directory of active admin identities and pending invites, with aggregate counts.
//	@Tags			Admins
//	@Produce		json
//	@Success		200	{object}	adminsdk.AdminsResponse	"admins, pending, stats"
//	@Failure		401	{object}	adminsdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	adminsdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	adminsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/api/admins [get].
func (h *AdminsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	dir, err := h.AdminService.ListDirectory(ctx)
	if err != nil {
		log.Error("failed to list admins", "err", err)
		writeServerError(w)
		return
	}

	resp := adminsdk.AdminsResponse{
		Admins:  make([]adminsdk.AdminSummary, 0, len(dir.Active)),
		Pending: make([]adminsdk.PendingInvite, 0, len(dir.Pending)),
		Stats: adminsdk.DirectoryStats{
			Active:  dir.Stats.Active,
			Pending: dir.Stats.Pending,
		},
	}
	for _, a := range dir.Active {
		resp.Admins = append(resp.Admins, adminSummary(a))
	}
	for _, inv := range dir.Pending {
		resp.Pending = append(resp.Pending, pendingInvite(inv))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleUpdate godoc
//
//	@Summary		Update Admin Endpoint
//	@Description	Partial update of an identity. Omitted fields are left unchanged. Also mounted at
//	@Description	/api/admins/{id}/role for role-only updates.
//	@Tags			Admins
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Admin id"
//	@Param			request	body		adminsdk.UpdateAdminRequest	true	"Fields to update"
//	@Success		200		{object}	adminsdk.AdminSummary		"id, name, email, role, created_at"
//	@Failure		400		{object}	adminsdk.ErrorResponse		"error, error_description"
//	@Failure		404		{object}	adminsdk.ErrorResponse		"error, error_description"
//	@Failure		409		{object}	adminsdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	adminsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/api/admins/{id} [put].
func (h *AdminsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req adminsdk.UpdateAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	upd := service.AdminUpdate{Name: req.Name, Email: req.Email}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		upd.Role = &role
	}

	admin, err := h.AdminService.UpdateAdmin(ctx, r.PathValue("id"), upd)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			writeError(w, http.StatusNotFound, adminsdk.ErrorCodeNotFound, "admin not found")
		case errors.Is(err, service.ErrInvalidEmail):
			writeError(w, http.StatusBadRequest, adminsdk.ErrorCodeInvalidRequest, "a valid email is required")
		case errors.Is(err, service.ErrInvalidRole):
			writeError(w, http.StatusBadRequest, adminsdk.ErrorCodeInvalidRequest, "role must be owner or admin")
		case errors.Is(err, service.ErrDuplicateEmail):
			writeError(w, http.StatusConflict, adminsdk.ErrorCodeDuplicateEmail, "an admin with this email already exists")
		default:
			log.Error("failed to update admin", "err", err)
			writeServerError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, adminSummary(admin))
}

// HandleDelete godoc
//
//	@Summary		Delete Admin Endpoint
//	@Description	Delete an identity, or a pending invite when the id belongs to one. The owner identity is
//	@Description	never deletable.
//	@Tags			Admins
//	@Produce		json
//	@Param			id	path	string	true	"Admin or invite id"
//	@Success		204	"deleted"
//	@Failure		403	{object}	adminsdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	adminsdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	adminsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/api/admins/{id} [delete].
func (h *AdminsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := h.AdminService.DeleteAdmin(ctx, r.PathValue("id")); err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			writeError(w, http.StatusForbidden, adminsdk.ErrorCodeForbidden, "the owner account cannot be deleted")
		case errors.Is(err, service.ErrNotFound):
			writeError(w, http.StatusNotFound, adminsdk.ErrorCodeNotFound, "admin or invite not found")
		default:
			log.Error("failed to delete admin", "err", err)
			writeServerError(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
