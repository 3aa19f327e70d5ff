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

// RequestsHandler serves consultation request intake and management.
type RequestsHandler struct {
	RequestService *service.RequestService
}

func consultationRequest(r domain.ConsultationRequest) adminsdk.ConsultationRequest {
	return adminsdk.ConsultationRequest{
		ID:           r.ID,
		Name:         r.Name,
		Phone:        r.Phone,
		StoreURL:     r.StoreURL,
		MonthlySales: r.MonthlySales,
		CreatedAt:    r.CreatedAt,
	}
}

// HandleCreate godoc
//
//	@Summary		Consultation Intake Endpoint
//	@Description	Record a consultation request from the public form and notify the operator by email
//	@Description	(best effort; delivery failures do not affect the response).
//	@Tags			Requests
//	@Accept			json
//	@Produce		json
//	@Param			request	body		adminsdk.CreateRequestRequest	true	"Consultation request"
//	@Success		201		{object}	adminsdk.ConsultationRequest	"id, name, phone, storeUrl, monthlySales, created_at"
//	@Failure		400		{object}	adminsdk.ErrorResponse			"error, error_description, fields"
//	@Failure		500		{object}	adminsdk.ErrorResponse			"error, error_description"
//	@Router			/api/requests [post].
func (h *RequestsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req adminsdk.CreateRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	created, err := h.RequestService.CreateRequest(ctx, service.RequestInput{
		Name:         req.Name,
		Phone:        req.Phone,
		StoreURL:     req.StoreURL,
		MonthlySales: req.MonthlySales,
	})
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			httpx.WriteJSON(w, http.StatusBadRequest, adminsdk.ErrorResponse{
				Error:            adminsdk.ErrorCodeValidation,
				ErrorDescription: verr.Error(),
				Fields:           verr.Fields,
			})
			return
		}
		log.Error("failed to create consultation request", "err", err)
		writeServerError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, consultationRequest(created))
}

// HandleList godoc
//
//	@Summary		List Requests Endpoint
//	@Description	All consultation requests, newest first.
//	@Tags			Requests
//	@Produce		json
//	@Success		200	{object}	adminsdk.RequestsResponse	"requests"
//	@Failure		401	{object}	adminsdk.ErrorResponse		"error, error_description"
//	@Failure		500	{object}	adminsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/api/requests [get].
func (h *RequestsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	list, err := h.RequestService.ListRequests(ctx)
	if err != nil {
		log.Error("failed to list consultation requests", "err", err)
		writeServerError(w)
		return
	}

	resp := adminsdk.RequestsResponse{Requests: make([]adminsdk.ConsultationRequest, 0, len(list))}
	for _, item := range list {
		resp.Requests = append(resp.Requests, consultationRequest(item))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleGet godoc
//
//	@Summary		Get Request Endpoint
//	@Description	One consultation request by id.
//	@Tags			Requests
//	@Produce		json
//	@Param			id	path		string							true	"Request id"
//	@Success		200	{object}	adminsdk.ConsultationRequest	"id, name, phone, storeUrl, monthlySales, created_at"
//	@Failure		404	{object}	adminsdk.ErrorResponse			"error, error_description"
//	@Failure		500	{object}	adminsdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/api/requests/{id} [get].
func (h *RequestsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	req, err := h.RequestService.GetRequest(ctx, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeError(w, http.StatusNotFound, adminsdk.ErrorCodeNotFound, "request not found")
			return
		}
		log.Error("failed to fetch consultation request", "err", err)
		writeServerError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, consultationRequest(req))
}

// HandleDelete godoc
//
//	@Summary		Delete Request Endpoint
//	@Description	Remove a consultation request by id.
//	@Tags			Requests
//	@Produce		json
//	@Param			id	path	string	true	"Request id"
//	@Success		204	"deleted"
//	@Failure		404	{object}	adminsdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	adminsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/api/requests/{id} [delete].
func (h *RequestsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := h.RequestService.DeleteRequest(ctx, r.PathValue("id")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeError(w, http.StatusNotFound, adminsdk.ErrorCodeNotFound, "request not found")
			return
		}
		log.Error("failed to delete consultation request", "err", err)
		writeServerError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
