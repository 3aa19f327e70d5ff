package http

import (
	"net/http"

	"github.com/intlakaa/backoffice/internal/admin/domain"
	"github.com/intlakaa/backoffice/pkg/adminsdk"
	"github.com/intlakaa/backoffice/pkg/httpx"
)

func adminSummary(a domain.Admin) adminsdk.AdminSummary {
	return adminsdk.AdminSummary{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		Role:      string(a.Role),
		CreatedAt: a.CreatedAt,
	}
}

func pendingInvite(inv domain.Invite) adminsdk.PendingInvite {
	return adminsdk.PendingInvite{
		ID:        inv.ID,
		Email:     inv.Email,
		ExpiresAt: inv.ExpiresAt,
		CreatedAt: inv.CreatedAt,
	}
}

func writeError(w http.ResponseWriter, status int, code, desc string) {
	httpx.WriteJSON(w, status, adminsdk.ErrorResponse{
		Error:            code,
		ErrorDescription: desc,
	})
}

func writeServerError(w http.ResponseWriter) {
	writeError(w, http.StatusInternalServerError, adminsdk.ErrorCodeServerError, "internal server error")
}

func writeBadJSON(w http.ResponseWriter) {
	writeError(w, http.StatusBadRequest, adminsdk.ErrorCodeInvalidRequest, "Invalid JSON body")
}
