package tickets

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/clubhub/internal/app/system/httpapi"
	"github.com/dalemusser/clubhub/internal/app/system/sheets"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// verifyResponse is the wire shape for POST /verify-ticket. Clients key
// off the registered flag, so this endpoint skips the envelope.
type verifyResponse struct {
	Registered   bool   `json:"registered"`
	Name         string `json:"name,omitempty"`
	Email        string `json:"email,omitempty"`
	TicketNumber string `json:"ticketNumber,omitempty"`
	Message      string `json:"message"`
}

// HandleVerify serves POST /verify-ticket. The trimmed input must
// equal the sheet cell exactly; the cell itself is not trimmed, so a
// padded cell never matches.
func (h *Handler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	var in struct {
		NationalID string `json:"nationalID"`
	}
	if err := httpapi.Decode(r, &in); err != nil {
		httpapi.Fail(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	nationalID := strings.TrimSpace(in.NationalID)
	if nationalID == "" {
		httpapi.Fail(w, http.StatusBadRequest, "National ID is required.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Batch())
	defer cancel()

	rows, err := h.Source.Rows(ctx)
	if err != nil {
		h.Log.Error("load sheet rows failed", zap.Error(err))
		httpapi.Fail(w, http.StatusInternalServerError, "Failed to load registration data.")
		return
	}

	if len(rows) > 1 {
		for _, row := range rows[1:] {
			if len(row) <= sheets.NationalIDColumn {
				continue
			}
			if row[sheets.NationalIDColumn] != nationalID {
				continue
			}
			resp := verifyResponse{
				Registered: true,
				Message:    "Ticket verified. Welcome!",
			}
			resp.Name = cell(row, 0)
			resp.Email = cell(row, 1)
			resp.TicketNumber = cell(row, 4)
			httpapi.Raw(w, http.StatusOK, resp)
			return
		}
	}

	httpapi.Raw(w, http.StatusNotFound, verifyResponse{
		Registered: false,
		Message:    "No registration found for this national ID.",
	})
}

func cell(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}
