package tickets

import (
	"context"
	"net/http"
	"time"

	ticketstore "github.com/dalemusser/clubhub/internal/app/store/tickets"
	"github.com/dalemusser/clubhub/internal/app/system/httpapi"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"go.uber.org/zap"
)

// HandleSheetData serves GET /sheet-data, returning the imported ticket
// snapshot from Mongo (not the live sheet). Like /verify-ticket, the
// response is a bare object with no envelope.
func (h *Handler) HandleSheetData(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := ticketstore.New(h.DB)
	tickets, err := store.List(ctx)
	if err != nil {
		h.Log.Error("list tickets failed", zap.Error(err))
		httpapi.Fail(w, http.StatusInternalServerError, "Failed to fetch ticket data.")
		return
	}
	if tickets == nil {
		tickets = []models.Ticket{}
	}

	var lastUpdated *time.Time
	if len(tickets) > 0 {
		lastUpdated = &tickets[0].CreatedAt
	}

	httpapi.Raw(w, http.StatusOK, map[string]interface{}{
		"tickets":     tickets,
		"count":       len(tickets),
		"lastUpdated": lastUpdated,
	})
}
