package tickets

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	ticketstore "github.com/dalemusser/clubhub/internal/app/store/tickets"
	"github.com/dalemusser/clubhub/internal/app/system/httpapi"
	"github.com/dalemusser/clubhub/internal/app/system/sheets"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"go.uber.org/zap"
)

// HandleImport serves POST /import/excel, snapshotting the sheet into
// the tickets collection. The required-column check runs against the
// first data record; a failure inserts nothing.
func (h *Handler) HandleImport(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Batch())
	defer cancel()

	rows, err := h.Source.Rows(ctx)
	if err != nil {
		h.Log.Error("load sheet rows failed", zap.Error(err))
		httpapi.Fail(w, http.StatusInternalServerError, "Failed to load spreadsheet data.")
		return
	}

	records := sheets.Zip(rows)
	if len(records) == 0 {
		httpapi.Fail(w, http.StatusBadRequest, "Spreadsheet has no data rows.")
		return
	}
	if missing := sheets.Missing(records[0]); len(missing) > 0 {
		httpapi.Fail(w, http.StatusBadRequest,
			"Spreadsheet is missing required columns: "+strings.Join(missing, ", "))
		return
	}

	tickets := make([]models.Ticket, 0, len(records))
	for _, rec := range records {
		tickets = append(tickets, recordToTicket(rec))
	}

	count, err := ticketstore.New(h.DB).InsertMany(ctx, tickets)
	if err != nil {
		h.Log.Error("insert tickets failed", zap.Error(err))
		httpapi.Fail(w, http.StatusInternalServerError, "Failed to import tickets.")
		return
	}

	h.Log.Info("imported tickets", zap.Int("count", count))
	httpapi.Raw(w, http.StatusOK, map[string]interface{}{
		"success":       true,
		"importedCount": count,
		"message":       fmt.Sprintf("Imported %d tickets.", count),
	})
}
