// Package tickets implements ticket verification and spreadsheet import.
//
// Verification reads the live spreadsheet on every request; import
// snapshots the sheet into Mongo. The sheet stays the source of truth
// for verification even after an import.
package tickets

import (
	"context"

	"github.com/dalemusser/clubhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// RowSource yields spreadsheet rows, header first.
type RowSource interface {
	Rows(ctx context.Context) ([][]string, error)
}

// Handler holds the tickets feature's dependencies.
type Handler struct {
	DB     *mongo.Database
	Source RowSource
	Log    *zap.Logger
}

// NewHandler constructs a tickets Handler.
func NewHandler(db *mongo.Database, source RowSource, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Source: source, Log: logger}
}

func recordToTicket(rec map[string]string) models.Ticket {
	return models.Ticket{
		NationalID:   rec["nationalID"],
		Name:         rec["name"],
		Email:        rec["email"],
		Phone:        rec["phone"],
		TicketNumber: rec["ticketNumber"],
	}
}
