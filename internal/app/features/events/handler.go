// Package events implements the events API. Attendee references are
// resolved into full team member documents on every read.
package events

import (
	"context"
	"net/http"

	eventstore "github.com/dalemusser/clubhub/internal/app/store/events"
	teamstore "github.com/dalemusser/clubhub/internal/app/store/team"
	"github.com/dalemusser/clubhub/internal/app/system/httpapi"
	"github.com/dalemusser/clubhub/internal/app/system/media"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler holds the events feature's dependencies.
type Handler struct {
	DB    *mongo.Database
	Media media.Store
	Log   *zap.Logger
}

// NewHandler constructs an events Handler.
func NewHandler(db *mongo.Database, mediaStore media.Store, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Media: mediaStore, Log: logger}
}

// HandleList serves GET /events with attendees resolved.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	events, err := eventstore.New(h.DB).List(ctx)
	if err != nil {
		h.Log.Error("list events failed", zap.Error(err))
		httpapi.Fail(w, http.StatusInternalServerError, "Failed to fetch events.")
		return
	}
	for i := range events {
		events[i].Attendees = h.resolveAttendees(ctx, events[i].AttendeeIDs)
	}
	httpapi.OK(w, events)
}

// HandleGet serves GET /events/{id} with attendees resolved.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	oid, ok := eventID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	event, err := eventstore.New(h.DB).GetByID(ctx, oid)
	if err == mongo.ErrNoDocuments {
		httpapi.Fail(w, http.StatusNotFound, "Event not found.")
		return
	}
	if err != nil {
		h.Log.Error("get event failed", zap.String("id", oid.Hex()), zap.Error(err))
		httpapi.Fail(w, http.StatusInternalServerError, "Failed to fetch event.")
		return
	}
	event.Attendees = h.resolveAttendees(ctx, event.AttendeeIDs)
	httpapi.OK(w, event)
}

// HandleDelete serves DELETE /events/{id}, destroying the image asset
// best effort first.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	oid, ok := eventID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	store := eventstore.New(h.DB)
	event, err := store.GetByID(ctx, oid)
	if err == mongo.ErrNoDocuments {
		httpapi.Fail(w, http.StatusNotFound, "Event not found.")
		return
	}
	if err != nil {
		h.Log.Error("load event for delete failed", zap.String("id", oid.Hex()), zap.Error(err))
		httpapi.Fail(w, http.StatusInternalServerError, "Failed to delete event.")
		return
	}

	if event.Image != nil {
		if err := h.Media.Destroy(ctx, event.Image.AssetID); err != nil {
			h.Log.Warn("delete event image failed",
				zap.String("id", oid.Hex()),
				zap.String("asset_id", event.Image.AssetID),
				zap.Error(err))
		}
	}

	if _, err := store.Delete(ctx, oid); err != nil {
		h.Log.Error("delete event failed", zap.String("id", oid.Hex()), zap.Error(err))
		httpapi.Fail(w, http.StatusInternalServerError, "Failed to delete event.")
		return
	}
	httpapi.OK(w, event)
}

// resolveAttendees loads the referenced team members. A lookup failure
// is logged and the event is returned with an empty attendee list
// rather than failing the whole request.
func (h *Handler) resolveAttendees(ctx context.Context, ids []primitive.ObjectID) []models.TeamMember {
	if len(ids) == 0 {
		return []models.TeamMember{}
	}
	members, err := teamstore.New(h.DB).GetByIDs(ctx, ids)
	if err != nil {
		h.Log.Warn("resolve attendees failed", zap.Error(err))
		return []models.TeamMember{}
	}
	if members == nil {
		return []models.TeamMember{}
	}
	return members
}

func eventID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpapi.Fail(w, http.StatusBadRequest, "Invalid event ID.")
		return primitive.NilObjectID, false
	}
	return oid, true
}
