package events

import (
	"context"
	"net/http"

	eventstore "github.com/dalemusser/clubhub/internal/app/store/events"
	"github.com/dalemusser/clubhub/internal/app/system/formutil"
	"github.com/dalemusser/clubhub/internal/app/system/httpapi"
	"github.com/dalemusser/clubhub/internal/app/system/limits"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandleUpdate serves PUT /events/{id}. A replacement "image" file
// uploads the new asset first, then destroys the old one best effort.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
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
		h.Log.Error("load event for update failed", zap.String("id", oid.Hex()), zap.Error(err))
		httpapi.Fail(w, http.StatusInternalServerError, "Failed to update event.")
		return
	}

	if isMultipart(r) {
		if err := r.ParseMultipartForm(limits.MaxImageUploadSize); err != nil {
			httpapi.Fail(w, http.StatusBadRequest, "Invalid form data.")
			return
		}
		if formutil.Has(r, "title") {
			event.Title = formutil.Trimmed(r, "title")
		}
		if formutil.Has(r, "description") {
			event.Description = formutil.Trimmed(r, "description")
		}
		if formutil.Has(r, "date") {
			event.Date = formutil.Trimmed(r, "date")
		}
		if formutil.Has(r, "location") {
			event.Location = formutil.Trimmed(r, "location")
		}
		if formutil.Has(r, "type") {
			event.Type = formutil.Trimmed(r, "type")
		}
		if formutil.Has(r, "status") {
			event.Status = formutil.Trimmed(r, "status")
		}
		if formutil.Has(r, "registrationLink") {
			event.RegistrationLink = formutil.Trimmed(r, "registrationLink")
		}
		if formutil.Has(r, "attendees") {
			event.AttendeeIDs = attendeeIDs(formutil.StringList(r, "attendees"))
		}

		if img, ok := h.uploadImage(ctx, r); ok {
			old := event.Image
			event.Image = &img
			if old != nil {
				if err := h.Media.Destroy(ctx, old.AssetID); err != nil {
					h.Log.Warn("delete replaced event image failed",
						zap.String("asset_id", old.AssetID), zap.Error(err))
				}
			}
		}
	} else {
		var in eventInput
		if err := httpapi.Decode(r, &in); err != nil {
			httpapi.Fail(w, http.StatusBadRequest, "Invalid request body.")
			return
		}
		event = mergeEvent(event, in)
	}

	if err := store.Update(ctx, oid, event); err != nil {
		h.Log.Error("update event failed", zap.String("id", oid.Hex()), zap.Error(err))
		httpapi.Fail(w, http.StatusInternalServerError, "Failed to update event.")
		return
	}

	updated, err := store.GetByID(ctx, oid)
	if err != nil {
		h.Log.Error("reload event failed", zap.String("id", oid.Hex()), zap.Error(err))
		httpapi.Fail(w, http.StatusInternalServerError, "Failed to update event.")
		return
	}
	updated.Attendees = h.resolveAttendees(ctx, updated.AttendeeIDs)
	httpapi.OK(w, updated)
}

// mergeEvent overlays non-zero JSON fields onto the stored event.
// Image changes go through the multipart path only.
func mergeEvent(stored models.Event, in eventInput) models.Event {
	if in.Title != "" {
		stored.Title = in.Title
	}
	if in.Description != "" {
		stored.Description = in.Description
	}
	if in.Date != "" {
		stored.Date = in.Date
	}
	if in.Location != "" {
		stored.Location = in.Location
	}
	if in.Type != "" {
		stored.Type = in.Type
	}
	if in.Status != "" {
		stored.Status = in.Status
	}
	if in.RegistrationLink != "" {
		stored.RegistrationLink = in.RegistrationLink
	}
	if in.Attendees != nil {
		stored.AttendeeIDs = attendeeIDs(in.Attendees)
	}
	return stored
}
