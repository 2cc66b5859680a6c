// Package team implements the team member API.
package team

import (
	"context"
	"net/http"

	teamstore "github.com/dalemusser/clubhub/internal/app/store/team"
	"github.com/dalemusser/clubhub/internal/app/system/httpapi"
	"github.com/dalemusser/clubhub/internal/app/system/media"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler holds the team feature's dependencies.
type Handler struct {
	DB    *mongo.Database
	Media media.Store
	Log   *zap.Logger
}

// NewHandler constructs a team Handler.
func NewHandler(db *mongo.Database, mediaStore media.Store, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Media: mediaStore, Log: logger}
}

// HandleList serves GET /team-members.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	members, err := teamstore.New(h.DB).List(ctx)
	if err != nil {
		h.Log.Error("list team members failed", zap.Error(err))
		httpapi.Fail(w, http.StatusInternalServerError, "Failed to fetch team members.")
		return
	}
	httpapi.OK(w, members)
}

// HandleGet serves GET /team-members/{id}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	oid, ok := memberID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	member, err := teamstore.New(h.DB).GetByID(ctx, oid)
	if err == mongo.ErrNoDocuments {
		httpapi.Fail(w, http.StatusNotFound, "Team member not found.")
		return
	}
	if err != nil {
		h.Log.Error("get team member failed", zap.String("id", oid.Hex()), zap.Error(err))
		httpapi.Fail(w, http.StatusInternalServerError, "Failed to fetch team member.")
		return
	}
	httpapi.OK(w, member)
}

// HandleDelete serves DELETE /team-members/{id}, destroying the avatar
// asset best effort first.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	oid, ok := memberID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	store := teamstore.New(h.DB)
	member, err := store.GetByID(ctx, oid)
	if err == mongo.ErrNoDocuments {
		httpapi.Fail(w, http.StatusNotFound, "Team member not found.")
		return
	}
	if err != nil {
		h.Log.Error("load team member for delete failed", zap.String("id", oid.Hex()), zap.Error(err))
		httpapi.Fail(w, http.StatusInternalServerError, "Failed to delete team member.")
		return
	}

	if member.Avatar != nil {
		if err := h.Media.Destroy(ctx, member.Avatar.AssetID); err != nil {
			h.Log.Warn("delete avatar failed",
				zap.String("id", oid.Hex()),
				zap.String("asset_id", member.Avatar.AssetID),
				zap.Error(err))
		}
	}

	if _, err := store.Delete(ctx, oid); err != nil {
		h.Log.Error("delete team member failed", zap.String("id", oid.Hex()), zap.Error(err))
		httpapi.Fail(w, http.StatusInternalServerError, "Failed to delete team member.")
		return
	}
	httpapi.OK(w, member)
}

func memberID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpapi.Fail(w, http.StatusBadRequest, "Invalid team member ID.")
		return primitive.NilObjectID, false
	}
	return oid, true
}
