// Package projects implements the project portfolio API.
package projects

import (
	"context"
	"net/http"

	projectstore "github.com/dalemusser/clubhub/internal/app/store/projects"
	"github.com/dalemusser/clubhub/internal/app/system/httpapi"
	"github.com/dalemusser/clubhub/internal/app/system/media"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler holds the projects feature's dependencies.
type Handler struct {
	DB    *mongo.Database
	Media media.Store
	Log   *zap.Logger
}

// NewHandler constructs a projects Handler.
func NewHandler(db *mongo.Database, mediaStore media.Store, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Media: mediaStore, Log: logger}
}

// HandleList serves GET /projects.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	projects, err := projectstore.New(h.DB).List(ctx)
	if err != nil {
		h.Log.Error("list projects failed", zap.Error(err))
		httpapi.Fail(w, http.StatusInternalServerError, "Failed to fetch projects.")
		return
	}
	httpapi.OK(w, projects)
}

// HandleGet serves GET /projects/{id}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	oid, ok := projectID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	project, err := projectstore.New(h.DB).GetByID(ctx, oid)
	if err == mongo.ErrNoDocuments {
		httpapi.Fail(w, http.StatusNotFound, "Project not found.")
		return
	}
	if err != nil {
		h.Log.Error("get project failed", zap.String("id", oid.Hex()), zap.Error(err))
		httpapi.Fail(w, http.StatusInternalServerError, "Failed to fetch project.")
		return
	}
	httpapi.OK(w, project)
}

// HandleDelete serves DELETE /projects/{id}. The project image, if any,
// is destroyed on the media host best effort before the document goes.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	oid, ok := projectID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	store := projectstore.New(h.DB)
	project, err := store.GetByID(ctx, oid)
	if err == mongo.ErrNoDocuments {
		httpapi.Fail(w, http.StatusNotFound, "Project not found.")
		return
	}
	if err != nil {
		h.Log.Error("load project for delete failed", zap.String("id", oid.Hex()), zap.Error(err))
		httpapi.Fail(w, http.StatusInternalServerError, "Failed to delete project.")
		return
	}

	if project.Image != nil {
		if err := h.Media.Destroy(ctx, project.Image.AssetID); err != nil {
			h.Log.Warn("delete project image failed",
				zap.String("id", oid.Hex()),
				zap.String("asset_id", project.Image.AssetID),
				zap.Error(err))
		}
	}

	if _, err := store.Delete(ctx, oid); err != nil {
		h.Log.Error("delete project failed", zap.String("id", oid.Hex()), zap.Error(err))
		httpapi.Fail(w, http.StatusInternalServerError, "Failed to delete project.")
		return
	}
	httpapi.OK(w, project)
}

func projectID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpapi.Fail(w, http.StatusBadRequest, "Invalid project ID.")
		return primitive.NilObjectID, false
	}
	return oid, true
}
