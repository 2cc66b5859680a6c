// Package services implements the service offerings API.
package services

import (
	"context"
	"net/http"
	"strings"

	servicestore "github.com/dalemusser/clubhub/internal/app/store/services"
	"github.com/dalemusser/clubhub/internal/app/system/httpapi"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler holds the services feature's dependencies.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

// NewHandler constructs a services Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Log: logger}
}

// HandleList serves GET /our-service, merging the legacy and primary
// collections.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	services, err := servicestore.New(h.DB).ListMerged(ctx)
	if err != nil {
		h.Log.Error("list services failed", zap.Error(err))
		httpapi.Fail(w, http.StatusInternalServerError, "Failed to fetch services.")
		return
	}
	httpapi.OK(w, services)
}

// HandleGet serves GET /our-service/{id}.
//
// Unlike every other read endpoint, this one returns the bare document
// with no envelope. Dashboard clients depend on that shape.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	oid, ok := serviceID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	svc, err := servicestore.New(h.DB).GetByID(ctx, oid)
	if err == mongo.ErrNoDocuments {
		httpapi.Fail(w, http.StatusNotFound, "Service not found.")
		return
	}
	if err != nil {
		h.Log.Error("get service failed", zap.String("id", oid.Hex()), zap.Error(err))
		httpapi.Fail(w, http.StatusInternalServerError, "Failed to fetch service.")
		return
	}
	httpapi.Raw(w, http.StatusOK, svc)
}

// HandleCreate serves POST /our-service with a JSON body.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var svc models.Service
	if err := httpapi.Decode(r, &svc); err != nil {
		httpapi.Fail(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	var missing []string
	for _, f := range []struct{ name, value string }{
		{"title", svc.Title},
		{"description", svc.Description},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		httpapi.Fail(w, http.StatusBadRequest,
			"Missing required fields: "+strings.Join(missing, ", "))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := servicestore.New(h.DB).Create(ctx, svc)
	if err != nil {
		h.Log.Error("create service failed", zap.Error(err))
		httpapi.Fail(w, http.StatusInternalServerError, "Failed to create service.")
		return
	}
	httpapi.Created(w, created)
}

// HandleUpdate serves PUT /our-service/{id} with a JSON merge body.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	oid, ok := serviceID(w, r)
	if !ok {
		return
	}

	var in models.Service
	if err := httpapi.Decode(r, &in); err != nil {
		httpapi.Fail(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	store := servicestore.New(h.DB)
	svc, err := store.GetByID(ctx, oid)
	if err == mongo.ErrNoDocuments {
		httpapi.Fail(w, http.StatusNotFound, "Service not found.")
		return
	}
	if err != nil {
		h.Log.Error("load service for update failed", zap.String("id", oid.Hex()), zap.Error(err))
		httpapi.Fail(w, http.StatusInternalServerError, "Failed to update service.")
		return
	}

	svc = mergeService(svc, in)
	if err := store.Update(ctx, oid, svc); err != nil {
		h.Log.Error("update service failed", zap.String("id", oid.Hex()), zap.Error(err))
		httpapi.Fail(w, http.StatusInternalServerError, "Failed to update service.")
		return
	}

	updated, err := store.GetByID(ctx, oid)
	if err != nil {
		h.Log.Error("reload service failed", zap.String("id", oid.Hex()), zap.Error(err))
		httpapi.Fail(w, http.StatusInternalServerError, "Failed to update service.")
		return
	}
	httpapi.OK(w, updated)
}

// HandleDelete serves DELETE /our-service/{id}, removing the document
// from both collections.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	oid, ok := serviceID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	deleted, err := servicestore.New(h.DB).Delete(ctx, oid)
	if err != nil {
		h.Log.Error("delete service failed", zap.String("id", oid.Hex()), zap.Error(err))
		httpapi.Fail(w, http.StatusInternalServerError, "Failed to delete service.")
		return
	}
	if deleted == 0 {
		httpapi.Fail(w, http.StatusNotFound, "Service not found.")
		return
	}
	httpapi.OK(w, map[string]interface{}{"deleted": deleted})
}

func mergeService(stored, in models.Service) models.Service {
	if in.Title != "" {
		stored.Title = in.Title
	}
	if in.Description != "" {
		stored.Description = in.Description
	}
	if in.Icon != "" {
		stored.Icon = in.Icon
	}
	if in.Type != "" {
		stored.Type = in.Type
	}
	if in.PricePerHour != 0 {
		stored.PricePerHour = in.PricePerHour
	}
	if in.PricePerProject != 0 {
		stored.PricePerProject = in.PricePerProject
	}
	return stored
}

func serviceID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpapi.Fail(w, http.StatusBadRequest, "Invalid service ID.")
		return primitive.NilObjectID, false
	}
	return oid, true
}
