// Package join implements the membership application API. Submission is
// public; the list and review endpoints back the admin dashboard.
package join

import (
	"context"
	"net/http"
	"strings"

	applicationstore "github.com/dalemusser/clubhub/internal/app/store/applications"
	"github.com/dalemusser/clubhub/internal/app/system/httpapi"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler holds the join feature's dependencies.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

// NewHandler constructs a join Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Log: logger}
}

// HandleSubmit serves POST /join. One application per email; a repeat
// submission is rejected before insert.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var app models.JoinApplication
	if err := httpapi.Decode(r, &app); err != nil {
		httpapi.Fail(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	var missing []string
	for _, f := range []struct{ name, value string }{
		{"fullName", app.FullName},
		{"email", app.Email},
		{"phone", app.Phone},
		{"specializedIn", app.SpecializedIn},
		{"year", app.Year},
		{"major", app.Major},
		{"specialization", app.Specialization},
		{"experience", app.Experience},
		{"motivation", app.Motivation},
		{"availability", app.Availability},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if !app.AgreeTerms {
		missing = append(missing, "agreeTerms")
	}
	if len(missing) > 0 {
		httpapi.Fail(w, http.StatusBadRequest,
			"Missing required fields: "+strings.Join(missing, ", "))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := applicationstore.New(h.DB)
	exists, err := store.ExistsByEmail(ctx, app.Email)
	if err != nil {
		h.Log.Error("check existing application failed", zap.String("email", app.Email), zap.Error(err))
		httpapi.Fail(w, http.StatusInternalServerError, "Failed to submit application.")
		return
	}
	if exists {
		httpapi.Fail(w, http.StatusBadRequest, "You have already applied with this email.")
		return
	}

	created, err := store.Create(ctx, app)
	if err != nil {
		h.Log.Error("create application failed", zap.Error(err))
		httpapi.Fail(w, http.StatusInternalServerError, "Failed to submit application.")
		return
	}
	httpapi.Created(w, created)
}

// HandleList serves GET /join, oldest first.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	apps, err := applicationstore.New(h.DB).List(ctx)
	if err != nil {
		h.Log.Error("list applications failed", zap.Error(err))
		httpapi.Fail(w, http.StatusInternalServerError, "Failed to fetch applications.")
		return
	}
	httpapi.OK(w, apps)
}

// HandleGet serves GET /join/{id}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	oid, ok := applicationID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	app, err := applicationstore.New(h.DB).GetByID(ctx, oid)
	if err == mongo.ErrNoDocuments {
		httpapi.Fail(w, http.StatusNotFound, "Application not found.")
		return
	}
	if err != nil {
		h.Log.Error("get application failed", zap.String("id", oid.Hex()), zap.Error(err))
		httpapi.Fail(w, http.StatusInternalServerError, "Failed to fetch application.")
		return
	}
	httpapi.OK(w, app)
}

// HandleUpdateStatus serves PUT /join/{id}/status.
func (h *Handler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	oid, ok := applicationID(w, r)
	if !ok {
		return
	}

	var in struct {
		Status string `json:"status"`
	}
	if err := httpapi.Decode(r, &in); err != nil {
		httpapi.Fail(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	switch in.Status {
	case models.ApplicationPending, models.ApplicationAccepted, models.ApplicationRejected:
	default:
		httpapi.Fail(w, http.StatusBadRequest,
			"Status must be one of: pending, accepted, rejected.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	store := applicationstore.New(h.DB)
	if _, err := store.GetByID(ctx, oid); err == mongo.ErrNoDocuments {
		httpapi.Fail(w, http.StatusNotFound, "Application not found.")
		return
	} else if err != nil {
		h.Log.Error("load application failed", zap.String("id", oid.Hex()), zap.Error(err))
		httpapi.Fail(w, http.StatusInternalServerError, "Failed to update application.")
		return
	}

	if err := store.UpdateStatus(ctx, oid, in.Status); err != nil {
		h.Log.Error("update application status failed", zap.String("id", oid.Hex()), zap.Error(err))
		httpapi.Fail(w, http.StatusInternalServerError, "Failed to update application.")
		return
	}

	updated, err := store.GetByID(ctx, oid)
	if err != nil {
		h.Log.Error("reload application failed", zap.String("id", oid.Hex()), zap.Error(err))
		httpapi.Fail(w, http.StatusInternalServerError, "Failed to update application.")
		return
	}
	httpapi.OK(w, updated)
}

// HandleDelete serves DELETE /join/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	oid, ok := applicationID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	deleted, err := applicationstore.New(h.DB).Delete(ctx, oid)
	if err != nil {
		h.Log.Error("delete application failed", zap.String("id", oid.Hex()), zap.Error(err))
		httpapi.Fail(w, http.StatusInternalServerError, "Failed to delete application.")
		return
	}
	if deleted == 0 {
		httpapi.Fail(w, http.StatusNotFound, "Application not found.")
		return
	}
	httpapi.OK(w, map[string]interface{}{"deleted": deleted})
}

func applicationID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpapi.Fail(w, http.StatusBadRequest, "Invalid application ID.")
		return primitive.NilObjectID, false
	}
	return oid, true
}
