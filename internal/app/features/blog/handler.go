// Package blog implements the blog post API: public listing and reads,
// and the admin dashboard's create/update/delete with image uploads.
package blog

import (
	"context"
	"net/http"

	blogstore "github.com/dalemusser/clubhub/internal/app/store/blog"
	"github.com/dalemusser/clubhub/internal/app/system/httpapi"
	"github.com/dalemusser/clubhub/internal/app/system/media"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler holds the blog feature's dependencies.
type Handler struct {
	DB    *mongo.Database
	Media media.Store
	Log   *zap.Logger
}

// NewHandler constructs a blog Handler.
func NewHandler(db *mongo.Database, mediaStore media.Store, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Media: mediaStore, Log: logger}
}

// HandleList serves GET /blog: every post, newest first.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	posts, err := blogstore.New(h.DB).List(ctx)
	if err != nil {
		h.Log.Error("list blog posts failed", zap.Error(err))
		httpapi.Fail(w, http.StatusInternalServerError, "Failed to fetch blog posts.")
		return
	}
	httpapi.OK(w, posts)
}

// HandleGet serves GET /blog/{id}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	oid, ok := postID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	post, err := blogstore.New(h.DB).GetByID(ctx, oid)
	if err == mongo.ErrNoDocuments {
		httpapi.Fail(w, http.StatusNotFound, "Blog post not found.")
		return
	}
	if err != nil {
		h.Log.Error("get blog post failed", zap.String("id", oid.Hex()), zap.Error(err))
		httpapi.Fail(w, http.StatusInternalServerError, "Failed to fetch blog post.")
		return
	}
	httpapi.OK(w, post)
}

// postID validates the {id} URL parameter, writing a 400 response and
// returning ok=false when it is not a well-formed document key.
func postID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpapi.Fail(w, http.StatusBadRequest, "Invalid blog post ID.")
		return primitive.NilObjectID, false
	}
	return oid, true
}
