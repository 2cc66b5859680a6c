package blog

import (
	"context"
	"encoding/json"
	"net/http"

	blogstore "github.com/dalemusser/clubhub/internal/app/store/blog"
	"github.com/dalemusser/clubhub/internal/app/system/formutil"
	"github.com/dalemusser/clubhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/clubhub/internal/app/system/httpapi"
	"github.com/dalemusser/clubhub/internal/app/system/limits"
	"github.com/dalemusser/clubhub/internal/app/system/readtime"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// keptImage is one entry of the client-supplied existingImages list:
// the subset of already-stored images the post should keep.
type keptImage struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// HandleUpdate serves PUT /blog/{id} (multipart).
//
// Image reconciliation: the client sends existingImages, the stored
// images to keep. Everything stored but not listed is deleted from the
// media host (best effort), then any newly uploaded files are appended
// in upload order.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	oid, ok := postID(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(limits.MaxImageUploadSize); err != nil {
		httpapi.Fail(w, http.StatusBadRequest, "Invalid form data.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	store := blogstore.New(h.DB)
	post, err := store.GetByID(ctx, oid)
	if err == mongo.ErrNoDocuments {
		httpapi.Fail(w, http.StatusNotFound, "Blog post not found.")
		return
	}
	if err != nil {
		h.Log.Error("load blog post for update failed", zap.String("id", oid.Hex()), zap.Error(err))
		httpapi.Fail(w, http.StatusInternalServerError, "Failed to update blog post.")
		return
	}

	// Merge submitted fields over the stored document. Absent fields
	// keep their current values.
	if formutil.Has(r, "title") {
		post.Title = formutil.Trimmed(r, "title")
	}
	if formutil.Has(r, "content") {
		post.Content = htmlsanitize.Sanitize(formutil.Trimmed(r, "content"))
		post.ReadTime = readtime.Estimate(post.Content)
	}
	if formutil.Has(r, "excerpt") {
		post.Excerpt = formutil.Trimmed(r, "excerpt")
	}
	if formutil.Has(r, "author") {
		post.Author = formutil.Trimmed(r, "author")
	}
	if formutil.Has(r, "category") {
		post.Category = formutil.Trimmed(r, "category")
	}
	if formutil.Has(r, "tags") {
		post.Tags = formutil.StringList(r, "tags")
	}
	if formutil.Has(r, "featured") {
		post.Featured = formutil.Bool(r, "featured")
	}
	if formutil.Has(r, "published") {
		post.Published = formutil.Bool(r, "published")
	}

	if formutil.Has(r, "existingImages") {
		post.Images = h.reconcileImages(ctx, post.Images, formutil.Trimmed(r, "existingImages"))
	}
	post.Images = append(post.Images, h.uploadAll(ctx, imageHeaders(r))...)

	if err := store.Update(ctx, oid, post); err != nil {
		h.Log.Error("update blog post failed", zap.String("id", oid.Hex()), zap.Error(err))
		httpapi.Fail(w, http.StatusInternalServerError, "Failed to update blog post.")
		return
	}

	updated, err := store.GetByID(ctx, oid)
	if err != nil {
		h.Log.Error("reload blog post failed", zap.String("id", oid.Hex()), zap.Error(err))
		httpapi.Fail(w, http.StatusInternalServerError, "Failed to update blog post.")
		return
	}
	httpapi.OK(w, updated)
}

// reconcileImages keeps the stored images named in the existingImages
// JSON list and destroys the rest on the media host. Destroy failures
// are logged and do not block the update.
func (h *Handler) reconcileImages(ctx context.Context, stored []models.Image, existingJSON string) []models.Image {
	var keep []keptImage
	if existingJSON != "" {
		if err := json.Unmarshal([]byte(existingJSON), &keep); err != nil {
			h.Log.Warn("malformed existingImages list, keeping all images", zap.Error(err))
			return stored
		}
	}

	keepIDs := make(map[string]bool, len(keep))
	for _, k := range keep {
		keepIDs[k.PublicID] = true
	}

	kept := make([]models.Image, 0, len(stored))
	for _, img := range stored {
		if keepIDs[img.AssetID] {
			kept = append(kept, img)
			continue
		}
		if err := h.Media.Destroy(ctx, img.AssetID); err != nil {
			h.Log.Warn("delete removed image failed",
				zap.String("asset_id", img.AssetID), zap.Error(err))
		}
	}
	return kept
}
