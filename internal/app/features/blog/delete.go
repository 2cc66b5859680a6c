package blog

import (
	"context"
	"net/http"

	blogstore "github.com/dalemusser/clubhub/internal/app/store/blog"
	"github.com/dalemusser/clubhub/internal/app/system/httpapi"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandleDelete serves DELETE /blog/{id}.
//
// Image assets are destroyed first, best effort: a media host failure
// is logged and the document is deleted anyway.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	oid, ok := postID(w, r)
	if !ok {
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
		h.Log.Error("load blog post for delete failed", zap.String("id", oid.Hex()), zap.Error(err))
		httpapi.Fail(w, http.StatusInternalServerError, "Failed to delete blog post.")
		return
	}

	for _, img := range post.Images {
		if err := h.Media.Destroy(ctx, img.AssetID); err != nil {
			h.Log.Warn("delete blog image failed",
				zap.String("id", oid.Hex()),
				zap.String("asset_id", img.AssetID),
				zap.Error(err))
		}
	}

	if _, err := store.Delete(ctx, oid); err != nil {
		h.Log.Error("delete blog post failed", zap.String("id", oid.Hex()), zap.Error(err))
		httpapi.Fail(w, http.StatusInternalServerError, "Failed to delete blog post.")
		return
	}
	httpapi.OK(w, post)
}
