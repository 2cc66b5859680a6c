package blog

import (
	"context"
	"mime/multipart"
	"net/http"
	"strings"

	blogstore "github.com/dalemusser/clubhub/internal/app/store/blog"
	"github.com/dalemusser/clubhub/internal/app/system/formutil"
	"github.com/dalemusser/clubhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/clubhub/internal/app/system/httpapi"
	"github.com/dalemusser/clubhub/internal/app/system/limits"
	"github.com/dalemusser/clubhub/internal/app/system/readtime"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"go.uber.org/zap"
)

// requiredFields for creating a post. Tags, flags, and images are optional.
var requiredFields = []string{"title", "content", "excerpt", "author", "category"}

// HandleCreate serves POST /blog (multipart: text fields plus images[]).
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(limits.MaxImageUploadSize); err != nil {
		httpapi.Fail(w, http.StatusBadRequest, "Invalid form data.")
		return
	}

	if missing := formutil.MissingValues(r, requiredFields...); len(missing) > 0 {
		httpapi.Fail(w, http.StatusBadRequest,
			"Missing required fields: "+strings.Join(missing, ", "))
		return
	}

	content := htmlsanitize.Sanitize(formutil.Trimmed(r, "content"))

	post := models.BlogPost{
		Title:     formutil.Trimmed(r, "title"),
		Content:   content,
		Excerpt:   formutil.Trimmed(r, "excerpt"),
		Author:    formutil.Trimmed(r, "author"),
		Category:  formutil.Trimmed(r, "category"),
		Tags:      formutil.StringList(r, "tags"),
		Featured:  formutil.Bool(r, "featured"),
		Published: formutil.Bool(r, "published"),
		ReadTime:  readtime.Estimate(content),
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	post.Images = h.uploadAll(ctx, imageHeaders(r))

	created, err := blogstore.New(h.DB).Create(ctx, post)
	if err != nil {
		h.Log.Error("create blog post failed", zap.Error(err))
		httpapi.Fail(w, http.StatusInternalServerError, "Failed to create blog post.")
		return
	}
	httpapi.Created(w, created)
}

// imageHeaders returns the uploaded files under the images[] form key.
func imageHeaders(r *http.Request) []*multipart.FileHeader {
	if r.MultipartForm == nil {
		return nil
	}
	if files, ok := r.MultipartForm.File["images"]; ok {
		return files
	}
	return r.MultipartForm.File["images[]"]
}

// uploadAll sends each file to the media host in order. A failing
// upload is logged and skipped; the rest of the batch continues.
func (h *Handler) uploadAll(ctx context.Context, headers []*multipart.FileHeader) []models.Image {
	images := make([]models.Image, 0, len(headers))
	for _, hdr := range headers {
		file, err := hdr.Open()
		if err != nil {
			h.Log.Warn("open uploaded image failed",
				zap.String("filename", hdr.Filename), zap.Error(err))
			continue
		}
		img, err := h.Media.Upload(ctx, file, hdr.Filename)
		file.Close()
		if err != nil {
			h.Log.Warn("image upload failed",
				zap.String("filename", hdr.Filename), zap.Error(err))
			continue
		}
		images = append(images, img)
	}
	return images
}
