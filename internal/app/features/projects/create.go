package projects

import (
	"context"
	"net/http"
	"strings"

	projectstore "github.com/dalemusser/clubhub/internal/app/store/projects"
	"github.com/dalemusser/clubhub/internal/app/system/formutil"
	"github.com/dalemusser/clubhub/internal/app/system/httpapi"
	"github.com/dalemusser/clubhub/internal/app/system/limits"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"go.uber.org/zap"
)

// HandleCreate serves POST /projects. The body is either JSON or a
// multipart form carrying an optional "image" file.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var project models.Project

	if isMultipart(r) {
		if err := r.ParseMultipartForm(limits.MaxImageUploadSize); err != nil {
			httpapi.Fail(w, http.StatusBadRequest, "Invalid form data.")
			return
		}
		project = models.Project{
			Name:         formutil.Trimmed(r, "name"),
			Description:  formutil.Trimmed(r, "description"),
			Status:       formutil.Trimmed(r, "status"),
			Progress:     formutil.Int(r, "progress"),
			Technologies: formutil.StringList(r, "technologies"),
			StartDate:    formutil.Trimmed(r, "startDate"),
			EndDate:      formutil.Trimmed(r, "endDate"),
			GithubURL:    formutil.Trimmed(r, "githubUrl"),
			LiveURL:      formutil.Trimmed(r, "liveUrl"),
		}
	} else if err := httpapi.Decode(r, &project); err != nil {
		httpapi.Fail(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	var missing []string
	if strings.TrimSpace(project.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(project.Description) == "" {
		missing = append(missing, "description")
	}
	if len(missing) > 0 {
		httpapi.Fail(w, http.StatusBadRequest,
			"Missing required fields: "+strings.Join(missing, ", "))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if img, ok := h.uploadFormImage(ctx, r, "image"); ok {
		project.Image = &img
	}

	created, err := projectstore.New(h.DB).Create(ctx, project)
	if err != nil {
		h.Log.Error("create project failed", zap.Error(err))
		httpapi.Fail(w, http.StatusInternalServerError, "Failed to create project.")
		return
	}
	httpapi.Created(w, created)
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

// uploadFormImage uploads the single file under the given form key, if
// present. A failed upload aborts this request's asset only: it is
// logged and reported as absent, and the document write proceeds.
func (h *Handler) uploadFormImage(ctx context.Context, r *http.Request, key string) (models.Image, bool) {
	if r.MultipartForm == nil {
		return models.Image{}, false
	}
	headers := r.MultipartForm.File[key]
	if len(headers) == 0 {
		return models.Image{}, false
	}
	hdr := headers[0]

	file, err := hdr.Open()
	if err != nil {
		h.Log.Warn("open uploaded image failed", zap.String("filename", hdr.Filename), zap.Error(err))
		return models.Image{}, false
	}
	defer file.Close()

	img, err := h.Media.Upload(ctx, file, hdr.Filename)
	if err != nil {
		h.Log.Warn("image upload failed", zap.String("filename", hdr.Filename), zap.Error(err))
		return models.Image{}, false
	}
	return img, true
}
