package team

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	teamstore "github.com/dalemusser/clubhub/internal/app/store/team"
	"github.com/dalemusser/clubhub/internal/app/system/formutil"
	"github.com/dalemusser/clubhub/internal/app/system/httpapi"
	"github.com/dalemusser/clubhub/internal/app/system/limits"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"go.uber.org/zap"
)

// HandleCreate serves POST /team-members. The body is either JSON or a
// multipart form carrying an optional "avatar" file. socialLinks comes
// as a JSON object string in the multipart case.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var member models.TeamMember

	if isMultipart(r) {
		if err := r.ParseMultipartForm(limits.MaxImageUploadSize); err != nil {
			httpapi.Fail(w, http.StatusBadRequest, "Invalid form data.")
			return
		}
		member = models.TeamMember{
			Name:        formutil.Trimmed(r, "name"),
			Email:       formutil.Trimmed(r, "email"),
			Role:        formutil.Trimmed(r, "role"),
			Status:      formutil.Trimmed(r, "status"),
			Skills:      formutil.StringList(r, "skills"),
			Bio:         formutil.Trimmed(r, "bio"),
			SocialLinks: socialLinks(r),
		}
	} else if err := httpapi.Decode(r, &member); err != nil {
		httpapi.Fail(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	var missing []string
	for _, f := range []struct{ name, value string }{
		{"name", member.Name},
		{"email", member.Email},
		{"role", member.Role},
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

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if img, ok := h.uploadAvatar(ctx, r); ok {
		member.Avatar = &img
	}

	created, err := teamstore.New(h.DB).Create(ctx, member)
	if err != nil {
		h.Log.Error("create team member failed", zap.Error(err))
		httpapi.Fail(w, http.StatusInternalServerError, "Failed to create team member.")
		return
	}
	httpapi.Created(w, created)
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

func socialLinks(r *http.Request) models.SocialLinks {
	var links models.SocialLinks
	if raw := formutil.Trimmed(r, "socialLinks"); raw != "" {
		_ = json.Unmarshal([]byte(raw), &links)
	}
	return links
}

// uploadAvatar uploads the "avatar" file if one was submitted. A failed
// upload is logged and the member is saved without an avatar.
func (h *Handler) uploadAvatar(ctx context.Context, r *http.Request) (models.Image, bool) {
	if r.MultipartForm == nil {
		return models.Image{}, false
	}
	headers := r.MultipartForm.File["avatar"]
	if len(headers) == 0 {
		return models.Image{}, false
	}
	hdr := headers[0]

	file, err := hdr.Open()
	if err != nil {
		h.Log.Warn("open uploaded avatar failed", zap.String("filename", hdr.Filename), zap.Error(err))
		return models.Image{}, false
	}
	defer file.Close()

	img, err := h.Media.Upload(ctx, file, hdr.Filename)
	if err != nil {
		h.Log.Warn("avatar upload failed", zap.String("filename", hdr.Filename), zap.Error(err))
		return models.Image{}, false
	}
	return img, true
}
