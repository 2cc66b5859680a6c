package projects

import (
	"context"
	"net/http"

	projectstore "github.com/dalemusser/clubhub/internal/app/store/projects"
	"github.com/dalemusser/clubhub/internal/app/system/formutil"
	"github.com/dalemusser/clubhub/internal/app/system/httpapi"
	"github.com/dalemusser/clubhub/internal/app/system/limits"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandleUpdate serves PUT /projects/{id}.
//
// A multipart body carrying a replacement "image" file uploads the new
// asset first, then destroys the old one best effort.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
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
		h.Log.Error("load project for update failed", zap.String("id", oid.Hex()), zap.Error(err))
		httpapi.Fail(w, http.StatusInternalServerError, "Failed to update project.")
		return
	}

	if isMultipart(r) {
		if err := r.ParseMultipartForm(limits.MaxImageUploadSize); err != nil {
			httpapi.Fail(w, http.StatusBadRequest, "Invalid form data.")
			return
		}
		mergeFormFields(r, &project)

		if img, ok := h.uploadFormImage(ctx, r, "image"); ok {
			old := project.Image
			project.Image = &img
			if old != nil {
				if err := h.Media.Destroy(ctx, old.AssetID); err != nil {
					h.Log.Warn("delete replaced project image failed",
						zap.String("asset_id", old.AssetID), zap.Error(err))
				}
			}
		}
	} else {
		var in models.Project
		if err := httpapi.Decode(r, &in); err != nil {
			httpapi.Fail(w, http.StatusBadRequest, "Invalid request body.")
			return
		}
		in.Image = project.Image // image changes go through multipart
		project = mergeProject(project, in)
	}

	if err := store.Update(ctx, oid, project); err != nil {
		h.Log.Error("update project failed", zap.String("id", oid.Hex()), zap.Error(err))
		httpapi.Fail(w, http.StatusInternalServerError, "Failed to update project.")
		return
	}

	updated, err := store.GetByID(ctx, oid)
	if err != nil {
		h.Log.Error("reload project failed", zap.String("id", oid.Hex()), zap.Error(err))
		httpapi.Fail(w, http.StatusInternalServerError, "Failed to update project.")
		return
	}
	httpapi.OK(w, updated)
}

// mergeFormFields overlays submitted multipart fields onto the stored
// project. Absent fields keep their current values.
func mergeFormFields(r *http.Request, project *models.Project) {
	if formutil.Has(r, "name") {
		project.Name = formutil.Trimmed(r, "name")
	}
	if formutil.Has(r, "description") {
		project.Description = formutil.Trimmed(r, "description")
	}
	if formutil.Has(r, "status") {
		project.Status = formutil.Trimmed(r, "status")
	}
	if formutil.Has(r, "progress") {
		project.Progress = formutil.Int(r, "progress")
	}
	if formutil.Has(r, "technologies") {
		project.Technologies = formutil.StringList(r, "technologies")
	}
	if formutil.Has(r, "startDate") {
		project.StartDate = formutil.Trimmed(r, "startDate")
	}
	if formutil.Has(r, "endDate") {
		project.EndDate = formutil.Trimmed(r, "endDate")
	}
	if formutil.Has(r, "githubUrl") {
		project.GithubURL = formutil.Trimmed(r, "githubUrl")
	}
	if formutil.Has(r, "liveUrl") {
		project.LiveURL = formutil.Trimmed(r, "liveUrl")
	}
}

// mergeProject overlays non-zero JSON fields onto the stored project.
func mergeProject(stored, in models.Project) models.Project {
	if in.Name != "" {
		stored.Name = in.Name
	}
	if in.Description != "" {
		stored.Description = in.Description
	}
	if in.Status != "" {
		stored.Status = in.Status
	}
	if in.Progress != 0 {
		stored.Progress = in.Progress
	}
	if in.Technologies != nil {
		stored.Technologies = in.Technologies
	}
	if in.StartDate != "" {
		stored.StartDate = in.StartDate
	}
	if in.EndDate != "" {
		stored.EndDate = in.EndDate
	}
	if in.GithubURL != "" {
		stored.GithubURL = in.GithubURL
	}
	if in.LiveURL != "" {
		stored.LiveURL = in.LiveURL
	}
	return stored
}
