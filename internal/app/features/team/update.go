package team

import (
	"context"
	"net/http"

	teamstore "github.com/dalemusser/clubhub/internal/app/store/team"
	"github.com/dalemusser/clubhub/internal/app/system/formutil"
	"github.com/dalemusser/clubhub/internal/app/system/httpapi"
	"github.com/dalemusser/clubhub/internal/app/system/limits"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandleUpdate serves PUT /team-members/{id}. A replacement "avatar"
// file uploads the new asset first, then destroys the old one best
// effort.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	oid, ok := memberID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	store := teamstore.New(h.DB)
	member, err := store.GetByID(ctx, oid)
	if err == mongo.ErrNoDocuments {
		httpapi.Fail(w, http.StatusNotFound, "Team member not found.")
		return
	}
	if err != nil {
		h.Log.Error("load team member for update failed", zap.String("id", oid.Hex()), zap.Error(err))
		httpapi.Fail(w, http.StatusInternalServerError, "Failed to update team member.")
		return
	}

	if isMultipart(r) {
		if err := r.ParseMultipartForm(limits.MaxImageUploadSize); err != nil {
			httpapi.Fail(w, http.StatusBadRequest, "Invalid form data.")
			return
		}
		if formutil.Has(r, "name") {
			member.Name = formutil.Trimmed(r, "name")
		}
		if formutil.Has(r, "email") {
			member.Email = formutil.Trimmed(r, "email")
		}
		if formutil.Has(r, "role") {
			member.Role = formutil.Trimmed(r, "role")
		}
		if formutil.Has(r, "status") {
			member.Status = formutil.Trimmed(r, "status")
		}
		if formutil.Has(r, "skills") {
			member.Skills = formutil.StringList(r, "skills")
		}
		if formutil.Has(r, "bio") {
			member.Bio = formutil.Trimmed(r, "bio")
		}
		if formutil.Has(r, "socialLinks") {
			member.SocialLinks = socialLinks(r)
		}

		if img, ok := h.uploadAvatar(ctx, r); ok {
			old := member.Avatar
			member.Avatar = &img
			if old != nil {
				if err := h.Media.Destroy(ctx, old.AssetID); err != nil {
					h.Log.Warn("delete replaced avatar failed",
						zap.String("asset_id", old.AssetID), zap.Error(err))
				}
			}
		}
	} else {
		var in models.TeamMember
		if err := httpapi.Decode(r, &in); err != nil {
			httpapi.Fail(w, http.StatusBadRequest, "Invalid request body.")
			return
		}
		member = mergeMember(member, in)
	}

	if err := store.Update(ctx, oid, member); err != nil {
		h.Log.Error("update team member failed", zap.String("id", oid.Hex()), zap.Error(err))
		httpapi.Fail(w, http.StatusInternalServerError, "Failed to update team member.")
		return
	}

	updated, err := store.GetByID(ctx, oid)
	if err != nil {
		h.Log.Error("reload team member failed", zap.String("id", oid.Hex()), zap.Error(err))
		httpapi.Fail(w, http.StatusInternalServerError, "Failed to update team member.")
		return
	}
	httpapi.OK(w, updated)
}

// mergeMember overlays non-zero JSON fields onto the stored member.
// Avatar changes go through the multipart path only.
func mergeMember(stored, in models.TeamMember) models.TeamMember {
	if in.Name != "" {
		stored.Name = in.Name
	}
	if in.Email != "" {
		stored.Email = in.Email
	}
	if in.Role != "" {
		stored.Role = in.Role
	}
	if in.Status != "" {
		stored.Status = in.Status
	}
	if in.Skills != nil {
		stored.Skills = in.Skills
	}
	if in.Bio != "" {
		stored.Bio = in.Bio
	}
	if in.SocialLinks != (models.SocialLinks{}) {
		stored.SocialLinks = in.SocialLinks
	}
	return stored
}
