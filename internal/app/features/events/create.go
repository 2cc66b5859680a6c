package events

import (
	"context"
	"net/http"
	"strings"

	eventstore "github.com/dalemusser/clubhub/internal/app/store/events"
	"github.com/dalemusser/clubhub/internal/app/system/formutil"
	"github.com/dalemusser/clubhub/internal/app/system/httpapi"
	"github.com/dalemusser/clubhub/internal/app/system/limits"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleCreate serves POST /events. The body is either JSON or a
// multipart form carrying an optional "image" file. Attendees arrive as
// a list of team member hex IDs; unparseable IDs are skipped.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var event models.Event

	if isMultipart(r) {
		if err := r.ParseMultipartForm(limits.MaxImageUploadSize); err != nil {
			httpapi.Fail(w, http.StatusBadRequest, "Invalid form data.")
			return
		}
		event = models.Event{
			Title:            formutil.Trimmed(r, "title"),
			Description:      formutil.Trimmed(r, "description"),
			Date:             formutil.Trimmed(r, "date"),
			Location:         formutil.Trimmed(r, "location"),
			Type:             formutil.Trimmed(r, "type"),
			Status:           formutil.Trimmed(r, "status"),
			RegistrationLink: formutil.Trimmed(r, "registrationLink"),
			AttendeeIDs:      attendeeIDs(formutil.StringList(r, "attendees")),
		}
	} else {
		var in eventInput
		if err := httpapi.Decode(r, &in); err != nil {
			httpapi.Fail(w, http.StatusBadRequest, "Invalid request body.")
			return
		}
		event = in.toEvent()
	}

	var missing []string
	for _, f := range []struct{ name, value string }{
		{"title", event.Title},
		{"description", event.Description},
		{"date", event.Date},
		{"location", event.Location},
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

	if img, ok := h.uploadImage(ctx, r); ok {
		event.Image = &img
	}

	created, err := eventstore.New(h.DB).Create(ctx, event)
	if err != nil {
		h.Log.Error("create event failed", zap.Error(err))
		httpapi.Fail(w, http.StatusInternalServerError, "Failed to create event.")
		return
	}
	created.Attendees = h.resolveAttendees(ctx, created.AttendeeIDs)
	httpapi.Created(w, created)
}

// eventInput accepts attendees as hex strings in JSON bodies.
type eventInput struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Date             string   `json:"date"`
	Location         string   `json:"location"`
	Type             string   `json:"type"`
	Status           string   `json:"status"`
	RegistrationLink string   `json:"registrationLink"`
	Attendees        []string `json:"attendees"`
}

func (in eventInput) toEvent() models.Event {
	return models.Event{
		Title:            in.Title,
		Description:      in.Description,
		Date:             in.Date,
		Location:         in.Location,
		Type:             in.Type,
		Status:           in.Status,
		RegistrationLink: in.RegistrationLink,
		AttendeeIDs:      attendeeIDs(in.Attendees),
	}
}

func attendeeIDs(hexes []string) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(hexes))
	for _, hex := range hexes {
		oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(hex))
		if err != nil {
			continue
		}
		ids = append(ids, oid)
	}
	return ids
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

// uploadImage uploads the "image" file if one was submitted. A failed
// upload is logged and the event is saved without an image.
func (h *Handler) uploadImage(ctx context.Context, r *http.Request) (models.Image, bool) {
	if r.MultipartForm == nil {
		return models.Image{}, false
	}
	headers := r.MultipartForm.File["image"]
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
		h.Log.Warn("event image upload failed", zap.String("filename", hdr.Filename), zap.Error(err))
		return models.Image{}, false
	}
	return img, true
}
