package join_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/clubhub/internal/app/features/join"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"github.com/dalemusser/clubhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const validApplication = `{
	"fullName": "Nour Ibrahim",
	"email": "nour@example.com",
	"phone": "+201234567890",
	"specializedIn": "backend",
	"year": "2",
	"major": "Computer Engineering",
	"specialization": "web",
	"experience": "Built a club portal",
	"motivation": "Want to contribute",
	"availability": "evenings",
	"agreeTerms": true
}`

func TestHandleSubmit(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := join.NewHandler(db, zap.NewNop())

	req := httptest.NewRequest("POST", "/join", strings.NewReader(validApplication))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.HandleSubmit(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, rec.Code, rec.Body.String())
	}

	var env struct {
		Data models.JoinApplication `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if env.Data.Status != models.ApplicationPending {
		t.Errorf("status: got %q, want %q", env.Data.Status, models.ApplicationPending)
	}
	if env.Data.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}
}

func TestHandleSubmit_DuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateApplication(ctx, "First Applicant", "nour@example.com")
	handler := join.NewHandler(db, zap.NewNop())

	req := httptest.NewRequest("POST", "/join", strings.NewReader(validApplication))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.HandleSubmit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d: %s", http.StatusBadRequest, rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "already applied") {
		t.Errorf("unexpected error message: %s", rec.Body.String())
	}
}

func TestHandleSubmit_MissingFields(t *testing.T) {
	handler := join.NewHandler(nil, zap.NewNop())

	body := `{"fullName":"Only Name","email":"a@b.c","agreeTerms":false}`
	req := httptest.NewRequest("POST", "/join", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.HandleSubmit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	for _, field := range []string{"phone", "motivation", "agreeTerms"} {
		if !strings.Contains(rec.Body.String(), field) {
			t.Errorf("error should name %q: %s", field, rec.Body.String())
		}
	}
}

func TestHandleList_OldestFirst(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateApplication(ctx, "Applicant A", "a@example.com")
	time.Sleep(5 * time.Millisecond) // created_at has millisecond precision
	fx.CreateApplication(ctx, "Applicant B", "b@example.com")

	handler := join.NewHandler(db, zap.NewNop())

	req := httptest.NewRequest("GET", "/join", nil)
	rec := httptest.NewRecorder()
	handler.HandleList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	var env struct {
		Data []models.JoinApplication `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(env.Data) != 2 {
		t.Fatalf("applications: got %d, want 2", len(env.Data))
	}
	if env.Data[0].FullName != "Applicant A" {
		t.Errorf("first application: got %q, want the oldest", env.Data[0].FullName)
	}
}

func TestHandleUpdateStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	app := fx.CreateApplication(ctx, "Reviewed Applicant", "review@example.com")
	handler := join.NewHandler(db, zap.NewNop())

	req := httptest.NewRequest("PUT", "/join/"+app.ID.Hex()+"/status",
		strings.NewReader(`{"status":"accepted"}`))
	req.Header.Set("Content-Type", "application/json")
	req = testutil.WithChiURLParam(req, "id", app.ID.Hex())
	rec := httptest.NewRecorder()

	handler.HandleUpdateStatus(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	var env struct {
		Data models.JoinApplication `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if env.Data.Status != models.ApplicationAccepted {
		t.Errorf("status: got %q, want %q", env.Data.Status, models.ApplicationAccepted)
	}
}

func TestHandleUpdateStatus_InvalidValue(t *testing.T) {
	handler := join.NewHandler(nil, zap.NewNop())

	id := primitive.NewObjectID().Hex()
	req := httptest.NewRequest("PUT", "/join/"+id+"/status",
		strings.NewReader(`{"status":"maybe"}`))
	req.Header.Set("Content-Type", "application/json")
	req = testutil.WithChiURLParam(req, "id", id)
	rec := httptest.NewRecorder()

	handler.HandleUpdateStatus(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestHandleDelete_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := join.NewHandler(db, zap.NewNop())

	missing := primitive.NewObjectID().Hex()
	req := httptest.NewRequest("DELETE", "/join/"+missing, nil)
	req = testutil.WithChiURLParam(req, "id", missing)
	rec := httptest.NewRecorder()

	handler.HandleDelete(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
}
