package projects_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/clubhub/internal/app/features/projects"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"github.com/dalemusser/clubhub/internal/testutil"
	"go.uber.org/zap"
)

type stubMedia struct {
	destroyed []string
}

func (s *stubMedia) Upload(ctx context.Context, r io.Reader, filename string) (models.Image, error) {
	return models.Image{URL: "https://img.example.com/" + filename, AssetID: "new-" + filename}, nil
}

func (s *stubMedia) Destroy(ctx context.Context, assetID string) error {
	s.destroyed = append(s.destroyed, assetID)
	return nil
}

func TestHandleCreate_JSON(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := projects.NewHandler(db, &stubMedia{}, zap.NewNop())

	body := `{"name":"Line Follower","description":"Autonomous robot","status":"active","progress":40,"technologies":["c++","ros"]}`
	req := httptest.NewRequest("POST", "/projects", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.HandleCreate(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, rec.Code, rec.Body.String())
	}

	var env struct {
		Success bool           `json:"success"`
		Data    models.Project `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if !env.Success {
		t.Error("expected success true")
	}
	if env.Data.Name != "Line Follower" {
		t.Errorf("name: got %q", env.Data.Name)
	}
	if env.Data.CreatedAt.IsZero() || env.Data.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
}

func TestHandleCreate_MissingFields(t *testing.T) {
	handler := projects.NewHandler(nil, &stubMedia{}, zap.NewNop())

	req := httptest.NewRequest("POST", "/projects", bytes.NewReader([]byte(`{"name":"No Description"}`)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.HandleCreate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "description") {
		t.Errorf("error should name the missing field: %s", rec.Body.String())
	}
}

func TestHandleGet_InvalidID(t *testing.T) {
	handler := projects.NewHandler(nil, &stubMedia{}, zap.NewNop())

	req := httptest.NewRequest("GET", "/projects/zzz", nil)
	req = testutil.WithChiURLParam(req, "id", "zzz")
	rec := httptest.NewRecorder()

	handler.HandleGet(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestHandleDelete_WithAndWithoutImage(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	mediaStore := &stubMedia{}
	handler := projects.NewHandler(db, mediaStore, zap.NewNop())

	withImage := fx.CreateProject(ctx, "Has Image")
	img := models.Image{URL: "https://img.example.com/p.png", AssetID: "proj-img"}
	if _, err := db.Collection("projects").UpdateByID(ctx, withImage.ID,
		map[string]interface{}{"$set": map[string]interface{}{"image": img}}); err != nil {
		t.Fatalf("failed to set image: %v", err)
	}

	req := httptest.NewRequest("DELETE", "/projects/"+withImage.ID.Hex(), nil)
	req = testutil.WithChiURLParam(req, "id", withImage.ID.Hex())
	rec := httptest.NewRecorder()
	handler.HandleDelete(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	if len(mediaStore.destroyed) != 1 || mediaStore.destroyed[0] != "proj-img" {
		t.Errorf("destroyed: got %v, want [proj-img]", mediaStore.destroyed)
	}

	plain := fx.CreateProject(ctx, "No Image")
	mediaStore.destroyed = nil

	req = httptest.NewRequest("DELETE", "/projects/"+plain.ID.Hex(), nil)
	req = testutil.WithChiURLParam(req, "id", plain.ID.Hex())
	rec = httptest.NewRecorder()
	handler.HandleDelete(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if len(mediaStore.destroyed) != 0 {
		t.Errorf("expected no destroy calls, got %v", mediaStore.destroyed)
	}
}

func TestHandleUpdate_JSONMerge(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	project := fx.CreateProject(ctx, "Old Name")
	handler := projects.NewHandler(db, &stubMedia{}, zap.NewNop())

	body := `{"name":"New Name","progress":80}`
	req := httptest.NewRequest("PUT", "/projects/"+project.ID.Hex(), strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req = testutil.WithChiURLParam(req, "id", project.ID.Hex())
	rec := httptest.NewRecorder()

	handler.HandleUpdate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	var env struct {
		Data models.Project `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if env.Data.Name != "New Name" {
		t.Errorf("name: got %q, want %q", env.Data.Name, "New Name")
	}
	if env.Data.Progress != 80 {
		t.Errorf("progress: got %d, want 80", env.Data.Progress)
	}
	// Untouched fields survive the merge.
	if env.Data.Description != project.Description {
		t.Errorf("description changed: got %q", env.Data.Description)
	}
}
