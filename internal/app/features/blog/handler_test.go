package blog_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/clubhub/internal/app/features/blog"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"github.com/dalemusser/clubhub/internal/testutil"
	"go.uber.org/zap"
)

// stubMedia records media host calls without making any.
type stubMedia struct {
	uploads   int
	destroyed []string
}

func (s *stubMedia) Upload(ctx context.Context, r io.Reader, filename string) (models.Image, error) {
	s.uploads++
	return models.Image{
		URL:     fmt.Sprintf("https://img.example.com/%s", filename),
		AssetID: fmt.Sprintf("asset-%d", s.uploads),
	}, nil
}

func (s *stubMedia) Destroy(ctx context.Context, assetID string) error {
	s.destroyed = append(s.destroyed, assetID)
	return nil
}

type formFile struct {
	field, name, content string
}

func multipartBody(t *testing.T, fields map[string]string, files ...formFile) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	for _, f := range files {
		fw, err := mw.CreateFormFile(f.field, f.name)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write([]byte(f.content)); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func decodeEnvelope(t *testing.T, body []byte) (bool, json.RawMessage, string) {
	t.Helper()
	var env struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Error   string          `json:"error"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("failed to parse envelope: %v", err)
	}
	return env.Success, env.Data, env.Error
}

func TestHandleGet_InvalidID(t *testing.T) {
	handler := blog.NewHandler(nil, &stubMedia{}, zap.NewNop())

	req := httptest.NewRequest("GET", "/blog/nope", nil)
	req = testutil.WithChiURLParam(req, "id", "nope")
	rec := httptest.NewRecorder()

	handler.HandleGet(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestHandleGet_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := blog.NewHandler(db, &stubMedia{}, zap.NewNop())

	req := httptest.NewRequest("GET", "/blog/64b000000000000000000000", nil)
	req = testutil.WithChiURLParam(req, "id", "64b000000000000000000000")
	rec := httptest.NewRecorder()

	handler.HandleGet(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
}

func TestHandleGet_RoundTripsID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	post := fx.CreateBlogPost(ctx, "Round Trip")
	handler := blog.NewHandler(db, &stubMedia{}, zap.NewNop())

	req := httptest.NewRequest("GET", "/blog/"+post.ID.Hex(), nil)
	req = testutil.WithChiURLParam(req, "id", post.ID.Hex())
	rec := httptest.NewRecorder()

	handler.HandleGet(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	_, data, _ := decodeEnvelope(t, rec.Body.Bytes())
	var got models.BlogPost
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("failed to parse post: %v", err)
	}
	if got.ID.Hex() != post.ID.Hex() {
		t.Errorf("id: got %q, want %q", got.ID.Hex(), post.ID.Hex())
	}
}

func TestHandleCreate_MissingFields(t *testing.T) {
	handler := blog.NewHandler(nil, &stubMedia{}, zap.NewNop())

	body, contentType := multipartBody(t, map[string]string{
		"title":   "Half a post",
		"content": "Some words here",
	})
	req := httptest.NewRequest("POST", "/blog", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handler.HandleCreate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	_, _, errMsg := decodeEnvelope(t, rec.Body.Bytes())
	for _, f := range []string{"excerpt", "author", "category"} {
		if !strings.Contains(errMsg, f) {
			t.Errorf("error %q does not name missing field %q", errMsg, f)
		}
	}
}

func TestHandleCreate_WithImagesAndReadTime(t *testing.T) {
	db := testutil.SetupTestDB(t)
	mediaStore := &stubMedia{}
	handler := blog.NewHandler(db, mediaStore, zap.NewNop())

	body, contentType := multipartBody(t, map[string]string{
		"title":     "Launch Recap",
		"content":   strings.TrimSpace(strings.Repeat("word ", 450)),
		"excerpt":   "What happened at launch.",
		"author":    "Sara",
		"category":  "news",
		"tags":      `["launch","recap"]`,
		"featured":  "true",
		"published": "true",
	},
		formFile{"images", "one.png", "png-bytes"},
		formFile{"images", "two.png", "png-bytes"},
	)
	req := httptest.NewRequest("POST", "/blog", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handler.HandleCreate(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, rec.Code, rec.Body.String())
	}
	_, data, _ := decodeEnvelope(t, rec.Body.Bytes())
	var created models.BlogPost
	if err := json.Unmarshal(data, &created); err != nil {
		t.Fatalf("failed to parse post: %v", err)
	}

	if created.ReadTime != "3 min read" {
		t.Errorf("readTime: got %q, want %q", created.ReadTime, "3 min read")
	}
	if len(created.Images) != 2 {
		t.Errorf("expected 2 images, got %d", len(created.Images))
	}
	if mediaStore.uploads != 2 {
		t.Errorf("expected 2 uploads, got %d", mediaStore.uploads)
	}
	if len(created.Tags) != 2 || created.Tags[0] != "launch" {
		t.Errorf("tags: got %v", created.Tags)
	}
}

func TestHandleUpdate_ReconcilesImages(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	post := fx.CreateBlogPostWithImages(ctx, "Gallery Post", []models.Image{
		{URL: "https://img.example.com/a.png", AssetID: "a"},
		{URL: "https://img.example.com/b.png", AssetID: "b"},
	})

	mediaStore := &stubMedia{}
	handler := blog.NewHandler(db, mediaStore, zap.NewNop())

	body, contentType := multipartBody(t, map[string]string{
		"existingImages": `[{"url":"https://img.example.com/a.png","publicId":"a"}]`,
	})
	req := httptest.NewRequest("PUT", "/blog/"+post.ID.Hex(), body)
	req.Header.Set("Content-Type", contentType)
	req = testutil.WithChiURLParam(req, "id", post.ID.Hex())
	rec := httptest.NewRecorder()

	handler.HandleUpdate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	if len(mediaStore.destroyed) != 1 || mediaStore.destroyed[0] != "b" {
		t.Errorf("destroyed: got %v, want [b]", mediaStore.destroyed)
	}

	_, data, _ := decodeEnvelope(t, rec.Body.Bytes())
	var updated models.BlogPost
	if err := json.Unmarshal(data, &updated); err != nil {
		t.Fatalf("failed to parse post: %v", err)
	}
	if len(updated.Images) != 1 || updated.Images[0].AssetID != "a" {
		t.Errorf("images: got %v, want only asset a", updated.Images)
	}
}

func TestHandleDelete_DestroysAssets(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	post := fx.CreateBlogPostWithImages(ctx, "Doomed Post", []models.Image{
		{URL: "https://img.example.com/x.png", AssetID: "x"},
	})

	mediaStore := &stubMedia{}
	handler := blog.NewHandler(db, mediaStore, zap.NewNop())

	req := httptest.NewRequest("DELETE", "/blog/"+post.ID.Hex(), nil)
	req = testutil.WithChiURLParam(req, "id", post.ID.Hex())
	rec := httptest.NewRecorder()

	handler.HandleDelete(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	if len(mediaStore.destroyed) != 1 || mediaStore.destroyed[0] != "x" {
		t.Errorf("destroyed: got %v, want [x]", mediaStore.destroyed)
	}

	// A post without images must trigger zero destroy calls.
	plain := fx.CreateBlogPost(ctx, "Plain Post")
	mediaStore.destroyed = nil

	req = httptest.NewRequest("DELETE", "/blog/"+plain.ID.Hex(), nil)
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
