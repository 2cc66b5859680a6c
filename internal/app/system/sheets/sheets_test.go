package sheets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"go.uber.org/zap"
)

func TestRows_CSVExport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte("name,email,status,nationalID,ticketNumber\n" +
			"Jane Doe,jane@example.com,confirmed,12345678901234,TKT-9001\n" +
			"\"Smith, John\",john@example.com,pending,98765432109876,TKT-9002\n"))
	}))
	defer srv.Close()

	f := New("sheet-id", "A:E", "", zap.NewNop())
	f.exportURL = srv.URL

	rows, err := f.Rows(context.Background())
	if err != nil {
		t.Fatalf("Rows failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0][0] != "name" {
		t.Errorf("header: got %q, want %q", rows[0][0], "name")
	}
	// Quoted cell with an embedded comma must stay one cell.
	if rows[2][0] != "Smith, John" {
		t.Errorf("quoted cell: got %q, want %q", rows[2][0], "Smith, John")
	}
}

func TestRows_CSVExportStripsBOM(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("\ufeffname,email\nJane,jane@example.com\n"))
	}))
	defer srv.Close()

	f := New("sheet-id", "A:E", "", zap.NewNop())
	f.exportURL = srv.URL

	rows, err := f.Rows(context.Background())
	if err != nil {
		t.Fatalf("Rows failed: %v", err)
	}
	if rows[0][0] != "name" {
		t.Errorf("expected BOM stripped, got %q", rows[0][0])
	}
}

func TestRows_FallsBackWhenUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	// No valid spreadsheet ID and no API key, so the API tier fails
	// too and the compiled-in table is returned.
	f := New("", "A:E", "", zap.NewNop())
	f.exportURL = srv.URL

	rows, err := f.Rows(context.Background())
	if err != nil {
		t.Fatalf("Rows failed: %v", err)
	}
	if !reflect.DeepEqual(rows, FallbackRows()) {
		t.Errorf("expected fallback rows, got %v", rows)
	}
}

func TestZip(t *testing.T) {
	rows := [][]string{
		{"name", "email", "status", "nationalID", "ticketNumber"},
		{"Jane", "jane@example.com", "confirmed", "111", "TKT-1"},
		{"Short", "short@example.com"},
	}

	records := Zip(rows)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0]["nationalID"] != "111" {
		t.Errorf("nationalID: got %q, want %q", records[0]["nationalID"], "111")
	}
	// Short rows leave trailing columns absent rather than empty.
	if _, ok := records[1]["status"]; ok {
		t.Error("expected status absent for short row")
	}
}

func TestZip_HeaderOnly(t *testing.T) {
	if got := Zip([][]string{{"name", "email"}}); got != nil {
		t.Errorf("expected nil for header-only input, got %v", got)
	}
}

func TestMissing(t *testing.T) {
	rec := map[string]string{"name": "Jane", "email": "j@example.com", "ticketNumber": "TKT-1"}
	missing := Missing(rec)
	want := []string{"nationalID", "phone"}
	if !reflect.DeepEqual(missing, want) {
		t.Errorf("Missing: got %v, want %v", missing, want)
	}

	full := map[string]string{
		"nationalID": "1", "name": "n", "email": "e", "phone": "p", "ticketNumber": "t",
	}
	if got := Missing(full); got != nil {
		t.Errorf("expected no missing columns, got %v", got)
	}
}
