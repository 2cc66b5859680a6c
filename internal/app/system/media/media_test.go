package media

import (
	"strings"
	"testing"
)

func TestUniquePublicID(t *testing.T) {
	id := uniquePublicID("team photo (1).png")
	if len(id) < 9 || id[8] != '-' {
		t.Fatalf("expected 8-char uuid prefix, got %q", id)
	}
	if strings.ContainsAny(id, " ()") {
		t.Errorf("expected sanitized name, got %q", id)
	}
	if strings.HasSuffix(id, ".png") {
		t.Errorf("expected extension stripped, got %q", id)
	}

	// Two calls for the same file must not collide.
	if other := uniquePublicID("team photo (1).png"); other == id {
		t.Errorf("expected unique IDs, got %q twice", id)
	}
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"logo", "logo"},
		{"my file!", "my_file_"},
		{"", "image"},
	}
	for _, tt := range tests {
		if got := sanitizeName(tt.in); got != tt.want {
			t.Errorf("sanitizeName(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}
