// internal/app/system/limits/limits.go
package limits

// Request body size limits for various features.
// These limits help prevent memory exhaustion from oversized requests.
const (
	// MaxImageUploadSize is the in-memory budget for multipart forms
	// carrying image files (blog posts, projects, avatars, events).
	MaxImageUploadSize = 32 << 20 // 32 MB
)
