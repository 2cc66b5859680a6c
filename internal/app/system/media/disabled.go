package media

import (
	"context"
	"errors"
	"io"

	"github.com/dalemusser/clubhub/internal/domain/models"
)

// ErrNotConfigured is returned by the disabled Store on upload attempts.
var ErrNotConfigured = errors.New("media host not configured")

type disabled struct{}

// Disabled returns a Store for deployments without media credentials.
// Uploads fail with ErrNotConfigured; deletes are silently accepted so
// document deletion still works.
func Disabled() Store {
	return disabled{}
}

func (disabled) Upload(ctx context.Context, r io.Reader, filename string) (models.Image, error) {
	return models.Image{}, ErrNotConfigured
}

func (disabled) Destroy(ctx context.Context, assetID string) error {
	return nil
}
