// Package media wraps the external image host (Cloudinary).
//
// Handlers depend on the Store interface so tests can substitute a
// stub. Uploads and deletes are best-effort with respect to database
// writes: a failed Destroy is logged by the caller and never rolls back
// a document change.
package media

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"github.com/google/uuid"
)

// Store uploads and deletes image assets on the external media host.
type Store interface {
	// Upload stores the image and returns its delivery URL and asset ID.
	Upload(ctx context.Context, r io.Reader, filename string) (models.Image, error)
	// Destroy removes the asset with the given ID from the host.
	Destroy(ctx context.Context, assetID string) error
}

// Cloudinary is the production Store backed by the Cloudinary upload API.
type Cloudinary struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinary builds a Cloudinary Store from account credentials.
// folder is the upload folder all assets are placed under.
func NewCloudinary(cloudName, apiKey, apiSecret, folder string) (*Cloudinary, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &Cloudinary{cld: cld, folder: folder}, nil
}

// Upload sends the image to Cloudinary under a unique public ID derived
// from the original filename.
func (c *Cloudinary) Upload(ctx context.Context, r io.Reader, filename string) (models.Image, error) {
	publicID := uniquePublicID(filename)
	res, err := c.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		PublicID: publicID,
		Folder:   c.folder,
	})
	if err != nil {
		return models.Image{}, fmt.Errorf("media upload: %w", err)
	}
	if res.Error.Message != "" {
		return models.Image{}, fmt.Errorf("media upload: %s", res.Error.Message)
	}
	return models.Image{URL: res.SecureURL, AssetID: res.PublicID}, nil
}

// Destroy deletes the asset. A missing asset is not an error; the
// document referencing it is already being removed or rewritten.
func (c *Cloudinary) Destroy(ctx context.Context, assetID string) error {
	res, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: assetID})
	if err != nil {
		return fmt.Errorf("media destroy: %w", err)
	}
	if res.Result != "ok" && res.Result != "not found" {
		return fmt.Errorf("media destroy: %s", res.Result)
	}
	return nil
}

// uniquePublicID builds a public ID as <uuid-prefix>-<sanitized name>
// so repeated uploads of the same file never collide.
func uniquePublicID(filename string) string {
	name := filepath.Base(filename)
	if ext := filepath.Ext(name); ext != "" {
		name = name[:len(name)-len(ext)]
	}
	return fmt.Sprintf("%s-%s", uuid.New().String()[:8], sanitizeName(name))
}

func sanitizeName(name string) string {
	result := make([]byte, 0, len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		if isAllowedNameChar(c) {
			result = append(result, c)
		} else {
			result = append(result, '_')
		}
	}
	if len(result) == 0 {
		return "image"
	}
	if len(result) > 100 {
		result = result[:100]
	}
	return string(result)
}

func isAllowedNameChar(c byte) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') ||
		c == '-' || c == '_' || c == '.'
}
