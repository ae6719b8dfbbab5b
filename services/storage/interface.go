package storage

import (
	"context"
	"io"
)

// PhotoStore is the object storage vendor for provider work photos.
type PhotoStore interface {
	// UploadWorkPhoto stores the photo under the provider's folder and
	// returns its public URL.
	UploadWorkPhoto(ctx context.Context, file io.Reader, providerID string) (string, error)
	// DeletePhoto removes a previously uploaded photo by its identifier.
	DeletePhoto(ctx context.Context, publicID string) error
}
