package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// CloudinaryStore implements PhotoStore using Cloudinary.
type CloudinaryStore struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStore initializes the Cloudinary client from credentials.
func NewCloudinaryStore(cloudName, apiKey, apiSecret string) (*CloudinaryStore, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("storage: failed to initialize Cloudinary: %w", err)
	}
	return &CloudinaryStore{cld: cld}, nil
}

// UploadWorkPhoto uploads a photo into the provider's work-photos folder and
// returns the delivered URL.
func (s *CloudinaryStore) UploadWorkPhoto(ctx context.Context, file io.Reader, providerID string) (string, error) {
	uploadParams := uploader.UploadParams{
		Folder:   fmt.Sprintf("providers/%s/work-photos", providerID),
		PublicID: uuid.New().String(),
	}
	result, err := s.cld.Upload.Upload(ctx, file, uploadParams)
	if err != nil {
		return "", fmt.Errorf("storage: failed to upload work photo: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("storage: no URL returned for uploaded photo")
	}
	return result.SecureURL, nil
}

// DeletePhoto deletes a photo from Cloudinary given its public ID.
func (s *CloudinaryStore) DeletePhoto(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("storage: failed to delete photo: %w", err)
	}
	return nil
}
