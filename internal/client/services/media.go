package services

import (
	"context"
	"encoding/base64"
	"path"

	"github.com/google/uuid"

	"github.com/sohaibmughall/crm-panel/internal/client/cache"
	"github.com/sohaibmughall/crm-panel/internal/client/models"
	"github.com/sohaibmughall/crm-panel/internal/logging"
)

// Uploader pushes an object into a storage bucket and returns its public
// URL. *gateway.Client satisfies it.
type Uploader interface {
	Upload(ctx context.Context, bucket, key, mime string, payload []byte) (string, error)
}

// MediaService manages the media library. Uploads go to object storage when
// a bucket is configured; otherwise the payload is inlined as a data URI so
// the asset row is still self-contained.
type MediaService struct {
	col      collection[models.MediaAsset]
	uploader Uploader
	bucket   string
}

func NewMediaService(gw Gateway[models.MediaAsset], c *cache.Store[models.MediaAsset], uploader Uploader, bucket string, log logging.Logger) *MediaService {
	return &MediaService{
		col:      collection[models.MediaAsset]{gw: gw, cache: c, log: log},
		uploader: uploader,
		bucket:   bucket,
	}
}

type UploadInput struct {
	Name string `validate:"required"`
	Type string `validate:"required"`
	Data []byte `validate:"required"`
}

func (s *MediaService) List(ctx context.Context) ([]models.MediaAsset, error) {
	return s.col.refresh(ctx)
}

// Upload stores the payload and records the asset row. The object key is a
// fresh uuid with the original extension, so repeated uploads of the same
// filename never collide.
func (s *MediaService) Upload(ctx context.Context, in UploadInput) (models.MediaAsset, error) {
	if err := check(in); err != nil {
		return models.MediaAsset{}, err
	}

	var url string
	if s.bucket != "" {
		key := uuid.NewString() + path.Ext(in.Name)
		u, err := s.uploader.Upload(ctx, s.bucket, key, in.Type, in.Data)
		if err != nil {
			return models.MediaAsset{}, err
		}
		url = u
	} else {
		url = "data:" + in.Type + ";base64," + base64.StdEncoding.EncodeToString(in.Data)
	}

	return s.col.create(ctx, map[string]any{
		"name": in.Name,
		"url":  url,
		"type": in.Type,
		"size": int64(len(in.Data)),
	})
}

func (s *MediaService) Delete(ctx context.Context, id int64) error {
	return s.col.remove(ctx, id)
}

func (s *MediaService) Cached() []models.MediaAsset {
	return s.col.cache.All()
}
