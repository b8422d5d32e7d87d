package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/tours360/tourgraph/internal/auth"
	"github.com/tours360/tourgraph/internal/config"
	"github.com/tours360/tourgraph/internal/modules/model"
	"github.com/tours360/tourgraph/internal/modules/repo"
	"github.com/tours360/tourgraph/internal/pkg/utils/mime"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultMaxUploadBytes = 50 << 20

type GalleryService interface {
	AddImage(ctx context.Context, caller auth.Caller, propertyID uuid.UUID, url string) (*model.GalleryImage, error)
	UploadImage(ctx context.Context, caller auth.Caller, in UploadImageInput) (*model.GalleryImage, error)
	SetMain(ctx context.Context, caller auth.Caller, imageID uuid.UUID) (*model.GalleryImage, error)
	List(ctx context.Context, caller auth.Caller, propertyID uuid.UUID) ([]model.GalleryImage, error)
	DeleteImage(ctx context.Context, caller auth.Caller, imageID uuid.UUID) error
}

type galleryService struct {
	properties repo.PropertyRepo
	gallery    repo.GalleryRepo
	blob       BlobStore
	maxBytes   int64
	authz      auth.Authorizer
	log        *zap.Logger
}

func NewGalleryService(properties repo.PropertyRepo, gallery repo.GalleryRepo, blob BlobStore, cfg *config.Config, authz auth.Authorizer, log *zap.Logger) GalleryService {
	if log == nil {
		log = zap.NewNop()
	}
	s := &galleryService{
		properties: properties,
		gallery:    gallery,
		blob:       blob,
		maxBytes:   defaultMaxUploadBytes,
		authz:      authz,
		log:        log,
	}
	if cfg != nil && cfg.S3.MaxUploadBytes > 0 {
		s.maxBytes = cfg.S3.MaxUploadBytes
	}
	return s
}

type UploadImageInput struct {
	PropertyID uuid.UUID
	Filename   string
	Size       int64
	Body       io.Reader
}

type imageURL struct {
	URL string `validate:"required,url"`
}

func (s *galleryService) AddImage(ctx context.Context, caller auth.Caller, propertyID uuid.UUID, url string) (*model.GalleryImage, error) {
	const op = "add gallery image"
	if err := authorize(ctx, s.authz, caller, op); err != nil {
		return nil, err
	}
	url = strings.TrimSpace(url)
	if err := validateStruct(op, imageURL{URL: url}); err != nil {
		return nil, err
	}
	if _, err := s.properties.Get(ctx, propertyID); err != nil {
		return nil, fromRepo(op, "property", propertyID, err)
	}
	return s.insert(ctx, op, propertyID, url)
}

// insert stores the row; the first image of a property becomes main.
func (s *galleryService) insert(ctx context.Context, op string, propertyID uuid.UUID, url string) (*model.GalleryImage, error) {
	hasMain, err := s.gallery.HasMain(ctx, propertyID)
	if err != nil {
		return nil, persistenceErr(op, err)
	}
	img := &model.GalleryImage{
		ID:         uuid.New(),
		PropertyID: propertyID,
		URL:        url,
		IsMain:     !hasMain,
	}
	err = s.gallery.Create(ctx, img)
	if errors.Is(err, gorm.ErrDuplicatedKey) && img.IsMain {
		img.IsMain = false
		err = s.gallery.Create(ctx, img)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, notFoundErr(op, "property", propertyID)
		}
		return nil, persistenceErr(op, err)
	}
	return img, nil
}

func (s *galleryService) UploadImage(ctx context.Context, caller auth.Caller, in UploadImageInput) (*model.GalleryImage, error) {
	const op = "upload gallery image"
	if err := authorize(ctx, s.authz, caller, op); err != nil {
		return nil, err
	}
	if in.Body == nil {
		return nil, validationErr(op, "file is required")
	}
	if in.Size > s.maxBytes {
		return nil, validationErr(op, "file exceeds %d MB", s.maxBytes>>20)
	}
	if s.blob == nil {
		return nil, persistenceErr(op, errors.New("blob store is not configured"))
	}
	if _, err := s.properties.Get(ctx, in.PropertyID); err != nil {
		return nil, fromRepo(op, "property", in.PropertyID, err)
	}

	contentType, ext, body, err := mime.DetectImage(in.Body)
	if err != nil {
		if errors.Is(err, mime.ErrUnsupportedImage) {
			s.log.Info("rejected gallery upload", zap.String("filename", in.Filename), zap.String("content_type", contentType))
			return nil, validationErr(op, "%v", err)
		}
		return nil, persistenceErr(op, err)
	}

	key := fmt.Sprintf("properties/%s/gallery/%s%s", in.PropertyID, uuid.NewString(), ext)
	url, err := s.blob.Put(ctx, key, body, contentType)
	if err != nil {
		return nil, persistenceErr(op, err)
	}

	img, err := s.insert(ctx, op, in.PropertyID, url)
	if err != nil {
		if derr := s.blob.DeleteByURL(ctx, url); derr != nil {
			s.log.Warn("delete orphaned gallery object", zap.String("url", url), zap.Error(derr))
		}
		return nil, err
	}
	return img, nil
}

func (s *galleryService) SetMain(ctx context.Context, caller auth.Caller, imageID uuid.UUID) (*model.GalleryImage, error) {
	const op = "set main gallery image"
	if err := authorize(ctx, s.authz, caller, op); err != nil {
		return nil, err
	}
	img, err := s.gallery.Get(ctx, imageID)
	if err != nil {
		return nil, fromRepo(op, "gallery image", imageID, err)
	}
	if img.IsMain {
		return img, nil
	}
	if err := s.gallery.SetMain(ctx, img.PropertyID, img.ID); err != nil {
		return nil, fromRepo(op, "gallery image", imageID, err)
	}
	img.IsMain = true
	return img, nil
}

func (s *galleryService) List(ctx context.Context, caller auth.Caller, propertyID uuid.UUID) ([]model.GalleryImage, error) {
	const op = "list gallery"
	if err := authorize(ctx, s.authz, caller, op); err != nil {
		return nil, err
	}
	if _, err := s.properties.Get(ctx, propertyID); err != nil {
		return nil, fromRepo(op, "property", propertyID, err)
	}
	items, err := s.gallery.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, persistenceErr(op, err)
	}
	return items, nil
}

// DeleteImage is idempotent. Removing the main image promotes the oldest
// remaining one.
func (s *galleryService) DeleteImage(ctx context.Context, caller auth.Caller, imageID uuid.UUID) error {
	const op = "delete gallery image"
	if err := authorize(ctx, s.authz, caller, op); err != nil {
		return err
	}
	img, err := s.gallery.Get(ctx, imageID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return persistenceErr(op, err)
	}

	if err := s.gallery.Delete(ctx, imageID); err != nil {
		return persistenceErr(op, err)
	}

	if img.IsMain {
		rest, err := s.gallery.ListByProperty(ctx, img.PropertyID)
		if err != nil {
			return persistenceErr(op, err)
		}
		if len(rest) > 0 {
			if err := s.gallery.SetMain(ctx, img.PropertyID, rest[0].ID); err != nil {
				return persistenceErr(op, err)
			}
		}
	}

	if s.blob != nil {
		if err := s.blob.DeleteByURL(ctx, img.URL); err != nil {
			s.log.Warn("delete gallery object", zap.String("url", img.URL), zap.Error(err))
		}
	}
	return nil
}
