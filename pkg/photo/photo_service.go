package photo

import (
	"context"
	"errors"
	"time"

	"agrifusion/domain"
	"agrifusion/entities"
	"agrifusion/internal/utils"
	"agrifusion/internal/utils/storage"
	"agrifusion/pkg/farmer"

	"github.com/dustin/go-humanize"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const Folder = "photos"

type (
	PhotoService interface {
		UploadPhoto(ctx context.Context, req domain.UploadPhotoRequest) (domain.PhotoResponse, error)
		GetPhotos(ctx context.Context, username string) ([]domain.PhotoResponse, error)
		DeletePhoto(ctx context.Context, id string) error
	}

	photoService struct {
		photoRepository PhotoRepository
		farmerService   farmer.FarmerService
		storage         storage.Storage
		maxSize         int64
	}
)

func NewPhotoService(photoRepository PhotoRepository, farmerService farmer.FarmerService, store storage.Storage, maxSize int64) PhotoService {
	return &photoService{
		photoRepository: photoRepository,
		farmerService:   farmerService,
		storage:         store,
		maxSize:         maxSize,
	}
}

func (s *photoService) UploadPhoto(ctx context.Context, req domain.UploadPhotoRequest) (domain.PhotoResponse, error) {
	info, err := storage.Inspect(req.Photo, s.maxSize, storage.AllowImage...)
	if err != nil {
		return domain.PhotoResponse{}, err
	}
	if err := utils.ValidateStruct(req); err != nil {
		return domain.PhotoResponse{}, err
	}

	f, err := s.farmerService.GetByUsername(ctx, req.Username)
	if err != nil {
		return domain.PhotoResponse{}, err
	}

	objectKey, err := s.storage.UploadFile(req.Photo, Folder, storage.AllowImage...)
	if err != nil {
		return domain.PhotoResponse{}, err
	}

	photo := &entities.Photo{
		ID:       uuid.New(),
		Username: f.Username,
		FarmerID: f.ID,
		Filename: req.Photo.Filename,
		Path:     objectKey,
		URL:      s.storage.GetPublicLinkKey(objectKey),
		Caption:  req.Caption,
		FileSize: info.Size,
		MimeType: info.MimeType,
	}
	if err := s.photoRepository.CreatePhoto(ctx, photo); err != nil {
		if delErr := s.storage.DeleteFile(objectKey); delErr != nil {
			log.Errorf("removing orphaned upload %s: %v", objectKey, delErr)
		}
		return domain.PhotoResponse{}, err
	}

	return NewPhotoResponse(photo), nil
}

func (s *photoService) GetPhotos(ctx context.Context, username string) ([]domain.PhotoResponse, error) {
	photos, err := s.photoRepository.GetPhotosByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	res := make([]domain.PhotoResponse, 0, len(photos))
	for _, p := range photos {
		res = append(res, NewPhotoResponse(p))
	}
	return res, nil
}

// DeletePhoto removes the stored file, then the record. A file that cannot be
// removed is logged and left for the janitor.
func (s *photoService) DeletePhoto(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrInvalidID
	}
	photo, err := s.photoRepository.GetPhotoByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPhotoNotFound
		}
		return err
	}

	if photo.Path != "" {
		if err := s.storage.DeleteFile(photo.Path); err != nil {
			log.Warnf("deleting photo file %s: %v", photo.Path, err)
		}
	}

	if err := s.photoRepository.DeletePhoto(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPhotoNotFound
		}
		return err
	}
	return nil
}

func NewPhotoResponse(p *entities.Photo) domain.PhotoResponse {
	return domain.PhotoResponse{
		ID:            p.ID.String(),
		Username:      p.Username,
		FarmerID:      p.FarmerID.String(),
		Filename:      p.Filename,
		Path:          p.Path,
		URL:           p.URL,
		Caption:       p.Caption,
		FileSize:      p.FileSize,
		FileSizeHuman: humanize.IBytes(uint64(p.FileSize)),
		MimeType:      p.MimeType,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
	}
}
