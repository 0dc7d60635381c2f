package disease

import (
	"context"
	"errors"

	"agrifusion/domain"
	"agrifusion/entities"
	"agrifusion/internal/utils"
	"agrifusion/internal/utils/storage"
	"agrifusion/pkg/farmer"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const Folder = "diseases"

type (
	DiseaseService interface {
		SaveDetection(ctx context.Context, req domain.SaveDiseaseDetectionRequest) (*entities.DiseaseDetection, error)
		GetDetections(ctx context.Context, username string) ([]*entities.DiseaseDetection, error)
		DeleteDetection(ctx context.Context, id string) error
		GetStats(ctx context.Context, username string) (domain.DiseaseStats, error)
	}

	diseaseService struct {
		diseaseRepository DiseaseRepository
		farmerService     farmer.FarmerService
		storage           storage.Storage
		maxSize           int64
	}
)

func NewDiseaseService(diseaseRepository DiseaseRepository, farmerService farmer.FarmerService, store storage.Storage, maxSize int64) DiseaseService {
	return &diseaseService{
		diseaseRepository: diseaseRepository,
		farmerService:     farmerService,
		storage:           store,
		maxSize:           maxSize,
	}
}

func (s *diseaseService) SaveDetection(ctx context.Context, req domain.SaveDiseaseDetectionRequest) (*entities.DiseaseDetection, error) {
	if _, err := storage.Inspect(req.Image, s.maxSize, storage.AllowImage...); err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	if err := domain.CheckFinite("confidence", req.Confidence); err != nil {
		return nil, err
	}

	f, err := s.farmerService.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}

	objectKey, err := s.storage.UploadFile(req.Image, Folder, storage.AllowImage...)
	if err != nil {
		return nil, err
	}

	pesticides := req.Pesticides
	if pesticides == nil {
		pesticides = []entities.Pesticide{}
	}
	detection := &entities.DiseaseDetection{
		ID:               uuid.New(),
		Username:         f.Username,
		FarmerID:         f.ID,
		Filename:         req.Image.Filename,
		Path:             objectKey,
		URL:              s.storage.GetPublicLinkKey(objectKey),
		Crop:             req.Crop,
		DetectedDisease:  req.DetectedDisease,
		IsHealthy:        req.IsHealthy,
		Confidence:       req.Confidence,
		Solution:         req.Solution,
		OrganicTreatment: req.OrganicTreatment,
		Pesticides:       datatypes.NewJSONSlice(pesticides),
	}
	if err := s.diseaseRepository.CreateDetection(ctx, detection); err != nil {
		if delErr := s.storage.DeleteFile(objectKey); delErr != nil {
			log.Errorf("removing orphaned upload %s: %v", objectKey, delErr)
		}
		return nil, err
	}
	return detection, nil
}

func (s *diseaseService) GetDetections(ctx context.Context, username string) ([]*entities.DiseaseDetection, error) {
	return s.diseaseRepository.GetDetectionsByUsername(ctx, username)
}

func (s *diseaseService) DeleteDetection(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrInvalidID
	}
	detection, err := s.diseaseRepository.GetDetectionByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrDetectionNotFound
		}
		return err
	}

	if detection.Path != "" {
		if err := s.storage.DeleteFile(detection.Path); err != nil {
			log.Warnf("deleting detection image %s: %v", detection.Path, err)
		}
	}

	if err := s.diseaseRepository.DeleteDetection(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrDetectionNotFound
		}
		return err
	}
	return nil
}

func (s *diseaseService) GetStats(ctx context.Context, username string) (domain.DiseaseStats, error) {
	detections, err := s.diseaseRepository.GetDetectionsByUsername(ctx, username)
	if err != nil {
		return domain.DiseaseStats{}, err
	}
	return Stats(detections), nil
}

// Stats counts disease names over diseased detections only; unnamed ones
// count as diseased but not by type.
func Stats(detections []*entities.DiseaseDetection) domain.DiseaseStats {
	healthy, diseased := lo.FilterReject(detections, func(d *entities.DiseaseDetection, _ int) bool {
		return d.IsHealthy
	})
	named := lo.Filter(diseased, func(d *entities.DiseaseDetection, _ int) bool {
		return d.DetectedDisease != ""
	})
	return domain.DiseaseStats{
		TotalDetections: len(detections),
		HealthyCount:    len(healthy),
		DiseasedCount:   len(diseased),
		DiseaseTypes: lo.CountValuesBy(named, func(d *entities.DiseaseDetection) string {
			return d.DetectedDisease
		}),
	}
}
