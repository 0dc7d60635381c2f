package soil

import (
	"context"
	"errors"

	"agrifusion/domain"
	"agrifusion/entities"
	"agrifusion/internal/utils"
	"agrifusion/pkg/crop"
	"agrifusion/pkg/farmer"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	SoilTestService interface {
		GetSoilTests(ctx context.Context, username string) (domain.SoilTestsResponse, error)
		SaveSoilTest(ctx context.Context, req domain.SaveSoilTestRequest) (*entities.SoilTest, error)
		DeleteSoilTest(ctx context.Context, id string) error
	}

	soilTestService struct {
		soilTestRepository SoilTestRepository
		farmerService      farmer.FarmerService
		cropService        crop.CropService
	}
)

// NewSoilTestService accepts a nil cropService when no crop model is deployed.
func NewSoilTestService(soilTestRepository SoilTestRepository, farmerService farmer.FarmerService, cropService crop.CropService) SoilTestService {
	return &soilTestService{
		soilTestRepository: soilTestRepository,
		farmerService:      farmerService,
		cropService:        cropService,
	}
}

func (s *soilTestService) GetSoilTests(ctx context.Context, username string) (domain.SoilTestsResponse, error) {
	f, err := s.farmerService.GetByUsername(ctx, username)
	if err != nil {
		return domain.SoilTestsResponse{}, err
	}

	tests, err := s.soilTestRepository.GetSoilTestsByUsername(ctx, username)
	if err != nil {
		return domain.SoilTestsResponse{}, err
	}

	return domain.SoilTestsResponse{
		RegistrationData: f.SoilDetails,
		TestHistory:      tests,
	}, nil
}

func (s *soilTestService) SaveSoilTest(ctx context.Context, req domain.SaveSoilTestRequest) (*entities.SoilTest, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	testDate, err := utils.ParseDate(req.TestDate)
	if err != nil {
		return nil, domain.ErrInvalidTestDate
	}

	f, err := s.farmerService.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}

	test := &entities.SoilTest{
		ID:            uuid.New(),
		Username:      f.Username,
		FarmerID:      f.ID,
		N:             req.N.Float64(),
		P:             req.P.Float64(),
		K:             req.K.Float64(),
		Temperature:   req.Temperature.Float64(),
		Humidity:      req.Humidity.Float64(),
		Ph:            req.Ph.Float64(),
		Moisture:      domain.FloatPtr(req.Moisture),
		Rainfall:      domain.FloatPtr(req.Rainfall),
		PredictedCrop: req.PredictedCrop,
		TestDate:      testDate,
		Notes:         req.Notes,
	}
	s.suggestCrop(ctx, test)

	if err := s.soilTestRepository.CreateSoilTest(ctx, test); err != nil {
		return nil, err
	}
	return test, nil
}

// suggestCrop fills PredictedCrop from the crop model when the caller left it
// empty; failures leave the test unchanged.
func (s *soilTestService) suggestCrop(ctx context.Context, test *entities.SoilTest) {
	if test.PredictedCrop != "" || test.Rainfall == nil || s.cropService == nil || !s.cropService.Enabled() {
		return
	}
	prediction, err := s.cropService.Predict(ctx, crop.Features{
		N:           test.N,
		P:           test.P,
		K:           test.K,
		Temperature: test.Temperature,
		Humidity:    test.Humidity,
		Ph:          test.Ph,
		Rainfall:    *test.Rainfall,
	})
	if err != nil {
		log.Warnf("crop suggestion for %s skipped: %v", test.Username, err)
		return
	}
	test.PredictedCrop = prediction
}

func (s *soilTestService) DeleteSoilTest(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrInvalidID
	}
	if err := s.soilTestRepository.DeleteSoilTest(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrSoilTestNotFound
		}
		return err
	}
	return nil
}
