package farmer

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"agrifusion/domain"
	"agrifusion/entities"
	"agrifusion/internal/utils"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	FarmerService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.FarmerResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		GetFarmers(ctx context.Context) ([]domain.FarmerResponse, error)
		DeleteFarmer(ctx context.Context, id string) error
		ToggleStatus(ctx context.Context, id string) (domain.FarmerResponse, error)
		UpdateFarmer(ctx context.Context, id string, req domain.UpdateFarmerRequest) (domain.FarmerResponse, error)

		// GetByUsername is the existence check shared by every per-farmer service.
		GetByUsername(ctx context.Context, username string) (*entities.Farmer, error)
	}

	WelcomeSender interface {
		SendWelcome(toEmail, name, username string) error
	}

	Config struct {
		AdminUsername string
		// AdminPassword empty disables the admin login.
		AdminPassword string
		BcryptCost    int
		Welcome       WelcomeSender
	}

	farmerService struct {
		farmerRepository FarmerRepository
		cfg              Config
	}
)

func NewFarmerService(farmerRepository FarmerRepository, cfg Config) FarmerService {
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	return &farmerService{
		farmerRepository: farmerRepository,
		cfg:              cfg,
	}
}

func (s *farmerService) Register(ctx context.Context, req domain.RegisterRequest) (domain.FarmerResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return domain.FarmerResponse{}, err
	}

	if s.cfg.AdminUsername != "" && req.Username == s.cfg.AdminUsername {
		return domain.FarmerResponse{}, domain.ErrDuplicateUsername
	}
	_, err := s.farmerRepository.GetFarmerByUsername(ctx, req.Username)
	if err == nil {
		return domain.FarmerResponse{}, domain.ErrDuplicateUsername
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.FarmerResponse{}, err
	}

	hash, err := s.hashPassword(req.Password)
	if err != nil {
		return domain.FarmerResponse{}, err
	}

	farmer := &entities.Farmer{
		ID:           uuid.New(),
		Username:     req.Username,
		PasswordHash: hash,
		Role:         req.Role,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Age:          req.Age,
		Address:      req.Address,
		CropChosen:   req.CropChosen,
		Status:       entities.StatusActive,
	}
	if req.LandDetails != nil {
		farmer.LandDetails = req.LandDetails.Entity()
	}
	if req.SoilDetails != nil {
		req.SoilDetails.Apply(&farmer.SoilDetails)
	}

	if err := s.farmerRepository.CreateFarmer(ctx, farmer); err != nil {
		// lost a race with a concurrent register of the same username
		if _, lookupErr := s.farmerRepository.GetFarmerByUsername(ctx, req.Username); lookupErr == nil {
			return domain.FarmerResponse{}, domain.ErrDuplicateUsername
		}
		return domain.FarmerResponse{}, err
	}

	s.sendWelcome(farmer)
	return domain.NewFarmerResponse(farmer), nil
}

func (s *farmerService) sendWelcome(farmer *entities.Farmer) {
	if s.cfg.Welcome == nil || farmer.Email == "" {
		return
	}
	email, name, username := farmer.Email, farmer.Name, farmer.Username
	go func() {
		if err := s.cfg.Welcome.SendWelcome(email, name, username); err != nil {
			log.Warnf("welcome mail to %s failed: %v", username, err)
		}
	}()
}

func (s *farmerService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return domain.LoginResponse{}, err
	}

	if s.cfg.AdminUsername != "" && req.Username == s.cfg.AdminUsername {
		if s.cfg.AdminPassword == "" ||
			subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.cfg.AdminPassword)) != 1 {
			return domain.LoginResponse{}, domain.ErrInvalidCredentials
		}
		return domain.LoginResponse{Role: entities.RoleAdmin, Username: req.Username}, nil
	}

	farmer, err := s.GetByUsername(ctx, req.Username)
	if err != nil {
		return domain.LoginResponse{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(farmer.PasswordHash), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	return domain.LoginResponse{Role: farmer.Role, Username: farmer.Username}, nil
}

func (s *farmerService) GetFarmers(ctx context.Context) ([]domain.FarmerResponse, error) {
	farmers, err := s.farmerRepository.GetFarmers(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]domain.FarmerResponse, 0, len(farmers))
	for _, f := range farmers {
		res = append(res, domain.NewFarmerResponse(f))
	}
	return res, nil
}

func (s *farmerService) DeleteFarmer(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrInvalidID
	}
	if err := s.farmerRepository.DeleteFarmer(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFarmerNotFound
		}
		return err
	}
	return nil
}

func (s *farmerService) ToggleStatus(ctx context.Context, id string) (domain.FarmerResponse, error) {
	farmer, err := s.getByID(ctx, id)
	if err != nil {
		return domain.FarmerResponse{}, err
	}

	if farmer.Status == entities.StatusActive {
		farmer.Status = entities.StatusInactive
	} else {
		farmer.Status = entities.StatusActive
	}

	if err := s.farmerRepository.UpdateFarmer(ctx, farmer); err != nil {
		return domain.FarmerResponse{}, err
	}
	return domain.NewFarmerResponse(farmer), nil
}

func (s *farmerService) UpdateFarmer(ctx context.Context, id string, req domain.UpdateFarmerRequest) (domain.FarmerResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return domain.FarmerResponse{}, err
	}

	farmer, err := s.getByID(ctx, id)
	if err != nil {
		return domain.FarmerResponse{}, err
	}

	if req.Password != nil {
		hash, err := s.hashPassword(*req.Password)
		if err != nil {
			return domain.FarmerResponse{}, err
		}
		farmer.PasswordHash = hash
	}
	assign(&farmer.Name, req.Name)
	assign(&farmer.Email, req.Email)
	assign(&farmer.Phone, req.Phone)
	assign(&farmer.Age, req.Age)
	assign(&farmer.Address, req.Address)
	assign(&farmer.CropChosen, req.CropChosen)
	assign(&farmer.Status, req.Status)
	if req.LandDetails != nil {
		farmer.LandDetails = req.LandDetails.Entity()
	}
	if req.SoilDetails != nil {
		req.SoilDetails.Apply(&farmer.SoilDetails)
	}

	if err := s.farmerRepository.UpdateFarmer(ctx, farmer); err != nil {
		return domain.FarmerResponse{}, err
	}
	return domain.NewFarmerResponse(farmer), nil
}

func (s *farmerService) GetByUsername(ctx context.Context, username string) (*entities.Farmer, error) {
	farmer, err := s.farmerRepository.GetFarmerByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFarmerNotFound
		}
		return nil, err
	}
	return farmer, nil
}

func (s *farmerService) getByID(ctx context.Context, id string) (*entities.Farmer, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrInvalidID
	}
	farmer, err := s.farmerRepository.GetFarmerByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFarmerNotFound
		}
		return nil, err
	}
	return farmer, nil
}

func (s *farmerService) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrHashPassword, err)
	}
	return string(hash), nil
}

func assign(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
