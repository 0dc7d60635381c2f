package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"agrifusion/internal/api/handlers"
	"agrifusion/internal/api/presenters"
	"agrifusion/internal/api/routes"
	"agrifusion/internal/middleware"
	"agrifusion/internal/utils"
	"agrifusion/internal/utils/mailing"
	"agrifusion/internal/utils/storage"
	"agrifusion/pkg/crop"
	"agrifusion/pkg/disease"
	"agrifusion/pkg/farmer"
	"agrifusion/pkg/janitor"
	"agrifusion/pkg/photo"
	"agrifusion/pkg/soil"
	"agrifusion/pkg/transaction"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

const janitorGrace = 24 * time.Hour

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	log.SetLevel(logLevel(utils.GetConfig("LOG_LEVEL")))

	maxUpload := int64(utils.GetConfigInt("MAX_UPLOAD_SIZE_MB", 10)) << 20
	app := fiber.New(fiber.Config{
		BodyLimit:    int(maxUpload) + 1<<20,
		ErrorHandler: presenters.ErrorHandler,
	})
	middlewares := middleware.NewMiddleware()

	// setting up logging and limiter
	logDir := utils.GetConfig("LOG_DIR")
	if err := os.MkdirAll(logDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("creating logs directory: %w", err)
	}
	file, err := os.OpenFile(
		filepath.Join(logDir, "app.log"),
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	app.Hooks().OnShutdown(file.Close)
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Local",
		Output:     io.MultiWriter(file, os.Stdout),
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        utils.GetConfigInt("RATE_LIMIT_MAX", 100),
		Expiration: 1 * time.Second,
	}))

	// utils
	store, local, err := NewStorage(maxUpload)
	if err != nil {
		return nil, err
	}
	var welcome farmer.WelcomeSender
	if mailConfig := mailing.LoadMailConfig(); mailConfig.Enabled() {
		welcome = mailing.NewMailer(mailConfig)
	}

	// Repository
	farmerRepository := farmer.NewFarmerRepository(db)
	soilTestRepository := soil.NewSoilTestRepository(db)
	transactionRepository := transaction.NewTransactionRepository(db)
	photoRepository := photo.NewPhotoRepository(db)
	diseaseRepository := disease.NewDiseaseRepository(db)

	// Service
	farmerService := farmer.NewFarmerService(farmerRepository, farmer.Config{
		AdminUsername: utils.GetConfig("ADMIN_USERNAME"),
		AdminPassword: utils.GetConfig("ADMIN_PASSWORD"),
		BcryptCost:    utils.GetConfigInt("BCRYPT_COST", 10),
		Welcome:       welcome,
	})
	cropService := crop.NewCropService(utils.GetConfig("CROP_MODEL_URL"), 10*time.Second)
	soilTestService := soil.NewSoilTestService(soilTestRepository, farmerService, cropService)
	transactionService := transaction.NewTransactionService(transactionRepository, farmerService)
	photoService := photo.NewPhotoService(photoRepository, farmerService, store, maxUpload)
	diseaseService := disease.NewDiseaseService(diseaseRepository, farmerService, store, maxUpload)

	// Handler
	routesConfig := routes.Config{
		App:                app,
		FarmerHandler:      handlers.NewFarmerHandler(farmerService),
		SoilTestHandler:    handlers.NewSoilTestHandler(soilTestService),
		TransactionHandler: handlers.NewTransactionHandler(transactionService),
		PhotoHandler:       handlers.NewPhotoHandler(photoService),
		DiseaseHandler:     handlers.NewDiseaseHandler(diseaseService),
		StageHandler:       handlers.NewStageHandler(),
		CropHandler:        handlers.NewCropHandler(cropService),
		Middleware:         middlewares,
	}
	routesConfig.Setup()

	if local != nil {
		app.Static(strings.TrimSuffix(storage.PublicPrefix, "/"), local.Root())

		if schedule := utils.GetConfig("JANITOR_SCHEDULE"); schedule != "" {
			j := janitor.NewJanitorService(local, []string{photo.Folder, disease.Folder}, janitorGrace,
				photoRepository, diseaseRepository)
			if err := j.Start(schedule); err != nil {
				return nil, fmt.Errorf("starting upload janitor: %w", err)
			}
			app.Hooks().OnShutdown(func() error {
				j.Stop()
				return nil
			})
		}
	}
	app.Static("/", utils.GetConfig("PUBLIC_DIR"))
	app.Use(func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})

	return app, nil
}

// NewStorage picks the upload backend from STORAGE_DRIVER. The second result
// is set only for local disk, which the app serves itself.
func NewStorage(maxUpload int64) (storage.Storage, *storage.LocalStorage, error) {
	switch driver := utils.GetConfig("STORAGE_DRIVER"); driver {
	case "local":
		local, err := storage.NewLocalStorage(utils.GetConfig("UPLOAD_DIR"), utils.GetConfig("APP_URL"), maxUpload)
		if err != nil {
			return nil, nil, err
		}
		return local, local, nil
	case "s3":
		s3, err := storage.NewAwsS3(storage.S3Config{
			Bucket:    utils.GetConfig("AWS_S3_BUCKET"),
			Region:    utils.GetConfig("AWS_S3_REGION"),
			AccessKey: utils.GetConfig("AWS_ACCESS_KEY"),
			SecretKey: utils.GetConfig("AWS_SECRET_KEY"),
			MaxSize:   maxUpload,
		})
		if err != nil {
			return nil, nil, err
		}
		return s3, nil, nil
	case "minio":
		m, err := storage.NewMinioStorage(storage.MinioConfig{
			Endpoint:  utils.GetConfig("MINIO_ENDPOINT"),
			AccessKey: utils.GetConfig("MINIO_ACCESS_KEY"),
			SecretKey: utils.GetConfig("MINIO_SECRET_KEY"),
			Bucket:    utils.GetConfig("MINIO_BUCKET"),
			UseSSL:    utils.GetConfigBool("MINIO_USE_SSL"),
			PublicURL: utils.GetConfig("MINIO_PUBLIC_URL"),
			MaxSize:   maxUpload,
		})
		if err != nil {
			return nil, nil, err
		}
		return m, nil, nil
	default:
		return nil, nil, fmt.Errorf("unsupported STORAGE_DRIVER %q", driver)
	}
}

func logLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "trace":
		return log.LevelTrace
	case "debug":
		return log.LevelDebug
	case "warn":
		return log.LevelWarn
	case "error":
		return log.LevelError
	default:
		return log.LevelInfo
	}
}
