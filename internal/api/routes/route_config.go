package routes

import (
	"agrifusion/domain"
	"agrifusion/internal/api/handlers"
	"agrifusion/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                *fiber.App
	FarmerHandler      handlers.FarmerHandler
	SoilTestHandler    handlers.SoilTestHandler
	TransactionHandler handlers.TransactionHandler
	PhotoHandler       handlers.PhotoHandler
	DiseaseHandler     handlers.DiseaseHandler
	StageHandler       handlers.StageHandler
	CropHandler        handlers.CropHandler
	Middleware         middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.Recover())
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Farmer()
	c.SoilTests()
	c.Transactions()
	c.Photos()
	c.DiseaseDetections()
	c.Stages()
}

func (c *Config) GuestRoute() {
	c.App.Get("/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true, "message": domain.MessagePong})
	})
	c.App.Post("/predict-crop", c.CropHandler.PredictCrop)
}

func (c *Config) Farmer() {
	c.App.Post("/register", c.FarmerHandler.Register)
	c.App.Post("/login", c.FarmerHandler.Login)
	c.App.Get("/farmers", c.FarmerHandler.GetFarmers)

	// status must be matched before the bare :id route
	c.App.Put("/farmer/status/:id", c.FarmerHandler.ToggleStatus)
	c.App.Put("/farmer/:id", c.FarmerHandler.UpdateFarmer)
	c.App.Delete("/farmer/:id", c.FarmerHandler.DeleteFarmer)
}

func (c *Config) SoilTests() {
	c.App.Get("/soil-tests/:username", c.SoilTestHandler.GetSoilTests)
	c.App.Post("/soil-test", c.SoilTestHandler.SaveSoilTest)
	c.App.Delete("/soil-test/:id", c.SoilTestHandler.DeleteSoilTest)
}

func (c *Config) Transactions() {
	c.App.Get("/transactions/summary/:username", c.TransactionHandler.GetSummary)
	c.App.Get("/transactions/export/:username", c.TransactionHandler.ExportTransactions)
	c.App.Get("/transactions/:username", c.TransactionHandler.GetTransactions)
	c.App.Post("/transaction", c.TransactionHandler.AddTransaction)
	c.App.Post("/transactions", c.TransactionHandler.AddTransaction)
	c.App.Delete("/transaction/:id", c.TransactionHandler.DeleteTransaction)
	c.App.Delete("/transactions/:id", c.TransactionHandler.DeleteTransaction)
}

func (c *Config) Photos() {
	c.App.Post("/upload-photo", c.PhotoHandler.UploadPhoto)
	c.App.Get("/photos/:username", c.PhotoHandler.GetPhotos)
	c.App.Delete("/photo/:id", c.PhotoHandler.DeletePhoto)
}

func (c *Config) DiseaseDetections() {
	c.App.Post("/save-disease-detection", c.DiseaseHandler.SaveDetection)
	c.App.Get("/disease-detections/:username", c.DiseaseHandler.GetDetections)
	c.App.Get("/disease-stats/:username", c.DiseaseHandler.GetStats)
	c.App.Delete("/disease-detection/:id", c.DiseaseHandler.DeleteDetection)
}

func (c *Config) Stages() {
	stages := c.App.Group("/stages")
	stages.Get("", c.StageHandler.GetStages)
	stages.Get("/layout", c.StageHandler.GetLayout)
	stages.Get("/:key", c.StageHandler.SelectStage)
}
