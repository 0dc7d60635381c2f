package utils

import (
	"errors"
	"log"
	"os"
	"reflect"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server configuration
	AppPort   string `yaml:"APP_PORT"`
	AppURL    string `yaml:"APP_URL"`
	PublicDir string `yaml:"PUBLIC_DIR"`
	LogDir    string `yaml:"LOG_DIR"`
	LogLevel  string `yaml:"LOG_LEVEL"`
	RateLimit string `yaml:"RATE_LIMIT_MAX"`

	// Database configuration
	DBDriver   string `yaml:"DB_DRIVER"`
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	DBPath     string `yaml:"DB_PATH"`
	DBLogMode  string `yaml:"DB_LOG_MODE"`

	// Auth
	AdminUsername string `yaml:"ADMIN_USERNAME"`
	AdminPassword string `yaml:"ADMIN_PASSWORD"`
	BcryptCost    string `yaml:"BCRYPT_COST"`

	// Storage
	StorageDriver   string `yaml:"STORAGE_DRIVER"`
	UploadDir       string `yaml:"UPLOAD_DIR"`
	MaxUploadSizeMB string `yaml:"MAX_UPLOAD_SIZE_MB"`
	JanitorSchedule string `yaml:"JANITOR_SCHEDULE"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`

	// MinIO configuration
	MinioEndpoint  string `yaml:"MINIO_ENDPOINT"`
	MinioAccessKey string `yaml:"MINIO_ACCESS_KEY"`
	MinioSecretKey string `yaml:"MINIO_SECRET_KEY"`
	MinioBucket    string `yaml:"MINIO_BUCKET"`
	MinioUseSSL    string `yaml:"MINIO_USE_SSL"`
	MinioPublicURL string `yaml:"MINIO_PUBLIC_URL"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// Crop prediction model service
	CropModelURL string `yaml:"CROP_MODEL_URL"`
}

var defaults = Config{
	AppPort:         "3000",
	AppURL:          "http://localhost:3000",
	PublicDir:       "./public",
	LogDir:          "./logs",
	LogLevel:        "info",
	RateLimit:       "100",
	DBDriver:        "sqlite",
	DBPath:          "agrifusion.db",
	DBLogMode:       "false",
	AdminUsername:   "admin",
	BcryptCost:      "10",
	StorageDriver:   "local",
	UploadDir:       "./uploads",
	MaxUploadSizeMB: "10",
	JanitorSchedule: "@daily",
	MinioUseSSL:     "false",
}

var config = defaults

// LoadConfig reads .env, then the YAML file at path, then lets the process
// environment override any key. Missing files are not fatal.
func LoadConfig(path string) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Error reading .env file: %s\n", err)
	}

	cfg := defaults
	file, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			log.Printf("Error parsing YAML file: %s\n", err)
		}
	case !errors.Is(err, os.ErrNotExist):
		log.Printf("Error reading YAML file: %s\n", err)
	}

	applyEnv(&cfg)
	fillDefaults(&cfg)
	config = cfg
}

// SetConfig replaces the active configuration; empty keys fall back to defaults.
func SetConfig(cfg Config) {
	fillDefaults(&cfg)
	config = cfg
}

func applyEnv(cfg *Config) {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		if val, ok := os.LookupEnv(t.Field(i).Tag.Get("yaml")); ok {
			v.Field(i).SetString(val)
		}
	}
}

func fillDefaults(cfg *Config) {
	v := reflect.ValueOf(cfg).Elem()
	d := reflect.ValueOf(defaults)
	for i := 0; i < v.NumField(); i++ {
		if v.Field(i).String() == "" {
			v.Field(i).SetString(d.Field(i).String())
		}
	}
}

func GetConfig(key string) string {
	v := reflect.ValueOf(config)
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).Tag.Get("yaml") == key {
			return v.Field(i).String()
		}
	}
	return ""
}

func GetConfigInt(key string, fallback int) int {
	n, err := strconv.Atoi(GetConfig(key))
	if err != nil {
		return fallback
	}
	return n
}

func GetConfigBool(key string) bool {
	b, _ := strconv.ParseBool(GetConfig(key))
	return b
}
