package utils

import (
	"os"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server
	AppPort       string `yaml:"APP_PORT"`
	StorageDriver string `yaml:"STORAGE_DRIVER"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// JWT
	JWTSecret string `yaml:"JWT_SECRET"`

	// Mailing configuration
	AppURL           string `yaml:"APP_URL"`
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSS3Prefix  string `yaml:"AWS_S3_PREFIX"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`

	// Remote APIs
	RecipeAPIURL  string `yaml:"RECIPE_API_URL"`
	RecipeAPIKey  string `yaml:"RECIPE_API_KEY"`
	ProductAPIURL string `yaml:"PRODUCT_API_URL"`
}

var config Config

func LoadConfig() {
	LoadConfigFile("config.yaml")
}

func LoadConfigFile(path string) {
	file, err := os.ReadFile(path)
	if err != nil {
		log.Warnf("Error reading YAML file %s, using defaults: %v", path, err)
		return
	}

	if err := ParseConfig(file); err != nil {
		log.Errorf("Error parsing YAML file %s: %v", path, err)
	}
}

// ParseConfig replaces the loaded configuration with the given YAML document.
func ParseConfig(data []byte) error {
	var parsed Config
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return err
	}
	config = parsed
	return nil
}

func GetConfig(key string) string {
	switch key {
	case "APP_PORT":
		return withDefault(config.AppPort, "8080")
	case "STORAGE_DRIVER":
		return strings.ToLower(withDefault(config.StorageDriver, "memory"))
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "JWT_SECRET":
		return config.JWTSecret
	case "APP_URL":
		return config.AppURL
	case "SMTP_HOST":
		return config.SMTPHost
	case "SMTP_PORT":
		return config.SMTPPort
	case "SMTP_SENDER_NAME":
		return config.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		return config.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		return config.SMTPAuthPassword
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_S3_PREFIX":
		return withDefault(config.AWSS3Prefix, "pantry-state")
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	case "RECIPE_API_URL":
		return withDefault(config.RecipeAPIURL, "https://api.spoonacular.com")
	case "RECIPE_API_KEY":
		return config.RecipeAPIKey
	case "PRODUCT_API_URL":
		return withDefault(config.ProductAPIURL, "https://world.openfoodfacts.org")
	default:
		return ""
	}
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
