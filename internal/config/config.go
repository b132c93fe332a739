package config

import (
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Region          string
	PublicBaseURL   string
}

type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

type Config struct {
	Port           string
	Environment    string
	DataDir        string
	PublicDir      string
	FrontendURL    string
	JWTSecret      string
	StorageBackend string // "local" or "r2"
	OpenAI         OpenAIConfig
	CorsConfig     cors.Options
	R2             R2Config
}

var Envs = initConfig()

func initConfig() Config {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("No", envFile, "file found")
	}

	return Config{
		Port:           getEnv("PORT", "3000"),
		Environment:    getEnv("ENV", "development"),
		DataDir:        getEnv("DATA_DIR", "."),
		PublicDir:      getEnv("PUBLIC_DIR", "public"),
		FrontendURL:    getEnv("FRONTEND_URL", "http://localhost:3000"),
		JWTSecret:      getEnv("JWT_SECRET", "not-so-secret-now-is-it?"),
		StorageBackend: getEnv("STORAGE_BACKEND", "local"),
		OpenAI: OpenAIConfig{
			APIKey:  getEnv("OPENAI_API_KEY", ""),
			BaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com"),
			Model:   getEnv("OPENAI_MODEL", "text-davinci-003"),
		},
		CorsConfig: CorsConfig(),
		R2: R2Config{
			AccountID:       getEnv("R2_ACCOUNT_ID", ""),
			AccessKeyID:     getEnv("R2_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("R2_SECRET_ACCESS_KEY", ""),
			BucketName:      getEnv("R2_BUCKET_NAME", ""),
			Region:          getEnv("R2_REGION", "auto"),
			PublicBaseURL:   getEnv("R2_PUBLIC_BASE_URL", ""),
		},
	}
}

// Gets the env by key or fallbacks
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func CorsConfig() cors.Options {
	origins := strings.Split(getEnv("CORS_ORIGINS", "*"), ",")
	return cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}
}
