package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	defaultOpenAIModel   = "gpt-3.5-turbo"
	defaultGeminiModel   = "gemini-2.5-flash"
	defaultOpenAIBaseURL = "https://api.openai.com/v1"
)

type Config struct {
	Server ServerConfig
	Static StaticConfig
	LLM    LLMConfig
	Upload UploadConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type StaticConfig struct {
	// Dir holds index.html and the static/ asset directory of the front-end build.
	Dir string
}

// LLMConfig is read once at startup and never mutated.
type LLMConfig struct {
	Provider    string
	Model       string
	Temperature float64
	APIKey      string
	BaseURL     string
}

type UploadConfig struct {
	MaxFileSize int64
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using environment and default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8000"),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", "30s"),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", "0s"),
		},
		Static: StaticConfig{
			Dir: getEnv("STATIC_DIR", "./static/build"),
		},
		LLM: loadLLMConfig(),
		Upload: UploadConfig{
			MaxFileSize: getEnvAsInt64("MAX_UPLOAD_SIZE", 10485760),
		},
	}
}

func loadLLMConfig() LLMConfig {
	provider := getEnv("LLM_PROVIDER", ProviderOpenAI)
	temperature := getEnvAsFloat("LLM_TEMPERATURE", 0.5)

	if provider == ProviderGemini {
		return LLMConfig{
			Provider:    provider,
			Model:       getEnv("LLM_MODEL", defaultGeminiModel),
			Temperature: temperature,
			APIKey:      getEnv("GEMINI_API_KEY", ""),
			BaseURL:     getEnv("GEMINI_BASE_URL", ""),
		}
	}

	return LLMConfig{
		Provider:    provider,
		Model:       getEnv("LLM_MODEL", defaultOpenAIModel),
		Temperature: temperature,
		APIKey:      getEnv("OPENAI_API_KEY", ""),
		BaseURL:     getEnv("OPENAI_BASE_URL", defaultOpenAIBaseURL),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
