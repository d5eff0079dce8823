package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App AppConfig
	Ai  AIConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	DataDir            string
}

type AIConfig struct {
	LLMProvider       string // "openai", "ollama" or "none"
	LLMModel          string // e.g. "gpt-3.5-turbo", "llama3"
	OllamaBaseURL     string
	OpenAIAPIKey      string
	OpenAIBaseURL     string
	CompletionTimeout int // seconds
	MaxTokens         int
	Temperature       float64
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			DataDir:            getEnv("DATA_DIR", "data"),
		},
		Ai: AIConfig{
			LLMProvider:       getEnv("LLM_PROVIDER", "none"),
			LLMModel:          getEnv("LLM_MODEL", ""),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
			OpenAIBaseURL:     getEnv("OPENAI_BASE_URL", ""),
			CompletionTimeout: getEnvAsInt("COMPLETION_TIMEOUT_SECONDS", 10),
			MaxTokens:         getEnvAsInt("AI_MAX_TOKENS", 150),
			Temperature:       getEnvAsFloat("AI_TEMPERATURE", 0.7),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
