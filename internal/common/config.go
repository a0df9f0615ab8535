package common

import (
	"os"
	"strconv"
	"time"
)

// Provider names, in precedence order.
const (
	ProviderOpenAI    = "openai"
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
)

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Server    ServerConfig
	OCR       OCRConfig
	Providers ProvidersConfig
	Files     FileConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// OCRConfig holds OCR-related configuration
type OCRConfig struct {
	Pdftotext     string
	Pdftoppm      string
	Tesseract     string
	TessdataDir   string
	TesseractLang string
}

// ProviderConfig holds the settings for one LLM provider.
type ProviderConfig struct {
	APIKey string
	Model  string
}

// ProvidersConfig holds per-provider settings plus shared LLM tuning.
type ProvidersConfig struct {
	OpenAI    ProviderConfig
	Gemini    ProviderConfig
	Anthropic ProviderConfig

	Temperature float32
	Timeout     time.Duration
}

// FileConfig holds file validation limits.
type FileConfig struct {
	MaxFileSizeMB int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		OCR: OCRConfig{
			Pdftotext:     getEnv("PDFTOTEXT_BIN", "pdftotext"),
			Pdftoppm:      getEnv("PDFTOPPM_BIN", "pdftoppm"),
			Tesseract:     getEnv("TESSERACT_BIN", "tesseract"),
			TessdataDir:   getEnv("TESSDATA_PREFIX", ""),
			TesseractLang: getEnv("TESSERACT_LANG", "eng"),
		},
		Providers: ProvidersConfig{
			OpenAI: ProviderConfig{
				APIKey: getEnv("OPENAI_API_KEY", ""),
				Model:  getEnv("OPENAI_MODEL", "gpt-4o"),
			},
			Gemini: ProviderConfig{
				APIKey: getEnv("GEMINI_API_KEY", ""),
				Model:  getEnv("GEMINI_MODEL", "gemini-2.0-flash-exp"),
			},
			Anthropic: ProviderConfig{
				APIKey: getEnv("ANTHROPIC_API_KEY", ""),
				Model:  getEnv("ANTHROPIC_MODEL", "claude-3-5-sonnet-20241022"),
			},
			Temperature: getEnvAsFloat32("LLM_TEMPERATURE", 0.1),
			Timeout:     getEnvAsDuration("LLM_TIMEOUT", 45*time.Second),
		},
		Files: FileConfig{
			MaxFileSizeMB: getEnvAsInt("MAX_FILE_SIZE_MB", 10),
		},
	}
}

// HasProvider reports whether at least one LLM provider is configured.
func (c *Config) HasProvider() bool {
	p := c.Providers
	return p.OpenAI.APIKey != "" || p.Gemini.APIKey != "" || p.Anthropic.APIKey != ""
}

// PreferredProvider returns the first configured provider in precedence order
// (openai, then gemini, then anthropic) along with its settings.
func (c *Config) PreferredProvider() (string, ProviderConfig, bool) {
	switch {
	case c.Providers.OpenAI.APIKey != "":
		return ProviderOpenAI, c.Providers.OpenAI, true
	case c.Providers.Gemini.APIKey != "":
		return ProviderGemini, c.Providers.Gemini, true
	case c.Providers.Anthropic.APIKey != "":
		return ProviderAnthropic, c.Providers.Anthropic, true
	default:
		return "", ProviderConfig{}, false
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration for the daemon.
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if !c.HasProvider() {
		return NewAppError("CONFIG_ERROR", "no AI provider configured: set OPENAI_API_KEY, GEMINI_API_KEY, or ANTHROPIC_API_KEY", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	return nil
}
