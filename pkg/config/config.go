package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Scoring  ScoringConfig
	Upload   UploadConfig
	GigaChat GigaChatConfig
	Resume   ResumeConfig
	Logger   LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	AllowOrigins string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int32
}

// Enabled reports whether enough settings are present to open a pool.
func (c DatabaseConfig) Enabled() bool {
	return c.Host != "" && c.DBName != ""
}

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

type AuthConfig struct {
	// JWTSecret verifies access tokens minted by the identity provider.
	JWTSecret string
}

type ScoringConfig struct {
	BaseURL string
	Timeout time.Duration
}

type UploadConfig struct {
	MaxSize int64
	Dir     string
}

type GigaChatConfig struct {
	APIKey             string
	Scope              string
	Model              string
	InsecureSkipVerify bool
}

type ResumeConfig struct {
	MinATSScore float64
}

func Load() (*Config, error) {
	// .env is optional; plain environment variables work for Docker/K8s
	for _, envFile := range []string{".env", "../.env", "../../.env"} {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  getEnvAsSeconds("SERVER_READ_TIMEOUT", 30),
			WriteTimeout: getEnvAsSeconds("SERVER_WRITE_TIMEOUT", 90),
			AllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", ""),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "jobboard"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: int32(getEnvAsInt64("DB_MAX_CONNS", 10)),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("SUPABASE_JWT_SECRET", ""),
		},
		Scoring: ScoringConfig{
			BaseURL: strings.TrimRight(getEnv("SCORING_API_URL", "http://localhost:5328"), "/"),
			Timeout: getEnvAsSeconds("SCORING_TIMEOUT", 60),
		},
		Upload: UploadConfig{
			MaxSize: getEnvAsInt64("MAX_UPLOAD_SIZE", 10<<20),
			Dir:     getEnv("UPLOAD_DIR", "uploads"),
		},
		GigaChat: GigaChatConfig{
			APIKey:             getEnv("GIGACHAT_API_KEY", ""),
			Scope:              getEnv("GIGACHAT_SCOPE", "GIGACHAT_API_PERS"),
			Model:              getEnv("GIGACHAT_MODEL", "GigaChat"),
			InsecureSkipVerify: getEnv("GIGACHAT_INSECURE_SKIP_VERIFY", "false") == "true",
		},
		Resume: ResumeConfig{
			MinATSScore: getEnvAsFloat("RESUME_MIN_ATS_SCORE", 95),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that would make the server misbehave at runtime.
func (c *Config) Validate() error {
	if c.Scoring.BaseURL == "" {
		return errors.New("config error: SCORING_API_URL is required")
	}
	if c.Scoring.Timeout <= 0 {
		return fmt.Errorf("config error: SCORING_TIMEOUT must be positive, got %s", c.Scoring.Timeout)
	}
	if c.Upload.MaxSize <= 0 {
		return fmt.Errorf("config error: MAX_UPLOAD_SIZE must be positive, got %d", c.Upload.MaxSize)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsSeconds(key string, defaultValue int) time.Duration {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		value = defaultValue
	}
	return time.Duration(value) * time.Second
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, err := strconv.ParseInt(getEnv(key, ""), 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, err := strconv.ParseFloat(getEnv(key, ""), 64); err == nil {
		return value
	}
	return defaultValue
}
