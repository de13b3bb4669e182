// Package config loads service configuration from environment variables.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Settings holds all service configuration apart from the database, which
// is loaded by pkg/database from its own DB_* variables.
type Settings struct {
	// RabbitMQ connection
	RabbitMQHost     string
	RabbitMQPort     int
	RabbitMQUser     string
	RabbitMQPassword string
	RabbitMQVHost    string

	// GROBID PDF extraction service
	GrobidURL     string
	GrobidTimeout time.Duration

	// Gemini text-generation API
	GeminiAPIKey    string
	GeminiModel     string
	GeminiRateLimit int // requests per minute

	// Paper search
	SearchMaxResults int
	SearchTimeout    time.Duration

	// Gap analysis tuning
	MinGapsPerPaper  int
	MaxGapsPerPaper  int
	ValidationPapers int

	// OperationTimeout bounds the processing of a single bus message,
	// including every external call made on its behalf.
	OperationTimeout time.Duration

	// HTTP surface
	APIHost string
	APIPort int

	LogLevel string
}

// Load reads settings from the environment, applying defaults for
// everything that has a sensible one. Validation is separate so tests
// can construct partial settings.
func Load() (*Settings, error) {
	rabbitPort, err := strconv.Atoi(getEnv("RABBITMQ_PORT", "5672"))
	if err != nil {
		return nil, fmt.Errorf("invalid RABBITMQ_PORT: %w", err)
	}

	rateLimit, err := strconv.Atoi(getEnv("GA_GEMINI_RATE_LIMIT", "2"))
	if err != nil {
		return nil, fmt.Errorf("invalid GA_GEMINI_RATE_LIMIT: %w", err)
	}

	validationPapers, err := strconv.Atoi(getEnv("GAP_VALIDATION_PAPERS", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid GAP_VALIDATION_PAPERS: %w", err)
	}

	searchMax, err := strconv.Atoi(getEnv("SEARCH_MAX_RESULTS", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid SEARCH_MAX_RESULTS: %w", err)
	}

	timeoutSecs, err := strconv.Atoi(getEnv("ASYNC_TIMEOUT", "300"))
	if err != nil {
		return nil, fmt.Errorf("invalid ASYNC_TIMEOUT: %w", err)
	}

	grobidTimeoutSecs, err := strconv.Atoi(getEnv("GROBID_TIMEOUT", "120"))
	if err != nil {
		return nil, fmt.Errorf("invalid GROBID_TIMEOUT: %w", err)
	}

	searchTimeoutSecs, err := strconv.Atoi(getEnv("SEARCH_TIMEOUT", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid SEARCH_TIMEOUT: %w", err)
	}

	apiPort, err := strconv.Atoi(getEnv("API_PORT", "8003"))
	if err != nil {
		return nil, fmt.Errorf("invalid API_PORT: %w", err)
	}

	return &Settings{
		RabbitMQHost:     getEnv("RABBITMQ_HOST", "localhost"),
		RabbitMQPort:     rabbitPort,
		RabbitMQUser:     os.Getenv("RABBITMQ_USER"),
		RabbitMQPassword: os.Getenv("RABBITMQ_PASSWORD"),
		RabbitMQVHost:    getEnv("RABBITMQ_VHOST", "/"),

		GrobidURL:     strings.TrimRight(os.Getenv("GROBID_URL"), "/"),
		GrobidTimeout: time.Duration(grobidTimeoutSecs) * time.Second,

		GeminiAPIKey:    os.Getenv("GA_GEMINI_API_KEY"),
		GeminiModel:     getEnv("GA_GEMINI_MODEL", "gemini-2.0-flash-exp"),
		GeminiRateLimit: rateLimit,

		SearchMaxResults: searchMax,
		SearchTimeout:    time.Duration(searchTimeoutSecs) * time.Second,

		MinGapsPerPaper:  3,
		MaxGapsPerPaper:  7,
		ValidationPapers: validationPapers,

		OperationTimeout: time.Duration(timeoutSecs) * time.Second,

		APIHost: getEnv("API_HOST", "0.0.0.0"),
		APIPort: apiPort,

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}, nil
}

// Validate checks that every setting without a usable default is present.
func (s *Settings) Validate() error {
	var missing []string

	if s.GeminiAPIKey == "" {
		missing = append(missing, "GA_GEMINI_API_KEY")
	}
	if s.GrobidURL == "" {
		missing = append(missing, "GROBID_URL")
	}
	if s.RabbitMQUser == "" {
		missing = append(missing, "RABBITMQ_USER")
	}
	if s.RabbitMQPassword == "" {
		missing = append(missing, "RABBITMQ_PASSWORD")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

// BusURL builds the AMQP connection URI. Credentials and vhost are
// URL-escaped so passwords containing '@' or '/' survive parsing.
func (s *Settings) BusURL() string {
	vhost := s.RabbitMQVHost
	if !strings.HasPrefix(vhost, "/") {
		vhost = "/" + vhost
	}
	u := url.URL{
		Scheme: "amqp",
		User:   url.UserPassword(s.RabbitMQUser, s.RabbitMQPassword),
		Host:   fmt.Sprintf("%s:%d", s.RabbitMQHost, s.RabbitMQPort),
		Path:   vhost,
	}
	return u.String()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
