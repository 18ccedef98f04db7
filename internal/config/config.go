package config

import (
	"net"
	"os"
	"strconv"
	"time"
)

const (
	// StatusProbePort is the default listen port of the status probe service.
	StatusProbePort = "9999"
	// UserStubPort is the default listen port of the health + user stub service.
	UserStubPort = "8888"
)

// AppConfig is the centralized configuration struct for one service process.
// It is populated from environment variables.
type AppConfig struct {
	ServiceName string
	Host        string
	Port        string

	ReadTimeoutSec     int
	WriteTimeoutSec    int
	IdleTimeoutSec     int
	ShutdownTimeoutSec int
	BodyLimitBytes     int

	MetricsEnabled bool
	SwaggerEnabled bool
	TracingEnabled bool

	// TimeZone is the IANA name used for log timestamps.
	TimeZone string
}

// Addr returns the listen address, e.g. "0.0.0.0:9999".
func (c *AppConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// Location resolves TimeZone, falling back to UTC when it is unknown.
func (c *AppConfig) Location() *time.Location {
	if c.TimeZone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ShutdownTimeout is ShutdownTimeoutSec as a duration.
func (c *AppConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSec) * time.Second
}

// LoadStatusProbe reads configuration for the status probe service.
func LoadStatusProbe() *AppConfig {
	return load("statusprobe", StatusProbePort)
}

// LoadUserStub reads configuration for the health + user stub service.
func LoadUserStub() *AppConfig {
	return load("userstub", UserStubPort)
}

// load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// Real environment variables take precedence.
func load(serviceName, port string) *AppConfig {
	return &AppConfig{
		ServiceName:        getEnv("OTEL_SERVICE_NAME", serviceName),
		Host:               getEnv("HOST", "0.0.0.0"),
		Port:               getEnv("PORT", port),
		ReadTimeoutSec:     getEnvInt("HTTP_READ_TIMEOUT_SEC", 10),
		WriteTimeoutSec:    getEnvInt("HTTP_WRITE_TIMEOUT_SEC", 10),
		IdleTimeoutSec:     getEnvInt("HTTP_IDLE_TIMEOUT_SEC", 60),
		ShutdownTimeoutSec: getEnvInt("SHUTDOWN_TIMEOUT_SEC", 5),
		BodyLimitBytes:     getEnvInt("BODY_LIMIT_BYTES", 4*1024*1024),
		MetricsEnabled:     getEnvBool("METRICS_ENABLED", true),
		SwaggerEnabled:     getEnvBool("SWAGGER_ENABLED", true),
		TracingEnabled:     getEnvBool("TRACING_ENABLED", false),
		TimeZone:           getEnv("LOG_TIMEZONE", "UTC"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
