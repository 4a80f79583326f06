package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v2"
)

const (
	RoleAdmin     = "Admin"
	RoleTeamLead  = "TeamLead"
	RoleDeveloper = "Developer"
)

var (
	AppEnv     string
	LogLevel   string
	ServerPort string

	JwtSecret      string
	Issuer         string
	AccessTokenTTL time.Duration
	ResetTokenTTL  time.Duration
	InvitationTTL  time.Duration

	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	DbSSLMode  string

	CORSOrigins        []string
	RateLimitPerMinute int

	MinioEnabled   bool
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string
	MinioURLExpiry time.Duration

	NatsURL     string
	NatsSubject string

	ActivityRetentionDays int

	// Roles allowed to delete a project.
	ProjectAdminRoles = []string{RoleAdmin}
	// Roles allowed to manage project members and delete tickets.
	ProjectManagerRoles = []string{RoleAdmin, RoleTeamLead}

	ValidRoles = []string{RoleAdmin, RoleTeamLead, RoleDeveloper}
)

// fileValues holds fallbacks read from the optional YAML config file.
var fileValues = map[string]string{}

// LoadConfig reads .env, the optional YAML file named by CONFIG_FILE, and the
// process environment. Environment variables win over the file.
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using environment variables")
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(path); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("failed to read config file")
		}
	}

	AppEnv = getEnv("APP_ENV", "dev")
	LogLevel = getEnv("LOG_LEVEL", "info")
	ServerPort = getEnv("SERVER_PORT", "8080")

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	Issuer = getEnv("ISSUER", "tracker")
	AccessTokenTTL = getDuration("ACCESS_TOKEN_TTL", 30*time.Minute)
	ResetTokenTTL = getDuration("RESET_TOKEN_TTL", 15*time.Minute)
	InvitationTTL = getDuration("INVITATION_TTL", 7*24*time.Hour)

	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "tracker")
	DbSSLMode = getEnv("DB_SSLMODE", "disable")

	CORSOrigins = splitList(getEnv("CORS_ORIGINS", "http://localhost:3000"))
	RateLimitPerMinute = getInt("RATE_LIMIT_PER_MINUTE", 20)

	MinioEnabled = getBool("MINIO_ENABLED", false)
	MinioEndpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	MinioBucket = getEnv("MINIO_BUCKET", "tracker-attachments")
	MinioUseSSL = getBool("MINIO_USE_SSL", false)
	MinioURLExpiry = getDuration("MINIO_URL_EXPIRY", 15*time.Minute)

	NatsURL = getEnv("NATS_URL", "")
	NatsSubject = getEnv("NATS_SUBJECT", "tracker.events")

	ActivityRetentionDays = getInt("ACTIVITY_RETENTION_DAYS", 90)
}

// IsProduction reports whether cookies should be marked Secure.
func IsProduction() bool {
	return AppEnv == "prod" || AppEnv == "production"
}

// IsValidRole reports whether role is one of the global user roles.
func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}

func loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	values := map[string]string{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return err
	}
	fileValues = values
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	if value, ok := fileValues[key]; ok {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, strconv.Itoa(fallback)))
	if err != nil {
		log.Warn().Str("key", key).Msg("invalid integer, using default")
		return fallback
	}
	return v
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(getEnv(key, strconv.FormatBool(fallback)))
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, fallback.String()))
	if err != nil {
		log.Warn().Str("key", key).Msg("invalid duration, using default")
		return fallback
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
