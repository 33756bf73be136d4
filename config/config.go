package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Matcher modes.
const (
	MatcherBestEffort  = "best_effort"
	MatcherConditional = "conditional"
)

// Config holds all configuration values.
type Config struct {
	AppPort            string `mapstructure:"APP_PORT"`
	Env                string `mapstructure:"ENV"`
	LogLevel           string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin  int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	CORSAllowedOrigins string `mapstructure:"CORS_ALLOWED_ORIGINS"`

	// Document store.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Redis configuration.
	RedisAddr           string `mapstructure:"REDIS_ADDR"`
	RedisPassword       string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB        int    `mapstructure:"REDIS_CACHE_DB"`
	RedisCartDB         int    `mapstructure:"REDIS_CART_DB"`
	RedisQueueDB        int    `mapstructure:"REDIS_QUEUE_DB"`
	CartTTLHours        int    `mapstructure:"CART_TTL_HOURS"`
	LastBookingTTLHours int    `mapstructure:"LAST_BOOKING_TTL_HOURS"`

	// Identity and admin access.
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`
	AllowGuests             bool   `mapstructure:"ALLOW_GUESTS"`
	AdminPasswordHash       string `mapstructure:"ADMIN_PASSWORD_HASH"`
	JWTSecret               string `mapstructure:"JWT_SECRET"`
	AdminTokenTTLMinutes    int    `mapstructure:"ADMIN_TOKEN_TTL_MINUTES"`

	// Provider matching.
	MatcherMode        string `mapstructure:"MATCHER_MODE"`
	MatcherMaxAttempts int    `mapstructure:"MATCHER_MAX_ATTEMPTS"`

	// Address lookups.
	PincodeAPIURL        string `mapstructure:"PINCODE_API_URL"`
	ReverseGeocodeAPIURL string `mapstructure:"REVERSE_GEOCODE_API_URL"`
	LookupTimeoutSeconds int    `mapstructure:"LOOKUP_TIMEOUT_SECONDS"`
	LookupCacheTTLHours  int    `mapstructure:"LOOKUP_CACHE_TTL_HOURS"`

	// Cloudinary.
	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`
}

var AppConfig Config

func setDefaults() {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "sevasetu")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_CART_DB", 1)
	viper.SetDefault("REDIS_QUEUE_DB", 2)
	viper.SetDefault("CART_TTL_HOURS", 720)
	viper.SetDefault("LAST_BOOKING_TTL_HOURS", 168)
	viper.SetDefault("FIREBASE_CREDENTIALS_FILE", "serviceAccountKey.json")
	viper.SetDefault("ALLOW_GUESTS", false)
	viper.SetDefault("ADMIN_PASSWORD_HASH", "")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("ADMIN_TOKEN_TTL_MINUTES", 720)
	viper.SetDefault("MATCHER_MODE", MatcherBestEffort)
	viper.SetDefault("MATCHER_MAX_ATTEMPTS", 3)
	viper.SetDefault("PINCODE_API_URL", "https://api.postalpincode.in/pincode")
	viper.SetDefault("REVERSE_GEOCODE_API_URL", "https://nominatim.openstreetmap.org/reverse")
	viper.SetDefault("LOOKUP_TIMEOUT_SECONDS", 5)
	viper.SetDefault("LOOKUP_CACHE_TTL_HOURS", 24)
}

func LoadConfig() {
	// A local .env is optional; real environments inject variables directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := AppConfig.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
}

// Validate reports combinations the services cannot run with.
func (c Config) Validate() error {
	switch c.MatcherMode {
	case MatcherBestEffort, MatcherConditional:
	default:
		return fmt.Errorf("unknown MATCHER_MODE %q", c.MatcherMode)
	}
	if c.MatcherMaxAttempts < 1 {
		return fmt.Errorf("MATCHER_MAX_ATTEMPTS must be positive, got %d", c.MatcherMaxAttempts)
	}
	if c.CartTTLHours < 0 || c.LastBookingTTLHours < 0 {
		return fmt.Errorf("cache TTLs must not be negative")
	}
	return nil
}

func (c Config) CartTTL() time.Duration {
	return time.Duration(c.CartTTLHours) * time.Hour
}

func (c Config) LastBookingTTL() time.Duration {
	return time.Duration(c.LastBookingTTLHours) * time.Hour
}

func (c Config) LookupTimeout() time.Duration {
	return time.Duration(c.LookupTimeoutSeconds) * time.Second
}

func (c Config) LookupCacheTTL() time.Duration {
	return time.Duration(c.LookupCacheTTLHours) * time.Hour
}

func (c Config) AdminTokenTTL() time.Duration {
	return time.Duration(c.AdminTokenTTLMinutes) * time.Minute
}

// AllowedOrigins splits the comma separated CORS origin list.
func (c Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
