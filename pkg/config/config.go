package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StoreMongo     = "mongo"
	StoreFirestore = "firestore"
	StoreMemory    = "memory"

	IdentityFirebase = "firebase"
	IdentityJWT      = "jwt"

	StorageGCS   = "gcs"
	StorageMinio = "minio"
)

type Config struct {
	ServerPort  string
	Environment string

	StoreDriver   string
	MongoURI      string
	MongoDatabase string

	FirebaseProject            string
	FirebaseServiceAccountJSON string
	FirebaseServiceAccountPath string

	IdentityProvider string
	JWTSecret        string
	JWTExpiry        int64

	StripeSecretKey string
	PaymentCurrency string

	OpenAIAPIKey string
	OpenAIModel  string

	StorageDriver  string
	StorageBucket  string
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool

	RedisURL               string
	RateLimitPerMinute     int
	ChatRateLimitPerMinute int

	AllowedOrigins []string
	// TrustedProxies lists CIDRs whose X-Forwarded-For is honored. Empty means the socket address is used.
	TrustedProxies       []string
	ExposeUpstreamErrors bool
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:  getEnv("SERVER_PORT", "3000"),
		Environment: getEnv("ENVIRONMENT", "development"),

		StoreDriver:   strings.ToLower(getEnv("STORE_DRIVER", StoreMongo)),
		MongoURI:      getEnv("MONGODB_URI", ""),
		MongoDatabase: getEnv("MONGODB_DATABASE", "bazaarTrack"),

		FirebaseProject:            getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseServiceAccountJSON: getEnv("FIREBASE_SERVICE_ACCOUNT_JSON", ""),
		FirebaseServiceAccountPath: getEnv("FIREBASE_SERVICE_ACCOUNT_PATH", ""),

		IdentityProvider: strings.ToLower(getEnv("IDENTITY_PROVIDER", IdentityFirebase)),
		JWTSecret:        getEnv("JWT_SECRET", ""),
		JWTExpiry:        getEnvAsInt64("JWT_EXPIRY", 24*60*60), // 24 hours

		StripeSecretKey: getEnv("STRIPE_SECRET_KEY", ""),
		PaymentCurrency: strings.ToLower(getEnv("PAYMENT_CURRENCY", "usd")),

		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-4o-mini"),

		StorageDriver:  strings.ToLower(getEnv("STORAGE_DRIVER", StorageGCS)),
		StorageBucket:  getEnv("STORAGE_BUCKET", ""),
		MinioEndpoint:  getEnv("MINIO_ENDPOINT", ""),
		MinioAccessKey: getEnv("MINIO_ACCESS_KEY", ""),
		MinioSecretKey: getEnv("MINIO_SECRET_KEY", ""),
		MinioUseSSL:    getEnvAsBool("MINIO_USE_SSL", true),

		RedisURL:               getEnv("REDIS_URL", ""),
		RateLimitPerMinute:     int(getEnvAsInt64("RATE_LIMIT_PER_MINUTE", 120)),
		ChatRateLimitPerMinute: int(getEnvAsInt64("CHAT_RATE_LIMIT_PER_MINUTE", 10)),

		AllowedOrigins:       getEnvAsList("ALLOWED_ORIGINS", []string{"*"}),
		TrustedProxies:       getEnvAsList("TRUSTED_PROXIES", nil),
		ExposeUpstreamErrors: getEnvAsBool("EXPOSE_UPSTREAM_ERRORS", false),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Validate rejects driver selections that cannot start.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case StoreMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("MONGODB_URI is required when STORE_DRIVER=%s", StoreMongo)
		}
	case StoreFirestore:
		if c.FirebaseProject == "" {
			return fmt.Errorf("FIREBASE_PROJECT_ID is required when STORE_DRIVER=%s", StoreFirestore)
		}
	case StoreMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}

	switch c.IdentityProvider {
	case IdentityFirebase:
		if c.FirebaseProject == "" {
			return fmt.Errorf("FIREBASE_PROJECT_ID is required when IDENTITY_PROVIDER=%s", IdentityFirebase)
		}
	case IdentityJWT:
		if c.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET is required when IDENTITY_PROVIDER=%s", IdentityJWT)
		}
	default:
		return fmt.Errorf("unknown IDENTITY_PROVIDER %q", c.IdentityProvider)
	}

	switch c.StorageDriver {
	case StorageGCS:
	case StorageMinio:
		if c.StorageBucket != "" && c.MinioEndpoint == "" {
			return fmt.Errorf("MINIO_ENDPOINT is required when STORAGE_DRIVER=%s", StorageMinio)
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}

	if c.RateLimitPerMinute <= 0 || c.ChatRateLimitPerMinute <= 0 {
		return fmt.Errorf("rate limits must be positive")
	}

	for _, cidr := range c.TrustedProxies {
		if _, _, err := net.ParseCIDR(cidr); err != nil {
			return fmt.Errorf("invalid TRUSTED_PROXIES entry %q: %v", cidr, err)
		}
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		boolValue, err := strconv.ParseBool(value)
		if err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
