package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage backends selectable with STORE_BACKEND.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	StoreBackend   string
	MigrationsPath string
	SQLitePath     string

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Single operator account; the hash is bcrypt.
	OperatorUsername     string
	OperatorPasswordHash string

	LedgerStrictAccounts bool
	DefaultIndustry      string
	SalesCashAccountCode string
	SalesRevenueCode     string

	RateLimit          string
	LoginRateLimit     string
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("STORE_BACKEND", StoreMemory)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("SQLITE_PATH", "data/erp_ledger.db")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_EXPIRY_DURATION", "1h")
	v.SetDefault("JWT_ISSUER", "erp-ledger")
	v.SetDefault("OPERATOR_USERNAME", "admin")
	v.SetDefault("OPERATOR_PASSWORD_HASH", "")
	v.SetDefault("LEDGER_STRICT_ACCOUNTS", false)
	v.SetDefault("DEFAULT_INDUSTRY", "retail")
	v.SetDefault("SALES_CASH_ACCOUNT_CODE", "1000")
	v.SetDefault("SALES_REVENUE_ACCOUNT_CODE", "4000")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		DatabaseURL:          v.GetString("PGSQL_URL"),
		Port:                 v.GetString("PORT"),
		IsProduction:         v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:        v.GetBool("ENABLE_DB_CHECK"),
		StoreBackend:         strings.ToLower(strings.TrimSpace(v.GetString("STORE_BACKEND"))),
		MigrationsPath:       v.GetString("MIGRATIONS_PATH"),
		SQLitePath:           v.GetString("SQLITE_PATH"),
		JWTSecret:            v.GetString("JWT_SECRET"),
		JWTIssuer:            v.GetString("JWT_ISSUER"),
		OperatorUsername:     v.GetString("OPERATOR_USERNAME"),
		OperatorPasswordHash: v.GetString("OPERATOR_PASSWORD_HASH"),
		LedgerStrictAccounts: v.GetBool("LEDGER_STRICT_ACCOUNTS"),
		DefaultIndustry:      v.GetString("DEFAULT_INDUSTRY"),
		SalesCashAccountCode: v.GetString("SALES_CASH_ACCOUNT_CODE"),
		SalesRevenueCode:     v.GetString("SALES_REVENUE_ACCOUNT_CODE"),
		RateLimit:            v.GetString("RATE_LIMIT"),
		LoginRateLimit:       v.GetString("LOGIN_RATE_LIMIT"),
		CORSAllowedOrigins:   splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	// Load JWT Expiry Duration (e.g., "60m", "1h")
	jwtExpiryStr := v.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil || jwtExpiryDuration <= 0 {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	switch cfg.StoreBackend {
	case StoreMemory:
	case StorePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL is required when STORE_BACKEND=%s", StorePostgres)
		}
	case StoreSQLite:
		if cfg.SQLitePath == "" {
			return nil, fmt.Errorf("SQLITE_PATH is required when STORE_BACKEND=%s", StoreSQLite)
		}
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q (want %s, %s or %s)", cfg.StoreBackend, StoreMemory, StorePostgres, StoreSQLite)
	}

	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = defaultJWTSecret
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	if cfg.OperatorPasswordHash == "" {
		log.Println("Warning: OPERATOR_PASSWORD_HASH not set. Login is disabled.")
	}

	return cfg, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
