package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvAPIKey       = "MW_API_KEY"
	EnvPassphrase   = "MW_API_PASSPHRASE"
	EnvMerchantUUID = "MW_MERCHANT_UUID"

	DefaultPayLinkURL = "https://base.merchantwarrior.com/paylink/"
	defaultTimeout    = 15 * time.Second
)

// Merchant holds the gateway credentials. They are opaque strings and may be
// empty; the gateway adapter rejects calls until all three are present.
type Merchant struct {
	APIKey       string
	Passphrase   string
	MerchantUUID string
}

// Missing returns the env keys of absent credentials.
func (m Merchant) Missing() []string {
	var missing []string
	if m.APIKey == "" {
		missing = append(missing, EnvAPIKey)
	}
	if m.Passphrase == "" {
		missing = append(missing, EnvPassphrase)
	}
	if m.MerchantUUID == "" {
		missing = append(missing, EnvMerchantUUID)
	}
	return missing
}

type Config struct {
	ServiceName string
	Env         string
	HTTPAddr    string

	// LogLevel is a zap level name; empty means debug in dev and info elsewhere.
	LogLevel string
	// LogFile duplicates log output to a file when set.
	LogFile string

	Merchant       Merchant
	PublicBaseURL  string
	PayLinkURL     string
	GatewayTimeout time.Duration
}

// Load reads the process environment, after merging an optional .env file.
// The returned note is non-empty when the .env file could not be read.
func Load() (Config, string) {
	var note string
	if err := godotenv.Load(); err != nil {
		note = ".env not loaded: " + err.Error()
	}
	return FromEnv(os.Getenv), note
}

// FromEnv builds a Config from a lookup function.
func FromEnv(getenv func(string) string) Config {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	baseURL := get("PUBLIC_BASE_URL", get("NEXT_PUBLIC_BASE_URL", ""))

	return Config{
		ServiceName: get("SERVICE_NAME", "minishop-checkout"),
		Env:         get("ENV", "dev"),
		HTTPAddr:    get("HTTP_ADDR", ":8080"),
		LogLevel:    strings.ToLower(get("LOG_LEVEL", "")),
		LogFile:     get("LOG_FILE", ""),
		Merchant: Merchant{
			APIKey:       get(EnvAPIKey, ""),
			Passphrase:   get(EnvPassphrase, ""),
			MerchantUUID: get(EnvMerchantUUID, ""),
		},
		PublicBaseURL:  strings.TrimRight(baseURL, "/"),
		PayLinkURL:     get("MW_PAYLINK_URL", DefaultPayLinkURL),
		GatewayTimeout: durationSeconds(get("MW_TIMEOUT_SECONDS", ""), defaultTimeout),
	}
}

func durationSeconds(value string, def time.Duration) time.Duration {
	if value == "" {
		return def
	}
	if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
		return time.Duration(parsed) * time.Second
	}
	return def
}
