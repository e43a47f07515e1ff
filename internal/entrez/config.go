package entrez

import (
	"os"
	"time"
)

const (
	// DefaultBaseURL is the E-utilities endpoint
	DefaultBaseURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"

	// DefaultTool identifies this client to NCBI on every request
	DefaultTool = "ncbi-mcp-server"

	// DefaultEmail is sent when NCBI_EMAIL is not configured
	DefaultEmail = "user@example.com"

	// DefaultTimeout for E-utilities requests
	DefaultTimeout = 30 * time.Second

	// DefaultRetMax is the page size used when the caller does not set one
	DefaultRetMax = 20

	// Pacing intervals per the NCBI rate policy: ~3 requests per second
	// without an API key, ~10 per second with one.
	UnkeyedInterval = 340 * time.Millisecond
	KeyedInterval   = 100 * time.Millisecond
)

// Config holds E-utilities connection settings
type Config struct {
	// BaseURL is the E-utilities endpoint root
	BaseURL string

	// APIKey raises the allowed request rate (optional)
	APIKey string

	// Email is the contact address sent with every request
	Email string

	// Tool is the client name sent with every request
	Tool string

	// Timeout for API requests
	Timeout time.Duration

	// UserAgent identifies the client to NCBI
	UserAgent string
}

// LoadConfig loads configuration from environment variables. Every
// setting is optional; an API key only tightens the pacing interval.
func LoadConfig() *Config {
	cfg := &Config{
		BaseURL:   DefaultBaseURL,
		APIKey:    os.Getenv("NCBI_API_KEY"),
		Email:     DefaultEmail,
		Tool:      DefaultTool,
		Timeout:   DefaultTimeout,
		UserAgent: "ncbi-mcp-server/1.0 (github.com/olgasafonova/ncbi-mcp-server)",
	}

	if u := os.Getenv("NCBI_EUTILS_URL"); u != "" {
		cfg.BaseURL = u
	}
	if e := os.Getenv("NCBI_EMAIL"); e != "" {
		cfg.Email = e
	}
	if t := os.Getenv("NCBI_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil {
			cfg.Timeout = d
		}
	}

	return cfg
}

// PaceInterval returns the request spacing mandated by API key presence.
func (c *Config) PaceInterval() time.Duration {
	if c.APIKey != "" {
		return KeyedInterval
	}
	return UnkeyedInterval
}

// HasAPIKey returns true if an API key is configured
func (c *Config) HasAPIKey() bool {
	return c.APIKey != ""
}
