package blast

import (
	"os"
	"time"
)

const (
	// DefaultBaseURL is the QBlast endpoint
	DefaultBaseURL = "https://blast.ncbi.nlm.nih.gov/Blast.cgi"

	// DefaultTool identifies this client to NCBI on every request
	DefaultTool = "ncbi-mcp-server"

	// DefaultEmail is sent when NCBI_EMAIL is not configured
	DefaultEmail = "user@example.com"

	// DefaultTimeout for a single QBlast HTTP request. Result pages can
	// be large, so this is looser than the E-utilities timeout.
	DefaultTimeout = 120 * time.Second

	// DefaultPollInterval between result-status checks
	DefaultPollInterval = 20 * time.Second

	// DefaultPollTimeout bounds the whole wait for one search
	DefaultPollTimeout = 10 * time.Minute

	// MaxInitialWait caps the server's own run-time estimate so a wild
	// estimate cannot stall the first poll.
	MaxInitialWait = 60 * time.Second

	// DefaultHitListSize is the number of aligned sequences to keep
	DefaultHitListSize = 50

	// DefaultExpect is the E-value threshold applied when the caller
	// does not set one
	DefaultExpect = 10.0
)

// Config holds QBlast connection settings
type Config struct {
	// BaseURL is the Blast.cgi endpoint
	BaseURL string

	// Tool and Email identify the client to NCBI
	Tool  string
	Email string

	// Timeout for QBlast HTTP requests
	Timeout time.Duration

	// PollInterval between result-status checks
	PollInterval time.Duration

	// PollTimeout bounds the whole wait for one search
	PollTimeout time.Duration

	// UserAgent identifies the client to NCBI
	UserAgent string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	cfg := &Config{
		BaseURL:      DefaultBaseURL,
		Tool:         DefaultTool,
		Email:        DefaultEmail,
		Timeout:      DefaultTimeout,
		PollInterval: DefaultPollInterval,
		PollTimeout:  DefaultPollTimeout,
		UserAgent:    "ncbi-mcp-server/1.0 (github.com/olgasafonova/ncbi-mcp-server)",
	}

	if u := os.Getenv("NCBI_BLAST_URL"); u != "" {
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
	if t := os.Getenv("NCBI_BLAST_POLL_INTERVAL"); t != "" {
		if d, err := time.ParseDuration(t); err == nil {
			cfg.PollInterval = d
		}
	}
	if t := os.Getenv("NCBI_BLAST_POLL_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil {
			cfg.PollTimeout = d
		}
	}

	return cfg
}
