package blast

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("NCBI_BLAST_URL", "")
	t.Setenv("NCBI_EMAIL", "")
	t.Setenv("NCBI_TIMEOUT", "")
	t.Setenv("NCBI_BLAST_POLL_INTERVAL", "")
	t.Setenv("NCBI_BLAST_POLL_TIMEOUT", "")

	cfg := LoadConfig()
	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", cfg.BaseURL, DefaultBaseURL)
	}
	if cfg.PollInterval != DefaultPollInterval {
		t.Errorf("PollInterval = %v, want %v", cfg.PollInterval, DefaultPollInterval)
	}
	if cfg.PollTimeout != DefaultPollTimeout {
		t.Errorf("PollTimeout = %v, want %v", cfg.PollTimeout, DefaultPollTimeout)
	}
	if cfg.Email != DefaultEmail {
		t.Errorf("Email = %q, want %q", cfg.Email, DefaultEmail)
	}
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("NCBI_BLAST_URL", "http://localhost:8765/blast")
	t.Setenv("NCBI_BLAST_POLL_INTERVAL", "5s")
	t.Setenv("NCBI_BLAST_POLL_TIMEOUT", "2m")

	cfg := LoadConfig()
	if cfg.BaseURL != "http://localhost:8765/blast" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.PollInterval != 5*time.Second {
		t.Errorf("PollInterval = %v, want 5s", cfg.PollInterval)
	}
	if cfg.PollTimeout != 2*time.Minute {
		t.Errorf("PollTimeout = %v, want 2m", cfg.PollTimeout)
	}
}
