package blast

import (
	"context"
	"encoding/xml"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"time"

	"github.com/olgasafonova/ncbi-mcp-server/internal/apierrors"
	"github.com/olgasafonova/ncbi-mcp-server/internal/base"
	"github.com/olgasafonova/ncbi-mcp-server/metrics"
	"github.com/olgasafonova/ncbi-mcp-server/tracing"
)

// QBlast submit responses embed the request ID and run-time estimate
// in a QBlastInfoBegin comment block; status polls embed Status= the
// same way.
var (
	ridPattern    = regexp.MustCompile(`RID = (\S+)`)
	rtoePattern   = regexp.MustCompile(`RTOE = (\d+)`)
	statusPattern = regexp.MustCompile(`Status=(\S+)`)
)

// Client drives searches through the NCBI QBlast protocol: submit a
// query, poll until the server reports it ready, then retrieve the
// XML report.
type Client struct {
	*base.Client
	config *Config
	logger *slog.Logger
}

// ClientOption configures the Client (re-export base.ClientOption for compatibility)
type ClientOption = base.ClientOption

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(c *http.Client) ClientOption {
	return base.WithHTTPClient(c)
}

// WithLogger sets a custom logger
func WithLogger(l *slog.Logger) ClientOption {
	return base.WithLogger(l)
}

// NewClient creates a new QBlast client
func NewClient(cfg *Config, opts ...ClientOption) *Client {
	if cfg == nil {
		cfg = LoadConfig()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	// The configured timeout seeds the transport; explicit options win.
	opts = append([]ClientOption{base.WithHTTPClient(base.NewHTTPClient(timeout))}, opts...)
	b := base.NewClient(opts...)
	return &Client{
		Client: b,
		config: cfg,
		logger: b.Logger,
	}
}

// Config returns the client configuration
func (c *Client) Config() *Config {
	return c.config
}

// Parameters describe one BLAST search
type Parameters struct {
	// Program is the BLAST flavor (blastn, blastp, blastx, tblastn, tblastx)
	Program string

	// Database to search (nt, nr, refseq_rna, swissprot and friends)
	Database string

	// Query is the bare sequence or a FASTA record
	Query string

	// Expect is the E-value threshold
	Expect float64

	// WordSize overrides the program default when above zero
	WordSize int

	// Matrix names the protein scoring matrix (BLOSUM62, PAM30, ...)
	Matrix string

	// GapCosts is the "open extend" pair (e.g. "11 1")
	GapCosts string

	// Megablast switches blastn to the fast megablast algorithm
	Megablast bool

	// HitListSize caps the number of aligned sequences kept
	HitListSize int
}

// Search runs one BLAST search to completion. The request ID is
// returned alongside the report, and on failure it carries whatever
// the server assigned before things went wrong ("" when the submit
// itself failed) so callers can surface it.
func (c *Client) Search(ctx context.Context, p Parameters) (*Output, string, error) {
	ctx, span := tracing.StartSpan(ctx, "blast.search")
	defer span.End()

	start := time.Now()

	rid, rtoe, err := c.submit(ctx, p)
	if err != nil {
		metrics.RecordBlastSubmit(false)
		tracing.RecordError(span, err)
		return nil, "", err
	}
	metrics.RecordBlastSubmit(true)
	tracing.AddBlastAttributes(span, p.Program, p.Database, rid)

	c.logger.Info("BLAST search submitted",
		"rid", rid,
		"program", p.Program,
		"database", p.Database,
		"rtoe", rtoe)

	if err := c.awaitReady(ctx, rid, rtoe); err != nil {
		tracing.RecordError(span, err)
		return nil, rid, err
	}

	out, err := c.retrieve(ctx, rid)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, rid, err
	}

	metrics.BlastSearchDuration.Observe(time.Since(start).Seconds())
	c.logger.Info("BLAST search completed",
		"rid", rid,
		"duration", time.Since(start),
		"hits", hitCount(out))
	return out, rid, nil
}

// submit posts the query and extracts the request ID and the server's
// run-time estimate.
func (c *Client) submit(ctx context.Context, p Parameters) (string, time.Duration, error) {
	form := url.Values{}
	form.Set("CMD", "Put")
	form.Set("PROGRAM", p.Program)
	form.Set("DATABASE", p.Database)
	form.Set("QUERY", p.Query)
	form.Set("EXPECT", strconv.FormatFloat(p.Expect, 'g', -1, 64))
	form.Set("HITLIST_SIZE", strconv.Itoa(p.HitListSize))
	if p.WordSize > 0 {
		form.Set("WORD_SIZE", strconv.Itoa(p.WordSize))
	}
	if p.Matrix != "" {
		form.Set("MATRIX_NAME", p.Matrix)
	}
	if p.GapCosts != "" {
		form.Set("GAPCOSTS", p.GapCosts)
	}
	if p.Megablast {
		form.Set("MEGABLAST", "on")
	}
	if c.config.Tool != "" {
		form.Set("TOOL", c.config.Tool)
	}
	if c.config.Email != "" {
		form.Set("EMAIL", c.config.Email)
	}

	body, statusCode, err := c.Do(ctx, base.Request{
		Method:    http.MethodPost,
		URL:       c.config.BaseURL,
		Form:      form,
		UserAgent: c.config.UserAgent,
	})
	if err != nil {
		return "", 0, err
	}
	if statusCode < 200 || statusCode >= 300 {
		return "", 0, apierrors.NewStatusError("blast submit", statusCode, string(body))
	}

	m := ridPattern.FindSubmatch(body)
	if m == nil {
		return "", 0, apierrors.NewShapeError("blast submit", "no RID in response")
	}
	rid := string(m[1])

	var rtoe time.Duration
	if m := rtoePattern.FindSubmatch(body); m != nil {
		if secs, err := strconv.Atoi(string(m[1])); err == nil {
			rtoe = time.Duration(secs) * time.Second
		}
	}
	return rid, rtoe, nil
}

// awaitReady polls the search status until the server reports READY.
// FAILED and UNKNOWN are terminal; WAITING keeps polling until the
// configured timeout.
func (c *Client) awaitReady(ctx context.Context, rid string, rtoe time.Duration) error {
	if err := sleepCtx(ctx, initialWait(rtoe)); err != nil {
		return err
	}

	deadline := time.Now().Add(c.config.PollTimeout)
	for {
		status, err := c.pollStatus(ctx, rid)
		if err != nil {
			return err
		}

		switch status {
		case "READY":
			return nil
		case "FAILED":
			return fmt.Errorf("BLAST search %s failed", rid)
		case "UNKNOWN":
			return fmt.Errorf("BLAST search %s expired or is unknown to the server", rid)
		}

		if time.Now().After(deadline) {
			return fmt.Errorf("BLAST search %s did not finish within %s", rid, c.config.PollTimeout)
		}

		c.logger.Debug("BLAST search still running", "rid", rid, "status", status)
		if err := sleepCtx(ctx, c.config.PollInterval); err != nil {
			return err
		}
	}
}

// pollStatus asks the server for the current state of one search
func (c *Client) pollStatus(ctx context.Context, rid string) (string, error) {
	metrics.BlastPollsTotal.Inc()

	params := url.Values{}
	params.Set("CMD", "Get")
	params.Set("RID", rid)
	params.Set("FORMAT_OBJECT", "SearchInfo")

	body, statusCode, err := c.Do(ctx, base.Request{
		URL:       c.config.BaseURL,
		Query:     params,
		UserAgent: c.config.UserAgent,
	})
	if err != nil {
		return "", err
	}
	if statusCode < 200 || statusCode >= 300 {
		return "", apierrors.NewStatusError("blast poll", statusCode, string(body))
	}

	m := statusPattern.FindSubmatch(body)
	if m == nil {
		return "", apierrors.NewShapeError("blast poll", "no Status in response")
	}
	return string(m[1]), nil
}

// retrieve downloads and decodes the XML report of a ready search
func (c *Client) retrieve(ctx context.Context, rid string) (*Output, error) {
	params := url.Values{}
	params.Set("CMD", "Get")
	params.Set("RID", rid)
	params.Set("FORMAT_TYPE", "XML")

	body, statusCode, err := c.Do(ctx, base.Request{
		URL:       c.config.BaseURL,
		Query:     params,
		UserAgent: c.config.UserAgent,
	})
	if err != nil {
		return nil, err
	}
	if statusCode < 200 || statusCode >= 300 {
		return nil, apierrors.NewStatusError("blast retrieve", statusCode, string(body))
	}

	var out Output
	if err := xml.Unmarshal(body, &out); err != nil {
		return nil, apierrors.NewShapeError("blast retrieve", err.Error())
	}
	return &out, nil
}

// initialWait caps the server's run-time estimate at MaxInitialWait
func initialWait(rtoe time.Duration) time.Duration {
	if rtoe > MaxInitialWait {
		return MaxInitialWait
	}
	return rtoe
}

// sleepCtx sleeps for d unless the context ends first
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// hitCount totals the hits across a report's iterations
func hitCount(out *Output) int {
	n := 0
	for _, it := range out.Iterations {
		n += len(it.Hits)
	}
	return n
}
