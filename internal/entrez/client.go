package entrez

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/olgasafonova/ncbi-mcp-server/internal/apierrors"
	"github.com/olgasafonova/ncbi-mcp-server/internal/base"
	"github.com/olgasafonova/ncbi-mcp-server/internal/infra"
	"github.com/olgasafonova/ncbi-mcp-server/metrics"
	"github.com/olgasafonova/ncbi-mcp-server/tracing"
)

// Client provides access to the NCBI E-utilities API
type Client struct {
	*base.Client
	config *Config
	pacer  *infra.Pacer
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

// NewClient creates a new E-utilities client. All requests except
// EFetch share one pacer sized to the NCBI rate policy for cfg.
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
		pacer:  infra.NewPacer(cfg.PaceInterval()),
		logger: b.Logger,
	}
}

// Config returns the client configuration
func (c *Client) Config() *Config {
	return c.config
}

// baseParams returns the identification parameters sent on every request
func (c *Client) baseParams() url.Values {
	params := url.Values{}
	params.Set("tool", c.config.Tool)
	params.Set("retmode", "xml")
	if c.config.APIKey != "" {
		params.Set("api_key", c.config.APIKey)
	}
	if c.config.Email != "" {
		params.Set("email", c.config.Email)
	}
	return params
}

// Search runs an ESearch query and returns the matching record IDs.
// retStart below zero is treated as zero; retMax below one falls back
// to DefaultRetMax. useHistory posts the result set to the NCBI
// history server so later calls can page it by WebEnv and QueryKey.
func (c *Client) Search(ctx context.Context, database, query string, retMax, retStart int, sort string, useHistory bool) (*SearchResult, error) {
	if retMax < 1 {
		retMax = DefaultRetMax
	}
	if retStart < 0 {
		retStart = 0
	}

	params := c.baseParams()
	params.Set("db", database)
	params.Set("term", query)
	params.Set("retmax", strconv.Itoa(retMax))
	params.Set("retstart", strconv.Itoa(retStart))
	if sort != "" {
		params.Set("sort", sort)
	}
	if useHistory {
		params.Set("usehistory", "y")
	}

	body, err := c.request(ctx, "esearch", params)
	if err != nil {
		return nil, err
	}
	return parseSearch(body)
}

// Fetch retrieves full records by ID and returns the upstream payload
// verbatim. Single-record convenience fetches are common enough that
// this endpoint intentionally skips the pacer.
func (c *Client) Fetch(ctx context.Context, database string, ids []string, retType, retMode string) (string, error) {
	params := c.baseParams()
	params.Set("db", database)
	params.Set("id", strings.Join(ids, ","))
	if retType != "" {
		params.Set("rettype", retType)
	}
	params.Set("retmode", retMode)

	body, err := c.get(ctx, "efetch", params)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// Summary retrieves condensed document summaries for the given IDs
func (c *Client) Summary(ctx context.Context, database string, ids []string) ([]DocumentSummary, error) {
	params := c.baseParams()
	params.Set("db", database)
	params.Set("id", strings.Join(ids, ","))

	body, err := c.request(ctx, "esummary", params)
	if err != nil {
		return nil, err
	}
	return parseSummaries(body)
}

// Link finds records in targetDB related to the given records in
// sourceDB, flattened across link sets in document order.
func (c *Client) Link(ctx context.Context, sourceDB, targetDB string, ids []string) (*LinkResult, error) {
	params := c.baseParams()
	params.Set("dbfrom", sourceDB)
	params.Set("db", targetDB)
	params.Set("id", strings.Join(ids, ","))

	body, err := c.request(ctx, "elink", params)
	if err != nil {
		return nil, err
	}

	related, err := parseLinks(body)
	if err != nil {
		return nil, err
	}
	return &LinkResult{
		SourceDatabase: sourceDB,
		TargetDatabase: targetDB,
		SourceIDs:      ids,
		RelatedIDs:     related,
	}, nil
}

// Info returns EInfo metadata. With a database name it describes that
// database's fields and links; without one it lists all databases.
// The response tree is passed through unreduced because its shape
// varies too much across databases to type usefully.
func (c *Client) Info(ctx context.Context, database string) (map[string]any, error) {
	params := c.baseParams()
	if database != "" {
		params.Set("db", database)
	}

	body, err := c.request(ctx, "einfo", params)
	if err != nil {
		return nil, err
	}
	return parseInfo(body)
}

// Databases returns the names of all E-utilities databases. It never
// fails: any transport or parse error falls back to the built-in
// catalog so agents can always discover where to search.
func (c *Client) Databases(ctx context.Context) []string {
	body, err := c.request(ctx, "einfo", c.baseParams())
	if err != nil {
		c.logger.Warn("einfo unavailable, serving built-in database catalog", "error", err)
		metrics.CatalogFallbacksTotal.Inc()
		return fallbackCatalog()
	}

	names, err := parseDatabaseList(body)
	if err != nil {
		c.logger.Warn("einfo response unusable, serving built-in database catalog", "error", err)
		metrics.CatalogFallbacksTotal.Inc()
		return fallbackCatalog()
	}
	return names
}

// request paces and performs a GET against one E-utilities endpoint
func (c *Client) request(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	waitStart := time.Now()
	if err := c.pacer.Wait(ctx); err != nil {
		return nil, err
	}
	metrics.PacerWaitSeconds.Observe(time.Since(waitStart).Seconds())

	return c.get(ctx, endpoint, params)
}

// get performs an unpaced GET against one E-utilities endpoint
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	ctx, span := tracing.StartSpan(ctx, "entrez."+endpoint)
	defer span.End()
	tracing.AddEutilsAttributes(span, endpoint, params.Get("db"))

	start := time.Now()
	body, statusCode, err := c.Client.Do(ctx, base.Request{
		URL:       c.config.BaseURL + "/" + endpoint + ".fcgi",
		Query:     params,
		UserAgent: c.config.UserAgent,
	})
	if err != nil {
		tracing.RecordError(span, err)
		metrics.RecordEutilsRequest(endpoint, time.Since(start).Seconds(), false)
		return nil, err
	}

	if statusCode < 200 || statusCode >= 300 {
		err := apierrors.NewStatusError(endpoint, statusCode, string(body))
		tracing.RecordError(span, err)
		metrics.RecordEutilsRequest(endpoint, time.Since(start).Seconds(), false)
		return nil, err
	}

	metrics.RecordEutilsRequest(endpoint, time.Since(start).Seconds(), true)
	return body, nil
}
