// NCBI MCP Server - A Model Context Protocol server for NCBI databases
// Provides tools for searching, fetching, and linking records via the
// E-utilities API and running BLAST sequence-similarity searches
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/olgasafonova/ncbi-mcp-server/internal/blast"
	"github.com/olgasafonova/ncbi-mcp-server/internal/entrez"
	"github.com/olgasafonova/ncbi-mcp-server/tools"
	"github.com/olgasafonova/ncbi-mcp-server/tracing"
)

const (
	ServerName    = "ncbi-mcp-server"
	ServerVersion = "1.0.0"
)

const serverInstructions = `NCBI MCP Server provides tools for searching and analyzing NCBI databases.

Available tools:
- search_ncbi: Search any NCBI database with an Entrez query, returns record IDs
- fetch_records: Fetch full records by ID (abstract, FASTA, GenBank, XML)
- summarize_records: Get compact summaries (title, authors, journal) for record IDs
- find_related_records: Find records in one database related to records in another
- get_database_info: Describe a database's record counts, fields, and links
- list_databases: List all searchable NCBI databases
- blast_search: Run a BLAST sequence-similarity search (blastn, blastp, blastx, tblastn, tblastx)

Resources:
- ncbi://databases: Catalog of NCBI databases with descriptions
- ncbi://blast-programs: BLAST program and database reference

Configure via environment variables (all optional):
- NCBI_API_KEY: NCBI API key; raises the request rate from 3/s to 10/s
- NCBI_EMAIL: Contact email sent with every request (NCBI usage policy)
- NCBI_EUTILS_URL, NCBI_BLAST_URL: Override upstream endpoints
- NCBI_TIMEOUT: HTTP timeout as a Go duration (e.g. 60s)
- NCBI_BLAST_POLL_INTERVAL, NCBI_BLAST_POLL_TIMEOUT: BLAST polling knobs`

func main() {
	// .env is optional; deployments usually set the environment directly
	_ = godotenv.Load()

	// Configure logging to stderr (stdout is used for MCP protocol)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(),
	}))

	ctx := context.Background()

	// Initialize tracing (no-op unless OTEL_ENABLED or an OTLP endpoint is set)
	shutdown, err := tracing.Setup(ctx, tracing.DefaultConfig())
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Error("Tracing shutdown failed", "error", err)
		}
	}()

	// Load configuration from environment
	entrezConfig := entrez.LoadConfig()
	blastConfig := blast.LoadConfig()

	// Create upstream clients
	entrezClient := entrez.NewClient(entrezConfig, entrez.WithLogger(logger))
	blastClient := blast.NewClient(blastConfig, blast.WithLogger(logger))

	// Create MCP server
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger:       logger,
		Instructions: serverInstructions,
	})

	// Register all tools and resources
	tools.NewHandlerRegistry(entrezClient, blastClient, logger).RegisterAll(server)
	registerResources(server, entrezClient)

	// Run server on stdio transport
	logger.Info("Starting NCBI MCP Server",
		"name", ServerName,
		"version", ServerVersion,
		"eutils_url", entrezConfig.BaseURL,
		"blast_url", blastConfig.BaseURL,
		"has_api_key", entrezConfig.HasAPIKey(),
	)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// logLevel maps LOG_LEVEL to a slog level, defaulting to info.
func logLevel() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
