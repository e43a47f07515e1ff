package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/olgasafonova/ncbi-mcp-server/internal/blast"
	"github.com/olgasafonova/ncbi-mcp-server/internal/entrez"
	"github.com/olgasafonova/ncbi-mcp-server/metrics"
	"github.com/olgasafonova/ncbi-mcp-server/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// HandlerRegistry provides type-safe tool registration by mapping
// tool names to their concrete handler implementations.
type HandlerRegistry struct {
	entrezClient *entrez.Client
	blastClient  *blast.Client
	logger       *slog.Logger
}

// NewHandlerRegistry creates a new handler registry.
func NewHandlerRegistry(entrezClient *entrez.Client, blastClient *blast.Client, logger *slog.Logger) *HandlerRegistry {
	return &HandlerRegistry{
		entrezClient: entrezClient,
		blastClient:  blastClient,
		logger:       logger,
	}
}

// RegisterAll registers all tools with the MCP server.
func (h *HandlerRegistry) RegisterAll(server *mcp.Server) {
	for _, spec := range AllTools {
		h.registerByName(server, spec)
	}
	h.logger.Info("Registered all tools", "count", len(AllTools))
}

// registerByName dispatches to the correct typed registration function.
func (h *HandlerRegistry) registerByName(server *mcp.Server, spec ToolSpec) {
	tool := h.buildTool(spec)

	switch spec.Method {
	// E-utilities tools
	case "SearchNCBI":
		register(h, server, tool, spec, h.entrezClient.SearchNCBIMCP)
	case "FetchRecords":
		h.registerFetchRecords(server, tool, spec)
	case "SummarizeRecords":
		register(h, server, tool, spec, h.entrezClient.SummarizeRecordsMCP)
	case "FindRelatedRecords":
		register(h, server, tool, spec, h.entrezClient.FindRelatedRecordsMCP)
	case "GetDatabaseInfo":
		register(h, server, tool, spec, h.entrezClient.GetDatabaseInfoMCP)
	case "ListDatabases":
		register(h, server, tool, spec, h.entrezClient.ListDatabasesMCP)

	// BLAST tools
	case "BlastSearch":
		register(h, server, tool, spec, h.blastClient.BlastSearchMCP)

	default:
		h.logger.Error("Unknown method, tool not registered", "method", spec.Method, "tool", spec.Name)
	}
}

// buildTool creates an mcp.Tool from a ToolSpec.
func (h *HandlerRegistry) buildTool(spec ToolSpec) *mcp.Tool {
	annotations := &mcp.ToolAnnotations{
		Title:          spec.Title,
		ReadOnlyHint:   spec.ReadOnly,
		IdempotentHint: spec.Idempotent,
	}
	if spec.Destructive {
		annotations.DestructiveHint = ptr(true)
	}
	if spec.OpenWorld {
		annotations.OpenWorldHint = ptr(true)
	}

	return &mcp.Tool{
		Name:        spec.Name,
		Description: spec.Description,
		Annotations: annotations,
	}
}

// register is a generic helper that registers a tool with the MCP server.
// It wraps the client method with panic recovery, metrics, tracing, and logging.
func register[Args, Result any](
	h *HandlerRegistry,
	server *mcp.Server,
	tool *mcp.Tool,
	spec ToolSpec,
	method func(context.Context, Args) (Result, error),
) {
	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, args Args) (*mcp.CallToolResult, Result, error) {
		defer h.recoverPanic(spec.Name)

		// Start trace span
		ctx, span := tracing.StartSpan(ctx, "mcp.tool."+spec.Name)
		defer span.End()
		tracing.AddToolAttributes(span, spec.Name, spec.Category, spec.Service, spec.ReadOnly)

		// Track in-flight requests
		metrics.RequestInFlight.WithLabelValues(spec.Name).Inc()
		defer metrics.RequestInFlight.WithLabelValues(spec.Name).Dec()

		start := time.Now()
		result, err := method(ctx, args)
		duration := time.Since(start).Seconds()

		span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			metrics.RecordRequest(spec.Name, duration, false)
			var zero Result
			return nil, zero, fmt.Errorf("%s failed: %w", spec.Name, err)
		}

		span.SetStatus(codes.Ok, "")
		metrics.RecordRequest(spec.Name, duration, resultSucceeded(result))
		h.logExecution(spec, args, result)
		return nil, result, nil
	})
}

// registerFetchRecords wires the fetch tool by hand. Fetched records go
// back as raw text content rather than a JSON envelope, which the
// generic path cannot express.
func (h *HandlerRegistry) registerFetchRecords(server *mcp.Server, tool *mcp.Tool, spec ToolSpec) {
	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, args entrez.FetchRecordsArgs) (*mcp.CallToolResult, any, error) {
		defer h.recoverPanic(spec.Name)

		ctx, span := tracing.StartSpan(ctx, "mcp.tool."+spec.Name)
		defer span.End()
		tracing.AddToolAttributes(span, spec.Name, spec.Category, spec.Service, spec.ReadOnly)

		metrics.RequestInFlight.WithLabelValues(spec.Name).Inc()
		defer metrics.RequestInFlight.WithLabelValues(spec.Name).Dec()

		start := time.Now()
		result, err := h.entrezClient.FetchRecordsMCP(ctx, args)
		duration := time.Since(start).Seconds()

		span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			metrics.RecordRequest(spec.Name, duration, false)
			return nil, nil, fmt.Errorf("%s failed: %w", spec.Name, err)
		}

		span.SetStatus(codes.Ok, "")
		metrics.RecordRequest(spec.Name, duration, result.Succeeded())
		h.logExecution(spec, args, result)

		text := result.Data
		if !result.Success {
			envelope, merr := json.MarshalIndent(result, "", "  ")
			if merr != nil {
				return nil, nil, fmt.Errorf("%s failed: %w", spec.Name, merr)
			}
			text = string(envelope)
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}, nil, nil
	})
}

// resultSucceeded reads the success flag out of a result envelope.
// Client methods report failures in-band rather than as Go errors, so
// metrics would otherwise count every call as a success.
func resultSucceeded(result any) bool {
	if s, ok := result.(interface{ Succeeded() bool }); ok {
		return s.Succeeded()
	}
	return true
}

// recoverPanic recovers from panics in tool handlers.
func (h *HandlerRegistry) recoverPanic(toolName string) {
	if rec := recover(); rec != nil {
		metrics.PanicsRecovered.WithLabelValues(toolName).Inc()
		h.logger.Error("Panic recovered",
			"tool", toolName,
			"panic", rec,
			"stack", string(debug.Stack()))
	}
}

// logExecution logs tool execution details.
func (h *HandlerRegistry) logExecution(spec ToolSpec, args, result any) {
	attrs := []any{"tool", spec.Name, "service", spec.Service}

	// Add extractable fields from args using type assertions
	switch a := args.(type) {
	case entrez.SearchNCBIArgs:
		attrs = append(attrs, "database", a.Database, "query", a.Query)
	case entrez.FetchRecordsArgs:
		attrs = append(attrs, "database", a.Database, "ids", len(a.IDs))
	case entrez.SummarizeRecordsArgs:
		attrs = append(attrs, "database", a.Database, "ids", len(a.IDs))
	case entrez.FindRelatedRecordsArgs:
		attrs = append(attrs, "source_database", a.SourceDatabase, "target_database", a.TargetDatabase, "ids", len(a.IDs))
	case entrez.GetDatabaseInfoArgs:
		if a.Database != "" {
			attrs = append(attrs, "database", a.Database)
		}
	case entrez.ListDatabasesArgs:
		// No args to log
	case blast.BlastSearchArgs:
		attrs = append(attrs, "program", a.Program, "database", a.Database, "sequence_length", len(a.Sequence))
	}

	// Add extractable fields from result
	switch r := result.(type) {
	case entrez.SearchNCBIResult:
		attrs = append(attrs, "returned", r.ReturnedCount, "total", r.TotalCount)
	case entrez.FetchRecordsResult:
		attrs = append(attrs, "bytes", len(r.Data))
	case entrez.SummarizeRecordsResult:
		attrs = append(attrs, "summaries", len(r.Summaries))
	case entrez.FindRelatedRecordsResult:
		attrs = append(attrs, "related", r.RelatedCount)
	case entrez.ListDatabasesResult:
		attrs = append(attrs, "databases", r.Count)
	case blast.BlastSearchResult:
		attrs = append(attrs, "rid", r.RID, "status", r.Status)
	}

	h.logger.Info("Tool executed", attrs...)
}
