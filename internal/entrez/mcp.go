package entrez

import (
	"context"
)

// MCP Tool wrapper methods
// These methods wrap the client methods with Args/Result types for MCP
// integration. Every outcome is an envelope: failures come back as a
// result with success=false and the identifying inputs echoed, never
// as a Go error, so agents always get structured JSON to reason about.

// SearchNCBIMCP is the MCP wrapper for Search
func (c *Client) SearchNCBIMCP(ctx context.Context, args SearchNCBIArgs) (SearchNCBIResult, error) {
	fail := func(err error) SearchNCBIResult {
		return SearchNCBIResult{
			Database: args.Database,
			Query:    args.Query,
			Error:    err.Error(),
			IDs:      []string{},
		}
	}

	if err := ValidateDatabase(args.Database); err != nil {
		return fail(err), nil
	}
	if err := ValidateQuery(args.Query); err != nil {
		return fail(err), nil
	}

	result, err := c.Search(ctx, args.Database, args.Query, args.MaxResults, args.StartIndex, args.SortOrder, false)
	if err != nil {
		return fail(err), nil
	}

	return SearchNCBIResult{
		Success:          true,
		Database:         args.Database,
		Query:            args.Query,
		TotalCount:       result.Count,
		ReturnedCount:    len(result.IDs),
		StartIndex:       result.RetStart,
		IDs:              result.IDs,
		QueryTranslation: result.QueryTranslation,
		WebEnv:           result.WebEnv,
		QueryKey:         result.QueryKey,
	}, nil
}

// FetchRecordsMCP is the MCP wrapper for Fetch
func (c *Client) FetchRecordsMCP(ctx context.Context, args FetchRecordsArgs) (FetchRecordsResult, error) {
	fail := func(err error) FetchRecordsResult {
		return FetchRecordsResult{
			Database: args.Database,
			IDs:      echoIDs(args.IDs),
			Error:    err.Error(),
		}
	}

	if err := ValidateDatabase(args.Database); err != nil {
		return fail(err), nil
	}
	if err := ValidateIDs("ids", args.IDs); err != nil {
		return fail(err), nil
	}

	retType := args.ReturnType
	if retType == "" {
		retType = "xml"
	}
	retMode := args.ReturnMode
	if retMode == "" {
		retMode = "xml"
	}

	data, err := c.Fetch(ctx, args.Database, args.IDs, retType, retMode)
	if err != nil {
		return fail(err), nil
	}

	return FetchRecordsResult{
		Success:  true,
		Data:     data,
		Database: args.Database,
		IDs:      args.IDs,
	}, nil
}

// SummarizeRecordsMCP is the MCP wrapper for Summary
func (c *Client) SummarizeRecordsMCP(ctx context.Context, args SummarizeRecordsArgs) (SummarizeRecordsResult, error) {
	fail := func(err error) SummarizeRecordsResult {
		return SummarizeRecordsResult{
			Database:  args.Database,
			IDs:       echoIDs(args.IDs),
			Error:     err.Error(),
			Summaries: []DocumentSummary{},
		}
	}

	if err := ValidateDatabase(args.Database); err != nil {
		return fail(err), nil
	}
	if err := ValidateIDs("ids", args.IDs); err != nil {
		return fail(err), nil
	}

	summaries, err := c.Summary(ctx, args.Database, args.IDs)
	if err != nil {
		return fail(err), nil
	}

	return SummarizeRecordsResult{
		Success:   true,
		Database:  args.Database,
		IDs:       args.IDs,
		Summaries: summaries,
	}, nil
}

// FindRelatedRecordsMCP is the MCP wrapper for Link
func (c *Client) FindRelatedRecordsMCP(ctx context.Context, args FindRelatedRecordsArgs) (FindRelatedRecordsResult, error) {
	fail := func(err error) FindRelatedRecordsResult {
		return FindRelatedRecordsResult{
			SourceDatabase: args.SourceDatabase,
			TargetDatabase: args.TargetDatabase,
			SourceIDs:      echoIDs(args.IDs),
			RelatedIDs:     []string{},
			Error:          err.Error(),
		}
	}

	if err := ValidateDatabase(args.SourceDatabase); err != nil {
		return fail(err), nil
	}
	if err := ValidateDatabase(args.TargetDatabase); err != nil {
		return fail(err), nil
	}
	if err := ValidateIDs("ids", args.IDs); err != nil {
		return fail(err), nil
	}

	result, err := c.Link(ctx, args.SourceDatabase, args.TargetDatabase, args.IDs)
	if err != nil {
		return fail(err), nil
	}

	return FindRelatedRecordsResult{
		Success:        true,
		SourceDatabase: result.SourceDatabase,
		TargetDatabase: result.TargetDatabase,
		SourceIDs:      result.SourceIDs,
		RelatedIDs:     result.RelatedIDs,
		RelatedCount:   len(result.RelatedIDs),
	}, nil
}

// GetDatabaseInfoMCP is the MCP wrapper for Info
func (c *Client) GetDatabaseInfoMCP(ctx context.Context, args GetDatabaseInfoArgs) (GetDatabaseInfoResult, error) {
	fail := func(err error) GetDatabaseInfoResult {
		return GetDatabaseInfoResult{
			Database: args.Database,
			Error:    err.Error(),
		}
	}

	if args.Database != "" {
		if err := ValidateDatabase(args.Database); err != nil {
			return fail(err), nil
		}
	}

	info, err := c.Info(ctx, args.Database)
	if err != nil {
		return fail(err), nil
	}

	return GetDatabaseInfoResult{
		Success:  true,
		Database: args.Database,
		Info:     info,
	}, nil
}

// ListDatabasesMCP is the MCP wrapper for Databases. It cannot fail:
// the client falls back to the built-in catalog on any error.
func (c *Client) ListDatabasesMCP(ctx context.Context, args ListDatabasesArgs) (ListDatabasesResult, error) {
	databases := c.Databases(ctx)
	return ListDatabasesResult{
		Success:   true,
		Databases: databases,
		Count:     len(databases),
	}, nil
}

// echoIDs returns a non-nil copy of ids for failure envelopes
func echoIDs(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
