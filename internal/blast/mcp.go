package blast

import (
	"context"
)

// BlastSearchMCP is the MCP wrapper for Search. Argument problems are
// reported as success=false without touching the network; once a
// search is submitted, engine failures are reported in-band under
// status="error" so the agent still sees the RID it can retry with.
func (c *Client) BlastSearchMCP(ctx context.Context, args BlastSearchArgs) (BlastSearchResult, error) {
	fail := func(err error) BlastSearchResult {
		return BlastSearchResult{
			Program:  args.Program,
			Database: args.Database,
			Error:    err.Error(),
		}
	}

	outputFmt, err := ParseOutputFormat(args.OutputFmt)
	if err != nil {
		return fail(err), nil
	}
	program, err := ValidateProgram(args.Program)
	if err != nil {
		return fail(err), nil
	}
	if err := ValidateDatabase(args.Database); err != nil {
		return fail(err), nil
	}
	if err := ValidateSequence(args.Sequence); err != nil {
		return fail(err), nil
	}

	expect := args.ExpectValue
	if expect <= 0 {
		expect = DefaultExpect
	}

	out, rid, err := c.Search(ctx, Parameters{
		Program:     program,
		Database:    args.Database,
		Query:       args.Sequence,
		Expect:      expect,
		WordSize:    args.WordSize,
		Matrix:      args.Matrix,
		GapCosts:    args.GapCosts,
		Megablast:   args.Megablast,
		HitListSize: DefaultHitListSize,
	})
	if err != nil {
		return BlastSearchResult{
			Success:  true,
			Program:  program,
			Database: args.Database,
			RID:      rid,
			Status:   StatusError,
			Results:  map[string]any{"error": err.Error()},
		}, nil
	}

	return BlastSearchResult{
		Success:  true,
		Program:  program,
		Database: args.Database,
		RID:      rid,
		Status:   StatusCompleted,
		Results:  map[string]any{"records": buildRecords(out, outputFmt == OutputFull)},
	}, nil
}
