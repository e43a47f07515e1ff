package evals

import (
	"path/filepath"
	"strings"
	"testing"
)

// mockToolSelector returns canned selections keyed by input.
type mockToolSelector struct {
	Responses map[string]struct {
		Tool string
		Args map[string]any
	}
	// DefaultTool is returned if input isn't in Responses
	DefaultTool string
}

func (m *mockToolSelector) SelectTool(input string) (string, map[string]any, error) {
	if resp, ok := m.Responses[input]; ok {
		return resp.Tool, resp.Args, nil
	}
	return m.DefaultTool, nil, nil
}

// perfectToolSelector answers every suite test with its expected outcome.
type perfectToolSelector struct {
	suite *ToolSelectionSuite
}

func (p *perfectToolSelector) SelectTool(input string) (string, map[string]any, error) {
	for _, test := range p.suite.Tests {
		if test.Input == input {
			return test.ExpectedTool, test.ExpectedArgs, nil
		}
	}
	return "", nil, nil
}

func TestLoadToolSelectionSuite(t *testing.T) {
	suite, err := LoadToolSelectionSuite(filepath.Join(".", "tool_selection.json"))
	if err != nil {
		t.Fatalf("Failed to load tool selection suite: %v", err)
	}

	if suite.Name == "" {
		t.Error("Suite name should not be empty")
	}
	if len(suite.Tests) == 0 {
		t.Fatal("Suite should have tests")
	}

	for _, test := range suite.Tests {
		if test.ID == "" {
			t.Error("Test ID should not be empty")
		}
		if test.Input == "" {
			t.Errorf("Test %s input should not be empty", test.ID)
		}
		if test.ExpectedTool == "" {
			t.Errorf("Test %s expected tool should not be empty", test.ID)
		}
		for _, forbidden := range test.NotTools {
			if forbidden == test.ExpectedTool {
				t.Errorf("Test %s lists its expected tool as forbidden", test.ID)
			}
		}
	}
}

func TestLoadConfusionPairSuite(t *testing.T) {
	suite, err := LoadConfusionPairSuite(filepath.Join(".", "confusion_pairs.json"))
	if err != nil {
		t.Fatalf("Failed to load confusion pair suite: %v", err)
	}

	if suite.Name == "" {
		t.Error("Suite name should not be empty")
	}
	if len(suite.Pairs) == 0 {
		t.Fatal("Suite should have confusion pairs")
	}

	for _, pair := range suite.Pairs {
		if pair.ID == "" {
			t.Error("Pair ID should not be empty")
		}
		if len(pair.Tools) < 2 {
			t.Errorf("Pair %s should have at least 2 tools", pair.ID)
		}
		if len(pair.Tests) == 0 {
			t.Errorf("Pair %s should have tests", pair.ID)
		}
		// Every expected tool must be one of the pair's members.
		for _, test := range pair.Tests {
			found := false
			for _, tool := range pair.Tools {
				if test.Expected == tool {
					found = true
				}
			}
			if !found {
				t.Errorf("Pair %s expects %s which is not in the pair", pair.ID, test.Expected)
			}
		}
	}
}

func TestLoadArgumentSuite(t *testing.T) {
	suite, err := LoadArgumentSuite(filepath.Join(".", "argument_correctness.json"))
	if err != nil {
		t.Fatalf("Failed to load argument suite: %v", err)
	}

	if suite.Name == "" {
		t.Error("Suite name should not be empty")
	}
	if len(suite.Tests) == 0 {
		t.Fatal("Suite should have tests")
	}
	if suite.ValidationRules.IDHandling == "" {
		t.Error("Suite should document ID handling")
	}

	for _, test := range suite.Tests {
		if test.ID == "" {
			t.Error("Test ID should not be empty")
		}
		if test.Tool == "" {
			t.Errorf("Test %s tool should not be empty", test.ID)
		}
		if test.Input == "" {
			t.Errorf("Test %s input should not be empty", test.ID)
		}
	}
}

func TestEvaluateToolSelection(t *testing.T) {
	suite, err := LoadToolSelectionSuite(filepath.Join(".", "tool_selection.json"))
	if err != nil {
		t.Fatalf("Failed to load suite: %v", err)
	}

	metrics, results := EvaluateToolSelection(suite, &perfectToolSelector{suite: suite})

	if metrics.TotalTests != len(suite.Tests) {
		t.Errorf("Total tests: expected %d, got %d", len(suite.Tests), metrics.TotalTests)
	}
	if metrics.Accuracy != 1.0 {
		t.Errorf("Perfect selector should have 100%% accuracy, got %.1f%%", metrics.Accuracy*100)
	}
	if len(results) != len(suite.Tests) {
		t.Errorf("Should have a result for each test")
	}
	for _, result := range results {
		if !result.Passed {
			t.Errorf("Test %s should pass with perfect selector", result.TestID)
		}
	}
}

func TestEvaluateToolSelectionWithWrongAnswers(t *testing.T) {
	suite := &ToolSelectionSuite{
		Name: "Test Suite",
		Tests: []ToolSelectionTest{
			{
				ID:           "test-001",
				Category:     "search",
				Input:        "find papers about telomerase",
				ExpectedTool: "search_ncbi",
				ExpectedArgs: map[string]any{"database": "pubmed"},
				NotTools:     []string{"fetch_records"},
			},
			{
				ID:           "test-002",
				Category:     "read",
				Input:        "get the abstract for PMID 31452104",
				ExpectedTool: "fetch_records",
				ExpectedArgs: map[string]any{"database": "pubmed"},
			},
		},
	}

	// Always answers with a tool neither test expects.
	wrongSelector := &mockToolSelector{DefaultTool: "blast_search"}

	metrics, results := EvaluateToolSelection(suite, wrongSelector)

	if metrics.PassedTests != 0 {
		t.Errorf("Wrong selector should have 0 passed tests, got %d", metrics.PassedTests)
	}
	if metrics.FailedTests != 2 {
		t.Errorf("Wrong selector should have 2 failed tests, got %d", metrics.FailedTests)
	}
	if metrics.Accuracy != 0 {
		t.Errorf("Wrong selector should have 0%% accuracy, got %.1f%%", metrics.Accuracy*100)
	}
	if metrics.ByTool["blast_search"].FalsePositives != 2 {
		t.Errorf("blast_search should have 2 false positives, got %d",
			metrics.ByTool["blast_search"].FalsePositives)
	}

	for _, result := range results {
		if result.Passed {
			t.Errorf("Test %s should not pass with wrong selector", result.TestID)
		}
		if len(result.Errors) == 0 {
			t.Errorf("Test %s should have errors", result.TestID)
		}
	}
}

func TestEvaluateConfusionPairs(t *testing.T) {
	suite := &ConfusionPairSuite{
		Name: "Test Confusion Pairs",
		Pairs: []ConfusionPair{
			{
				ID:             "search-vs-fetch",
				Tools:          []string{"search_ncbi", "fetch_records"},
				Disambiguation: "search = topic to IDs, fetch = IDs to records",
				Tests: []ConfusionPairTest{
					{
						Input:    "find papers on gut microbiome",
						Expected: "search_ncbi",
						Reason:   "No IDs in hand",
					},
					{
						Input:    "get the record for PMID 36013323",
						Expected: "fetch_records",
						Reason:   "Explicit ID",
					},
				},
			},
		},
	}

	selector := &mockToolSelector{
		Responses: map[string]struct {
			Tool string
			Args map[string]any
		}{
			"find papers on gut microbiome": {
				Tool: "search_ncbi",
				Args: map[string]any{"database": "pubmed", "query": "gut microbiome"},
			},
			"get the record for PMID 36013323": {
				Tool: "fetch_records",
				Args: map[string]any{"database": "pubmed", "ids": []string{"36013323"}},
			},
		},
	}

	metrics, results := EvaluateConfusionPairs(suite, selector)

	if metrics.TotalTests != 2 {
		t.Errorf("Expected 2 tests, got %d", metrics.TotalTests)
	}
	if metrics.Accuracy != 1.0 {
		t.Errorf("Perfect selector should have 100%% accuracy, got %.1f%%", metrics.Accuracy*100)
	}
	for _, result := range results {
		if !result.Passed {
			t.Errorf("Test should pass: %s", result.TestInput)
		}
	}
}

func TestEvaluateArguments(t *testing.T) {
	suite := &ArgumentSuite{
		Name: "Test Arguments",
		Tests: []ArgumentTest{
			{
				ID:           "args-001",
				Tool:         "search_ncbi",
				Input:        "find at most 20 papers about telomerase",
				RequiredArgs: []string{"database", "query"},
				ExpectedArgs: map[string]any{
					"database":    "pubmed",
					"max_results": float64(20), // JSON numbers are float64
				},
				ForbiddenArgs: []string{"ids"},
			},
		},
	}

	selector := &mockToolSelector{
		Responses: map[string]struct {
			Tool string
			Args map[string]any
		}{
			"find at most 20 papers about telomerase": {
				Tool: "search_ncbi",
				Args: map[string]any{
					"database":    "pubmed",
					"query":       "telomerase",
					"max_results": float64(20),
				},
			},
		},
	}

	metrics, results := EvaluateArguments(suite, selector)

	if metrics.TotalTests != 1 {
		t.Errorf("Expected 1 test, got %d", metrics.TotalTests)
	}
	if metrics.PassedTests != 1 {
		t.Errorf("Expected 1 passed test, got %d", metrics.PassedTests)
	}
	if len(results) > 0 && !results[0].Passed {
		t.Errorf("Test should pass: missing=%v, wrong=%v, forbidden=%v",
			results[0].MissingArgs, results[0].WrongArgs, results[0].ForbiddenHit)
	}
}

func TestEvaluateArgumentsWithForbidden(t *testing.T) {
	suite := &ArgumentSuite{
		Name: "Test Forbidden Args",
		Tests: []ArgumentTest{
			{
				ID:            "args-001",
				Tool:          "search_ncbi",
				Input:         "find papers about telomerase",
				RequiredArgs:  []string{"database", "query"},
				ExpectedArgs:  map[string]any{"database": "pubmed"},
				ForbiddenArgs: []string{"ids"},
			},
		},
	}

	badSelector := &mockToolSelector{
		Responses: map[string]struct {
			Tool string
			Args map[string]any
		}{
			"find papers about telomerase": {
				Tool: "search_ncbi",
				Args: map[string]any{
					"database": "pubmed",
					"query":    "telomerase",
					"ids":      []string{"123"}, // forbidden
				},
			},
		},
	}

	metrics, results := EvaluateArguments(suite, badSelector)

	if metrics.PassedTests != 0 {
		t.Errorf("Expected 0 passed tests (forbidden arg used), got %d", metrics.PassedTests)
	}
	if len(results) > 0 && len(results[0].ForbiddenHit) == 0 {
		t.Error("Should flag forbidden arg usage")
	}
}

func TestEvaluateArgumentsWrongTool(t *testing.T) {
	suite := &ArgumentSuite{
		Name: "Test Wrong Tool",
		Tests: []ArgumentTest{
			{
				ID:           "args-001",
				Tool:         "summarize_records",
				Input:        "just the titles for these PMIDs",
				RequiredArgs: []string{"database", "ids"},
			},
		},
	}

	// Picks the heavier tool instead.
	selector := &mockToolSelector{DefaultTool: "fetch_records"}

	metrics, results := EvaluateArguments(suite, selector)

	if metrics.FailedTests != 1 {
		t.Errorf("Wrong tool should count as a failure, got %d failed", metrics.FailedTests)
	}
	if len(results) != 1 {
		t.Fatalf("Wrong tool should still produce a result, got %d", len(results))
	}
	if results[0].Passed {
		t.Error("Result should not pass when the wrong tool was selected")
	}
	if len(metrics.FailedDetails) != 1 || !strings.Contains(metrics.FailedDetails[0], "wrong tool") {
		t.Errorf("Failure detail should name the wrong tool, got %v", metrics.FailedDetails)
	}
}

func TestCompareValues(t *testing.T) {
	tests := []struct {
		name     string
		expected any
		actual   any
		want     bool
	}{
		{"equal strings", "pubmed", "pubmed", true},
		{"different strings", "pubmed", "protein", false},
		{"int vs float64", 20, float64(20), true},
		{"equal slices", []string{"31452104", "32887946"}, []string{"31452104", "32887946"}, true},
		{"different slices", []string{"31452104"}, []string{"32887946"}, false},
		{"mixed slice types", []any{"31452104"}, []string{"31452104"}, true},
		{"nil values", nil, nil, true},
		{"nil vs value", nil, "pubmed", false},
		{"equal bools", true, true, true},
		{"different bools", true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := compareValues(tt.expected, tt.actual)
			if got != tt.want {
				t.Errorf("compareValues(%v, %v) = %v, want %v", tt.expected, tt.actual, got, tt.want)
			}
		})
	}
}

func TestFormatMetrics(t *testing.T) {
	metrics := &EvalMetrics{
		TotalTests:  10,
		PassedTests: 8,
		FailedTests: 2,
		Accuracy:    0.8,
		ByCategory: map[string]*CategoryMetrics{
			"search": {Total: 5, Passed: 4, Failed: 1},
			"read":   {Total: 5, Passed: 4, Failed: 1},
		},
		ByTool: map[string]*ToolMetrics{
			"search_ncbi":   {ExpectedCount: 5, CorrectCount: 4},
			"fetch_records": {ExpectedCount: 5, CorrectCount: 4, FalsePositives: 1},
		},
		FailedDetails: []string{
			"[test-1] input: error",
			"[test-2] input: error",
		},
	}

	output := FormatMetrics(metrics, "Test Suite")

	if output == "" {
		t.Fatal("FormatMetrics should return non-empty string")
	}
	if !strings.Contains(output, "80") {
		t.Error("Should show accuracy percentage")
	}
	if !strings.Contains(output, "search") {
		t.Error("Should show category breakdown")
	}
	if !strings.Contains(output, "fetch_records") {
		t.Error("Should show per-tool breakdown")
	}
	if !strings.Contains(output, "1 false positives") {
		t.Error("Should show false positives")
	}
	if !strings.Contains(output, "Failed Tests") {
		t.Error("Should show failed tests section")
	}
}

func TestLoadAllEvals(t *testing.T) {
	toolSelection, confusionPairs, arguments, err := LoadAllEvals(".")
	if err != nil {
		t.Fatalf("Failed to load all evals: %v", err)
	}

	if toolSelection == nil {
		t.Error("Tool selection suite should not be nil")
	}
	if confusionPairs == nil {
		t.Error("Confusion pairs suite should not be nil")
	}
	if arguments == nil {
		t.Error("Arguments suite should not be nil")
	}

	total := len(toolSelection.Tests)
	for _, pair := range confusionPairs.Pairs {
		total += len(pair.Tests)
	}
	total += len(arguments.Tests)

	t.Logf("Loaded %d total evaluation tests", total)
}
