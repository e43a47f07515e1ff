// Command evals inspects and audits the MCP tool evaluation suites.
//
// Usage:
//
//	go run ./cmd/evals -dir ./evals -suite all
//
// The command loads the JSON suites, prints their coverage, and audits
// every tool reference against the live tool registry so the suites
// cannot drift silently when tools are renamed. For actual LLM
// evaluation, implement evals.ToolSelector and use the Evaluate
// functions from the evals package.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/olgasafonova/ncbi-mcp-server/evals"
	"github.com/olgasafonova/ncbi-mcp-server/tools"
)

func main() {
	dir := flag.String("dir", "./evals", "Directory containing eval JSON files")
	suite := flag.String("suite", "all", "Suite to load: tool_selection, confusion_pairs, arguments, or all")
	verbose := flag.Bool("verbose", false, "Show detailed test information")
	threshold := flag.Float64("threshold", 1.0, "Minimum fraction of tests whose tool references must resolve")
	flag.Parse()

	fmt.Println("NCBI MCP Server - Evaluation Suites")
	fmt.Println("===================================")
	fmt.Println()

	known := registeredTools()

	var audits []auditResult
	switch *suite {
	case "tool_selection":
		audits = append(audits, reportToolSelection(*dir, *verbose, known))
	case "confusion_pairs":
		audits = append(audits, reportConfusionPairs(*dir, *verbose, known))
	case "arguments":
		audits = append(audits, reportArguments(*dir, *verbose, known))
	case "all":
		audits = reportAll(*dir, *verbose, known)
	default:
		fmt.Fprintf(os.Stderr, "Unknown suite: %s\n", *suite)
		os.Exit(1)
	}

	exitCode := 0
	for _, a := range audits {
		if a.accuracy() < *threshold {
			fmt.Fprintf(os.Stderr, "%s: audit accuracy %.0f%% is below threshold %.0f%%\n",
				a.Suite, a.accuracy()*100, *threshold*100)
			exitCode = 1
		}
	}
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

// auditResult counts how many tests in a suite reference only tools that
// actually exist in the registry.
type auditResult struct {
	Suite    string
	Total    int
	Valid    int
	Problems []string
}

func (a auditResult) accuracy() float64 {
	if a.Total == 0 {
		return 1
	}
	return float64(a.Valid) / float64(a.Total)
}

func registeredTools() map[string]bool {
	known := make(map[string]bool, len(tools.AllTools))
	for _, spec := range tools.AllTools {
		known[spec.Name] = true
	}
	return known
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func printAudit(a auditResult) {
	fmt.Printf("Registry audit: %d/%d tests reference only registered tools (%.0f%%)\n",
		a.Valid, a.Total, a.accuracy()*100)
	for _, p := range a.Problems {
		fmt.Printf("  ! %s\n", p)
	}
	fmt.Println()
}

func reportToolSelection(dir string, verbose bool, known map[string]bool) auditResult {
	path := filepath.Join(dir, "tool_selection.json")
	suite, err := evals.LoadToolSelectionSuite(path)
	if err != nil {
		fatalf("Error loading tool selection suite: %v", err)
	}

	fmt.Printf("Tool Selection Suite: %s\n", suite.Name)
	fmt.Printf("Version: %s\n", suite.Version)
	fmt.Printf("Total Tests: %d\n", len(suite.Tests))
	fmt.Println()

	categories := make(map[string]int)
	byTool := make(map[string]int)
	for _, test := range suite.Tests {
		categories[test.Category]++
		byTool[test.ExpectedTool]++
	}

	fmt.Println("Tests by Category:")
	for _, cat := range sortedKeys(categories) {
		fmt.Printf("  %-15s: %d\n", cat, categories[cat])
	}
	fmt.Println()

	fmt.Println("Tests by Tool:")
	for _, tool := range sortedKeys(byTool) {
		fmt.Printf("  %-25s: %d\n", tool, byTool[tool])
	}
	fmt.Println()

	if verbose {
		fmt.Println("Test Cases:")
		for _, test := range suite.Tests {
			fmt.Printf("  [%s] %s\n", test.ID, test.Input)
			fmt.Printf("    → %s\n", test.ExpectedTool)
			if len(test.NotTools) > 0 {
				fmt.Printf("    ✗ %v\n", test.NotTools)
			}
		}
		fmt.Println()
	}

	audit := auditToolSelection(suite, known)
	printAudit(audit)
	return audit
}

func auditToolSelection(suite *evals.ToolSelectionSuite, known map[string]bool) auditResult {
	audit := auditResult{Suite: "tool_selection", Total: len(suite.Tests)}
	for _, test := range suite.Tests {
		ok := true
		if !known[test.ExpectedTool] {
			ok = false
			audit.Problems = append(audit.Problems,
				fmt.Sprintf("[%s] expected tool %q is not registered", test.ID, test.ExpectedTool))
		}
		for _, name := range test.NotTools {
			if !known[name] {
				ok = false
				audit.Problems = append(audit.Problems,
					fmt.Sprintf("[%s] forbidden tool %q is not registered", test.ID, name))
			}
		}
		if ok {
			audit.Valid++
		}
	}
	return audit
}

func reportConfusionPairs(dir string, verbose bool, known map[string]bool) auditResult {
	path := filepath.Join(dir, "confusion_pairs.json")
	suite, err := evals.LoadConfusionPairSuite(path)
	if err != nil {
		fatalf("Error loading confusion pairs suite: %v", err)
	}

	totalTests := 0
	for _, pair := range suite.Pairs {
		totalTests += len(pair.Tests)
	}

	fmt.Printf("Confusion Pairs Suite: %s\n", suite.Name)
	fmt.Printf("Version: %s\n", suite.Version)
	fmt.Printf("Total Pairs: %d\n", len(suite.Pairs))
	fmt.Printf("Total Tests: %d\n", totalTests)
	fmt.Println()

	fmt.Println("Confusion Pairs:")
	for _, pair := range suite.Pairs {
		fmt.Printf("\n  %s:\n", pair.ID)
		fmt.Printf("    Tools: %v\n", pair.Tools)
		fmt.Printf("    Rule: %s\n", pair.Disambiguation)
		fmt.Printf("    Tests: %d\n", len(pair.Tests))

		if verbose {
			for _, test := range pair.Tests {
				fmt.Printf("      %q\n", test.Input)
				fmt.Printf("        → %s (%s)\n", test.Expected, test.Reason)
			}
		}
	}
	fmt.Println()

	audit := auditConfusionPairs(suite, known)
	printAudit(audit)
	return audit
}

func auditConfusionPairs(suite *evals.ConfusionPairSuite, known map[string]bool) auditResult {
	audit := auditResult{Suite: "confusion_pairs"}
	for _, pair := range suite.Pairs {
		pairOK := true
		for _, name := range pair.Tools {
			if !known[name] {
				pairOK = false
				audit.Problems = append(audit.Problems,
					fmt.Sprintf("[%s] pair tool %q is not registered", pair.ID, name))
			}
		}
		for _, test := range pair.Tests {
			audit.Total++
			if pairOK && known[test.Expected] {
				audit.Valid++
			} else if !known[test.Expected] {
				audit.Problems = append(audit.Problems,
					fmt.Sprintf("[%s] expected tool %q is not registered", pair.ID, test.Expected))
			}
		}
	}
	return audit
}

func reportArguments(dir string, verbose bool, known map[string]bool) auditResult {
	path := filepath.Join(dir, "argument_correctness.json")
	suite, err := evals.LoadArgumentSuite(path)
	if err != nil {
		fatalf("Error loading argument suite: %v", err)
	}

	fmt.Printf("Argument Suite: %s\n", suite.Name)
	fmt.Printf("Version: %s\n", suite.Version)
	fmt.Printf("Total Tests: %d\n", len(suite.Tests))
	fmt.Println()

	byTool := make(map[string]int)
	for _, test := range suite.Tests {
		byTool[test.Tool]++
	}

	fmt.Println("Tests by Tool:")
	for _, tool := range sortedKeys(byTool) {
		fmt.Printf("  %-25s: %d\n", tool, byTool[tool])
	}
	fmt.Println()

	fmt.Println("Validation Rules:")
	fmt.Printf("  Database Names: %s\n", suite.ValidationRules.DatabaseNames)
	fmt.Printf("  ID Handling: %s\n", suite.ValidationRules.IDHandling)
	fmt.Printf("  Boolean Handling: %s\n", suite.ValidationRules.BooleanHandling)
	fmt.Printf("  Array Handling: %s\n", suite.ValidationRules.ArrayHandling)
	fmt.Printf("  Sequence Handling: %s\n", suite.ValidationRules.SequenceHandling)
	fmt.Println()

	if verbose {
		fmt.Println("Test Cases:")
		for _, test := range suite.Tests {
			fmt.Printf("  [%s] %s\n", test.ID, test.Input)
			fmt.Printf("    Tool: %s\n", test.Tool)
			fmt.Printf("    Required: %v\n", test.RequiredArgs)
			fmt.Printf("    Expected: %v\n", test.ExpectedArgs)
			if len(test.ForbiddenArgs) > 0 {
				fmt.Printf("    Forbidden: %v\n", test.ForbiddenArgs)
			}
			if test.ArgNotes != "" {
				fmt.Printf("    Notes: %s\n", test.ArgNotes)
			}
		}
		fmt.Println()
	}

	audit := auditArguments(suite, known)
	printAudit(audit)
	return audit
}

func auditArguments(suite *evals.ArgumentSuite, known map[string]bool) auditResult {
	audit := auditResult{Suite: "arguments", Total: len(suite.Tests)}
	for _, test := range suite.Tests {
		if known[test.Tool] {
			audit.Valid++
		} else {
			audit.Problems = append(audit.Problems,
				fmt.Sprintf("[%s] tool %q is not registered", test.ID, test.Tool))
		}
	}
	return audit
}

func reportAll(dir string, verbose bool, known map[string]bool) []auditResult {
	toolSelection, confusionPairs, arguments, err := evals.LoadAllEvals(dir)
	if err != nil {
		fatalf("Error loading evals: %v", err)
	}

	confusionTests := 0
	for _, pair := range confusionPairs.Pairs {
		confusionTests += len(pair.Tests)
	}
	totalTests := len(toolSelection.Tests) + confusionTests + len(arguments.Tests)

	fmt.Printf("Loaded all evaluation suites from: %s\n\n", dir)

	fmt.Println("Summary:")
	fmt.Println("--------")
	fmt.Printf("Tool Selection Tests:   %d\n", len(toolSelection.Tests))
	fmt.Printf("Confusion Pair Tests:   %d (across %d pairs)\n", confusionTests, len(confusionPairs.Pairs))
	fmt.Printf("Argument Tests:         %d\n", len(arguments.Tests))
	fmt.Printf("Total Evaluation Tests: %d\n", totalTests)
	fmt.Println()

	// Which registered tools appear in at least one suite.
	covered := make(map[string]bool)
	for _, test := range toolSelection.Tests {
		covered[test.ExpectedTool] = true
	}
	for _, pair := range confusionPairs.Pairs {
		for _, tool := range pair.Tools {
			covered[tool] = true
		}
	}
	for _, test := range arguments.Tests {
		covered[test.Tool] = true
	}

	coveredCount := 0
	var uncovered []string
	for name := range known {
		if covered[name] {
			coveredCount++
		} else {
			uncovered = append(uncovered, name)
		}
	}
	sort.Strings(uncovered)

	fmt.Printf("Tool Coverage: %d/%d registered tools appear in at least one suite\n", coveredCount, len(known))
	for _, name := range uncovered {
		fmt.Printf("  missing: %s\n", name)
	}
	if verbose {
		fmt.Println("\nCovered Tools:")
		var names []string
		for name := range covered {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("  ✓ %s\n", name)
		}
	}
	fmt.Println()

	audits := []auditResult{
		auditToolSelection(toolSelection, known),
		auditConfusionPairs(confusionPairs, known),
		auditArguments(arguments, known),
	}
	for _, a := range audits {
		fmt.Printf("[%s] ", a.Suite)
		printAudit(a)
	}

	fmt.Println("To run with LLM integration, implement the evals.ToolSelector interface")
	fmt.Println("and use EvaluateToolSelection(), EvaluateConfusionPairs(), EvaluateArguments()")

	return audits
}
