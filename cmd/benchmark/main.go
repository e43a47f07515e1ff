// Command benchmark measures client-side performance characteristics:
// pacer spacing across sequential ESearch calls, ESummary latency, and
// XML parse throughput on an embedded fixture.
//
// By default it runs against a local stub server, so the numbers show
// client overhead and pacing rather than network conditions. Pass -live
// to hit the real E-utilities endpoint instead.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"text/tabwriter"
	"time"

	"github.com/olgasafonova/ncbi-mcp-server/internal/entrez"
	"github.com/olgasafonova/ncbi-mcp-server/internal/xmltree"
)

func main() {
	live := flag.Bool("live", false, "Run against the real E-utilities endpoint instead of a local stub")
	db := flag.String("db", "pubmed", "Database for the search and summary measurements")
	query := flag.String("query", "crispr[Title]", "ESearch query for the pacing measurement")
	calls := flag.Int("calls", 5, "Sequential ESearch calls for the pacing measurement")
	parseIters := flag.Int("parse-iters", 2000, "Iterations for the XML parse throughput measurement")
	flag.Parse()

	fmt.Println("NCBI MCP Server - Performance Measurements")
	fmt.Println("==========================================")
	fmt.Println()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	var cfg *entrez.Config
	if *live {
		cfg = entrez.LoadConfig()
		fmt.Printf("Mode: live (%s)\n\n", cfg.BaseURL)
	} else {
		stub := newStubServer()
		defer stub.Close()
		cfg = &entrez.Config{
			BaseURL:   stub.URL,
			Tool:      entrez.DefaultTool,
			Email:     entrez.DefaultEmail,
			Timeout:   10 * time.Second,
			UserAgent: entrez.DefaultTool + "/benchmark",
		}
		fmt.Println("Mode: local stub (pass -live for the real endpoint)")
		fmt.Println()
	}

	client := entrez.NewClient(cfg, entrez.WithLogger(logger))
	ctx := context.Background()

	ids := measureSearchPacing(ctx, client, *db, *query, *calls)
	measureSummaryLatency(ctx, client, *db, ids)
	measureParseThroughput(*parseIters)

	fmt.Println("=== Summary ===")
	fmt.Println()
	fmt.Println("• One shared pacer spaces all E-utilities calls: 340ms apart without")
	fmt.Println("  an API key, 100ms with NCBI_API_KEY set")
	fmt.Println("• The first call in a burst goes out immediately; the pacer cost only")
	fmt.Println("  shows up from the second call on")
	fmt.Println("• EFetch is deliberately unpaced, so large record transfers pay only")
	fmt.Println("  the transfer cost")
	fmt.Println("• XML parsing is a small fraction of request latency even for")
	fmt.Println("  multi-document summaries")
}

// measureSearchPacing runs sequential searches and shows how the pacer
// spaces them. Returns the IDs from the last response for reuse.
func measureSearchPacing(ctx context.Context, client *entrez.Client, db, query string, calls int) []string {
	fmt.Println("=== ESearch Pacing ===")
	fmt.Printf("Configured spacing: %v (API key: %v)\n\n", client.Config().PaceInterval(), client.Config().HasAPIKey())

	if calls < 1 {
		calls = 1
	}

	var ids []string
	latencies := make([]time.Duration, 0, calls)
	gaps := make([]time.Duration, 0, calls)
	var lastStart time.Time

	for i := 0; i < calls; i++ {
		start := time.Now()
		result, err := client.Search(ctx, db, query, 5, 0, "", false)
		if err != nil {
			fmt.Printf("search error: %v\n\n", err)
			return nil
		}
		latencies = append(latencies, time.Since(start))
		if !lastStart.IsZero() {
			gaps = append(gaps, start.Sub(lastStart))
		}
		lastStart = start
		ids = result.IDs
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "call\tlatency\tgap from previous call")
	for i, latency := range latencies {
		gap := "-"
		if i > 0 {
			gap = gaps[i-1].Round(time.Millisecond).String()
		}
		fmt.Fprintf(w, "%d\t%v\t%s\n", i+1, latency.Round(time.Millisecond), gap)
	}
	w.Flush()

	if len(gaps) > 0 {
		var sum time.Duration
		for _, g := range gaps {
			sum += g
		}
		avg := sum / time.Duration(len(gaps))
		fmt.Printf("\nAverage gap: %v (configured: %v)\n", avg.Round(time.Millisecond), client.Config().PaceInterval())
	}
	fmt.Println()
	return ids
}

func measureSummaryLatency(ctx context.Context, client *entrez.Client, db string, ids []string) {
	fmt.Println("=== ESummary Latency ===")
	if len(ids) == 0 {
		fmt.Println("no IDs from the search step, skipping")
		fmt.Println()
		return
	}

	start := time.Now()
	summaries, err := client.Summary(ctx, db, ids)
	if err != nil {
		fmt.Printf("summary error: %v\n\n", err)
		return
	}
	elapsed := time.Since(start)

	fmt.Printf("%d summaries in %v", len(summaries), elapsed.Round(time.Millisecond))
	if len(summaries) > 0 {
		fmt.Printf(" (%v per record)", (elapsed / time.Duration(len(summaries))).Round(time.Microsecond))
	}
	fmt.Println()
	fmt.Println()
}

func measureParseThroughput(iters int) {
	fmt.Println("=== XML Parse Throughput ===")
	if iters < 1 {
		iters = 1
	}

	data := []byte(esummaryFixture)
	start := time.Now()
	for i := 0; i < iters; i++ {
		if _, err := xmltree.Parse(data); err != nil {
			fmt.Printf("parse error: %v\n\n", err)
			return
		}
	}
	elapsed := time.Since(start)

	totalBytes := float64(len(data)) * float64(iters)
	fmt.Printf("%d iterations over a %d-byte ESummary response in %v\n",
		iters, len(data), elapsed.Round(time.Millisecond))
	fmt.Printf("Throughput: %.1f MB/s (%.0f responses/s)\n",
		totalBytes/elapsed.Seconds()/1e6, float64(iters)/elapsed.Seconds())
	fmt.Println()
}

// newStubServer serves canned E-utilities responses instantly, leaving
// the pacer as the only source of spacing.
func newStubServer() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/esearch.fcgi", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/xml; charset=UTF-8")
		fmt.Fprint(w, esearchFixture)
	})
	mux.HandleFunc("/esummary.fcgi", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/xml; charset=UTF-8")
		fmt.Fprint(w, esummaryFixture)
	})
	return httptest.NewServer(mux)
}

const esearchFixture = `<?xml version="1.0" encoding="UTF-8"?>
<eSearchResult>
	<Count>2</Count>
	<RetMax>2</RetMax>
	<RetStart>0</RetStart>
	<IdList>
		<Id>31452104</Id>
		<Id>32887946</Id>
	</IdList>
	<QueryTranslation>crispr[Title]</QueryTranslation>
</eSearchResult>`

const esummaryFixture = `<?xml version="1.0" encoding="UTF-8"?>
<eSummaryResult>
	<DocSum>
		<Id>31452104</Id>
		<Item Name="PubDate" Type="Date">2019 Aug 26</Item>
		<Item Name="Source" Type="String">Nat Methods</Item>
		<Item Name="AuthorList" Type="List">
			<Item Name="Author" Type="String">Larsen K</Item>
			<Item Name="Author" Type="String">Moreno S</Item>
		</Item>
		<Item Name="Title" Type="String">Improved base editing outcomes in primary cells.</Item>
		<Item Name="FullJournalName" Type="String">Nature methods</Item>
		<Item Name="DOI" Type="String">10.1000/nm.2019.4521</Item>
	</DocSum>
	<DocSum>
		<Id>32887946</Id>
		<Item Name="PubDate" Type="Date">2020 Sep 4</Item>
		<Item Name="Source" Type="String">Genome Biol</Item>
		<Item Name="AuthorList" Type="List">
			<Item Name="Author" Type="String">Okafor C</Item>
		</Item>
		<Item Name="Title" Type="String">Benchmarking CRISPR guide design across cell lines.</Item>
		<Item Name="FullJournalName" Type="String">Genome biology</Item>
		<Item Name="DOI" Type="String">10.1000/gb.2020.8879</Item>
	</DocSum>
</eSummaryResult>`
