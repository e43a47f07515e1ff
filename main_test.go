package main

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/olgasafonova/ncbi-mcp-server/internal/entrez"
	"github.com/olgasafonova/ncbi-mcp-server/tools"
)

func TestLogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"nonsense", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run("level "+tt.value, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tt.value)
			if got := logLevel(); got != tt.want {
				t.Errorf("logLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildDatabasesMarkdown(t *testing.T) {
	md := buildDatabasesMarkdown([]string{"pubmed", "protein", "somethingnew"})

	if !strings.Contains(md, "# Available NCBI Databases") {
		t.Error("Markdown should have the catalog header")
	}
	if !strings.Contains(md, "Total databases: 3") {
		t.Errorf("Markdown should report 3 databases:\n%s", md)
	}
	if !strings.Contains(md, "- **pubmed**: PubMed biomedical literature database") {
		t.Error("Known databases should get their curated description")
	}
	if !strings.Contains(md, "- **somethingnew**: NCBI database") {
		t.Error("Unknown databases should get the generic description")
	}
	if !strings.Contains(md, "## Usage") {
		t.Error("Markdown should have a usage footer")
	}
	if !strings.Contains(md, "search_ncbi") {
		t.Error("Usage footer should name the search tool")
	}
}

func TestBuildDatabasesMarkdownEmpty(t *testing.T) {
	md := buildDatabasesMarkdown(nil)

	if !strings.Contains(md, "Total databases: 0") {
		t.Errorf("Empty catalog should report zero databases:\n%s", md)
	}
}

func TestBlastProgramsMarkdown(t *testing.T) {
	for _, program := range []string{"blastn", "blastp", "blastx", "tblastn", "tblastx"} {
		if !strings.Contains(blastProgramsMarkdown, "**"+program+"**") {
			t.Errorf("BLAST reference should describe %s", program)
		}
	}
	for _, db := range []string{"nt", "nr", "refseq_rna", "refseq_protein", "pdb", "swissprot", "16S_ribosomal_RNA"} {
		if !strings.Contains(blastProgramsMarkdown, "**"+db+"**") {
			t.Errorf("BLAST reference should list the %s database", db)
		}
	}
	if !strings.Contains(blastProgramsMarkdown, "blast_search") {
		t.Error("BLAST reference should include usage examples naming the tool")
	}
	if !strings.Contains(blastProgramsMarkdown, "megablast") {
		t.Error("BLAST reference should mention the megablast option")
	}
}

func TestServerInstructionsCoverAllTools(t *testing.T) {
	for _, spec := range tools.AllTools {
		if !strings.Contains(serverInstructions, spec.Name) {
			t.Errorf("Instructions should mention tool %s", spec.Name)
		}
	}

	for _, uri := range []string{"ncbi://databases", "ncbi://blast-programs"} {
		if !strings.Contains(serverInstructions, uri) {
			t.Errorf("Instructions should mention resource %s", uri)
		}
	}
}

func TestRegisterResources(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<eInfoResult><DbList><DbName>pubmed</DbName><DbName>protein</DbName></DbList></eInfoResult>`))
	}))
	defer upstream.Close()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	client := entrez.NewClient(&entrez.Config{BaseURL: upstream.URL}, entrez.WithLogger(logger))

	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, nil)

	// Registration must not panic and the catalog must render from the
	// live database list.
	registerResources(server, client)

	md := buildDatabasesMarkdown(client.Databases(context.Background()))
	if !strings.Contains(md, "Total databases: 2") {
		t.Errorf("Catalog should reflect the upstream list:\n%s", md)
	}
	if !strings.Contains(md, "- **protein**: Protein sequence database") {
		t.Error("Catalog should describe the protein database")
	}
}
