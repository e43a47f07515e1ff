package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/olgasafonova/ncbi-mcp-server/internal/entrez"
)

// databaseDescriptions holds curated one-liners for the common
// databases. Anything not listed renders as a generic entry.
var databaseDescriptions = map[string]string{
	"pubmed":     "PubMed biomedical literature database",
	"protein":    "Protein sequence database",
	"nucleotide": "Nucleotide sequence database",
	"nuccore":    "Nucleotide collection (GenBank+EMBL+DDBJ+PDB+RefSeq)",
	"gene":       "Gene-centered information",
	"genome":     "Genome sequencing projects",
	"assembly":   "Genome assemblies",
	"bioproject": "BioProject metadata",
	"biosample":  "BioSample metadata",
	"sra":        "Sequence Read Archive",
	"taxonomy":   "Taxonomic information",
	"pmc":        "PubMed Central full-text articles",
	"books":      "NCBI Bookshelf",
	"mesh":       "Medical Subject Headings",
	"snp":        "Single Nucleotide Polymorphism",
	"clinvar":    "Clinical significance of genomic variation",
}

// buildDatabasesMarkdown renders the database catalog resource body.
func buildDatabasesMarkdown(databases []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Available NCBI Databases\n\nTotal databases: %d\n\n", len(databases))

	for _, db := range databases {
		description, ok := databaseDescriptions[db]
		if !ok {
			description = "NCBI database"
		}
		fmt.Fprintf(&b, "- **%s**: %s\n", db, description)
	}

	b.WriteString("\n## Usage\nUse these database names with the search_ncbi, fetch_records, and other tools.\n")
	return b.String()
}

const blastProgramsMarkdown = `# BLAST Programs Available

## Basic BLAST Programs

- **blastn**: Nucleotide-nucleotide BLAST
  - Compares nucleotide query sequences against nucleotide sequence databases
  - Best for DNA/RNA sequences
  - The megablast option is available only on blastn, for highly similar sequences

- **blastp**: Protein-protein BLAST
  - Compares amino acid query sequences against protein sequence databases
  - Best for protein sequences

- **blastx**: Nucleotide-protein BLAST
  - Compares nucleotide query sequences translated in all frames against protein databases
  - Useful for finding protein matches for DNA sequences
  - Good for gene prediction from short nucleotide sequences; long sequences may fail due to resource limits

- **tblastn**: Protein-nucleotide BLAST
  - Compares protein query sequences against nucleotide databases translated in all frames
  - Useful for finding DNA matches for protein sequences

- **tblastx**: Translated nucleotide-nucleotide BLAST
  - Compares nucleotide query sequences translated in all frames against nucleotide databases also translated in all frames
  - Most sensitive but slowest option

## Common BLAST Databases

### Nucleotide Databases
- **nt**: Non-redundant nucleotide collection
- **refseq_rna**: RefSeq RNA sequences
- **16S_ribosomal_RNA**: 16S ribosomal RNA sequences

### Protein Databases
- **nr**: Non-redundant protein sequences
- **refseq_protein**: RefSeq protein sequences
- **pdb**: Protein Data Bank sequences
- **swissprot**: SwissProt protein sequences

## Usage Examples

Slow search for distant nucleotide homology, full alignments returned:

    blast_search {"program": "blastn", "database": "nt", "sequence": "ATCGATCGATCG", "expect_value": 0.001}

Fast megablast for near-identical sequences, scores and coordinates only:

    blast_search {"program": "blastn", "database": "nt", "sequence": "ATCGATCGATCG", "megablast": true, "output_fmt": "summary"}
`

// registerResources registers the ncbi:// resources with the MCP server.
// Resource bodies are markdown; the database catalog is built live so it
// reflects what the upstream actually serves.
func registerResources(server *mcp.Server, client *entrez.Client) {
	server.AddResource(&mcp.Resource{
		URI:         "ncbi://databases",
		Name:        "databases",
		Description: "Catalog of NCBI databases available for searching",
		MIMEType:    "text/markdown",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		databases := client.Databases(ctx)
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "text/markdown",
				Text:     buildDatabasesMarkdown(databases),
			}},
		}, nil
	})

	server.AddResource(&mcp.Resource{
		URI:         "ncbi://blast-programs",
		Name:        "blast-programs",
		Description: "Reference for BLAST programs, databases, and parameters",
		MIMEType:    "text/markdown",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "text/markdown",
				Text:     blastProgramsMarkdown,
			}},
		}, nil
	})
}
