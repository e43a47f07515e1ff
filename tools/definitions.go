package tools

// AllTools contains all tool specifications for the NCBI MCP server.
// Tools are organized by category for easier maintenance.
// Tool descriptions follow a structured format for optimal LLM tool selection:
// - USE WHEN: Natural language triggers
// - NOT FOR: Disambiguation from similar tools
// - PARAMETERS: Key arguments with defaults
// - RETURNS: What the tool returns
var AllTools = []ToolSpec{
	// ==========================================================================
	// SEARCH TOOLS
	// ==========================================================================
	{
		Name:     "search_ncbi",
		Method:   "SearchNCBI",
		Title:    "Search NCBI Database",
		Category: "search",
		Service:  "entrez",
		Description: `Search any NCBI database with an Entrez query and get matching record IDs.

USE WHEN: User asks "find papers about X", "search PubMed for Y", "how many sequences match Z", or any lookup where the record IDs are not yet known.

NOT FOR: Retrieving record content for IDs you already have (use fetch_records or summarize_records). Not for sequence similarity (use blast_search).

PARAMETERS:
- database: NCBI database name, e.g. pubmed, protein, nuccore, gene (required)
- query: Entrez query; field tags work, e.g. "CRISPR[Title] AND 2024[PDAT]" (required)
- max_results: Max IDs to return (default 20)
- start_index: Offset for pagination (default 0)
- sort_order: Sort order, e.g. relevance, pub_date (optional)

RETURNS: Matching record IDs with the total match count, the translated query, and history-server keys (web_env, query_key) for paging.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// READ TOOLS
	// ==========================================================================
	{
		Name:     "fetch_records",
		Method:   "FetchRecords",
		Title:    "Fetch Records",
		Category: "read",
		Service:  "entrez",
		Description: `Retrieve full records by ID in a chosen format.

USE WHEN: User says "get the abstract of PMID X", "download the FASTA for these accessions", "show me the full GenBank record".

NOT FOR: Compact metadata across many records (use summarize_records). Not for discovering IDs (use search_ncbi first).

PARAMETERS:
- database: NCBI database the records live in (required)
- ids: Record IDs to fetch (required)
- return_type: Record format - abstract, fasta, gb, xml (default xml)
- return_mode: Transfer mode - xml, text, json (default xml)

RETURNS: Raw record text exactly as NCBI serves it (XML, FASTA, GenBank flat file, or plain text). Not wrapped in JSON.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "summarize_records",
		Method:   "SummarizeRecords",
		Title:    "Summarize Records",
		Category: "read",
		Service:  "entrez",
		Description: `Get compact document summaries (title, authors, journal, date, DOI) for record IDs.

USE WHEN: User asks "what are these papers about", "list title and authors for these PMIDs", or needs an overview of many records at once.

NOT FOR: Full abstracts, sequences, or complete records (use fetch_records).

PARAMETERS:
- database: NCBI database the records live in (required)
- ids: Record IDs to summarize (required)

RETURNS: One summary per record with uid, title, authors, journal, pub_date, doi, and pmid.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// LINK TOOLS
	// ==========================================================================
	{
		Name:     "find_related_records",
		Method:   "FindRelatedRecords",
		Title:    "Find Related Records",
		Category: "link",
		Service:  "entrez",
		Description: `Find records in one NCBI database related to records in another.

USE WHEN: User asks "find protein sequences for this paper", "which papers discuss this gene", "get structures linked to these proteins" - crossing from one database to another.

NOT FOR: Finding records matching a text query (use search_ncbi).

PARAMETERS:
- source_database: Database the given IDs belong to (required)
- target_database: Database to find related records in (required)
- ids: Record IDs to link from (required)

RETURNS: Related record IDs in the target database with a count. An empty result means no links exist, not an error.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// METADATA TOOLS
	// ==========================================================================
	{
		Name:     "get_database_info",
		Method:   "GetDatabaseInfo",
		Title:    "Get Database Info",
		Category: "metadata",
		Service:  "entrez",
		Description: `Get metadata about an NCBI database: record counts, searchable fields, and links.

USE WHEN: User asks "what fields can I search in pubmed", "describe the gene database", "what links exist from protein to other databases".

NOT FOR: Just the list of database names (use list_databases - much cheaper).

PARAMETERS:
- database: Database to describe (optional; omit for metadata on every database)

RETURNS: Database description including record count, last update, field list with names and descriptions, and available links.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "list_databases",
		Method:   "ListDatabases",
		Title:    "List Databases",
		Category: "metadata",
		Service:  "entrez",
		Description: `List all NCBI databases available for searching.

USE WHEN: User asks "what databases are available", "where can I search for X", or before picking a database value for other tools.

NOT FOR: Field and link details of one database (use get_database_info).

PARAMETERS: None

RETURNS: All E-utilities database names. Never fails; serves a built-in catalog when NCBI is unreachable.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// ANALYSIS TOOLS
	// ==========================================================================
	{
		Name:     "blast_search",
		Method:   "BlastSearch",
		Title:    "BLAST Sequence Search",
		Category: "analysis",
		Service:  "blast",
		Description: `Run a BLAST sequence-similarity search against an NCBI sequence database.

USE WHEN: User asks "what is this sequence", "find similar sequences", "identify this DNA/protein", or pastes a nucleotide or protein sequence.

NOT FOR: Text queries over literature or metadata (use search_ncbi).

PARAMETERS:
- program: blastn, blastp, blastx, tblastn, or tblastx (required)
- database: BLAST database, e.g. nt, nr, refseq_rna, refseq_protein, swissprot, pdb (required)
- sequence: Query sequence, bare or as a FASTA record (required)
- expect_value: E-value threshold, lower is stricter (default 10.0)
- word_size: Initial exact-match length (optional)
- matrix: Protein scoring matrix, e.g. BLOSUM62 (optional)
- gap_costs: Gap open and extend costs, e.g. "11 1" (optional)
- megablast: Fast nucleotide-vs-nucleotide mode, blastn only (default false)
- output_fmt: "full" includes aligned sequence strings, "summary" only scores and coordinates (default full)

RETURNS: Alignments with bit scores, e-values, identities, and coordinates; full format adds the aligned sequence strings.

NOTE: Runs synchronously. NCBI queues jobs, so calls commonly take 30 seconds to several minutes.`,
		ReadOnly:   true,
		Idempotent: false,
		OpenWorld:  true,
	},
}
