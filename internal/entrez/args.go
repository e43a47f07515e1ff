package entrez

// SearchNCBIArgs contains parameters for an NCBI database search
type SearchNCBIArgs struct {
	Database   string `json:"database" jsonschema:"required" jsonschema_description:"NCBI database to search (e.g. pubmed, protein, nuccore, gene)"`
	Query      string `json:"query" jsonschema:"required" jsonschema_description:"Entrez query string; field tags are supported (e.g. 'CRISPR[Title] AND 2024[PDAT]')"`
	MaxResults int    `json:"max_results,omitempty" jsonschema_description:"Maximum number of record IDs to return (default: 20)"`
	StartIndex int    `json:"start_index,omitempty" jsonschema_description:"Zero-based offset into the full result set, for pagination (default: 0)"`
	SortOrder  string `json:"sort_order,omitempty" jsonschema_description:"Sort order, database specific (e.g. relevance, pub_date)"`
}

// SearchNCBIResult is the result of an NCBI database search
type SearchNCBIResult struct {
	Success          bool     `json:"success"`
	Error            string   `json:"error,omitempty"`
	Database         string   `json:"database"`
	Query            string   `json:"query"`
	TotalCount       int      `json:"total_count"`
	ReturnedCount    int      `json:"returned_count"`
	StartIndex       int      `json:"start_index"`
	IDs              []string `json:"ids"`
	QueryTranslation string   `json:"query_translation,omitempty"`
	WebEnv           string   `json:"web_env,omitempty"`
	QueryKey         string   `json:"query_key,omitempty"`
}

// FetchRecordsArgs contains parameters for fetching full records
type FetchRecordsArgs struct {
	Database   string   `json:"database" jsonschema:"required" jsonschema_description:"NCBI database the records live in"`
	IDs        []string `json:"ids" jsonschema:"required" jsonschema_description:"Record IDs to fetch"`
	ReturnType string   `json:"return_type,omitempty" jsonschema_description:"Record format such as abstract, fasta, gb or xml (default: xml)"`
	ReturnMode string   `json:"return_mode,omitempty" jsonschema_description:"Transfer mode: xml, text or json (default: xml)"`
}

// FetchRecordsResult is the result of fetching full records. On
// success Data carries the upstream payload verbatim and is returned
// as raw text rather than JSON.
type FetchRecordsResult struct {
	Data     string   `json:"-"`
	Success  bool     `json:"success"`
	Error    string   `json:"error,omitempty"`
	Database string   `json:"database"`
	IDs      []string `json:"ids"`
}

// SummarizeRecordsArgs contains parameters for summarizing records
type SummarizeRecordsArgs struct {
	Database string   `json:"database" jsonschema:"required" jsonschema_description:"NCBI database the records live in"`
	IDs      []string `json:"ids" jsonschema:"required" jsonschema_description:"Record IDs to summarize"`
}

// SummarizeRecordsResult is the result of summarizing records
type SummarizeRecordsResult struct {
	Success   bool              `json:"success"`
	Error     string            `json:"error,omitempty"`
	Database  string            `json:"database"`
	IDs       []string          `json:"ids"`
	Summaries []DocumentSummary `json:"summaries"`
}

// FindRelatedRecordsArgs contains parameters for cross-database linking
type FindRelatedRecordsArgs struct {
	SourceDatabase string   `json:"source_database" jsonschema:"required" jsonschema_description:"Database the given IDs belong to"`
	TargetDatabase string   `json:"target_database" jsonschema:"required" jsonschema_description:"Database to find related records in"`
	IDs            []string `json:"ids" jsonschema:"required" jsonschema_description:"Record IDs to find related records for"`
}

// FindRelatedRecordsResult is the result of cross-database linking
type FindRelatedRecordsResult struct {
	Success        bool     `json:"success"`
	Error          string   `json:"error,omitempty"`
	SourceDatabase string   `json:"source_database"`
	TargetDatabase string   `json:"target_database"`
	SourceIDs      []string `json:"source_ids"`
	RelatedIDs     []string `json:"related_ids"`
	RelatedCount   int      `json:"related_count"`
}

// GetDatabaseInfoArgs contains parameters for database metadata lookup
type GetDatabaseInfoArgs struct {
	Database string `json:"database,omitempty" jsonschema_description:"Database to describe; omit to list every database with its metadata"`
}

// GetDatabaseInfoResult is the result of a database metadata lookup.
// Info carries the full EInfo tree because its shape varies by database.
type GetDatabaseInfoResult struct {
	Success  bool           `json:"success"`
	Error    string         `json:"error,omitempty"`
	Database string         `json:"database,omitempty"`
	Info     map[string]any `json:"info,omitempty"`
}

// ListDatabasesArgs contains parameters for listing databases
type ListDatabasesArgs struct{}

// ListDatabasesResult is the result of listing databases
type ListDatabasesResult struct {
	Success   bool     `json:"success"`
	Databases []string `json:"databases"`
	Count     int      `json:"count"`
}

// Succeeded reports whether the envelope carries a successful result
func (r SearchNCBIResult) Succeeded() bool { return r.Success }

// Succeeded reports whether the envelope carries a successful result
func (r FetchRecordsResult) Succeeded() bool { return r.Success }

// Succeeded reports whether the envelope carries a successful result
func (r SummarizeRecordsResult) Succeeded() bool { return r.Success }

// Succeeded reports whether the envelope carries a successful result
func (r FindRelatedRecordsResult) Succeeded() bool { return r.Success }

// Succeeded reports whether the envelope carries a successful result
func (r GetDatabaseInfoResult) Succeeded() bool { return r.Success }

// Succeeded reports whether the envelope carries a successful result
func (r ListDatabasesResult) Succeeded() bool { return r.Success }
