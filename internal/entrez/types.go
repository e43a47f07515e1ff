package entrez

// SearchResult holds the parsed response of an ESearch call
type SearchResult struct {
	// Count is the total number of records matching the query
	Count int

	// RetMax is the page size the server applied
	RetMax int

	// RetStart is the offset the server applied
	RetStart int

	// IDs are the record identifiers on this page
	IDs []string

	// QueryTranslation is the query as NCBI actually executed it
	QueryTranslation string

	// WebEnv and QueryKey reference the server-side history entry
	// when the search was submitted with history enabled
	WebEnv   string
	QueryKey string
}

// DocumentSummary is the condensed record returned by ESummary,
// reduced to the fields agents ask about.
type DocumentSummary struct {
	UID     string   `json:"uid"`
	Title   string   `json:"title"`
	Authors []string `json:"authors"`
	Journal string   `json:"journal"`
	PubDate string   `json:"pub_date"`
	DOI     string   `json:"doi"`
	PMID    string   `json:"pmid"`
}

// LinkResult holds the parsed response of an ELink call
type LinkResult struct {
	// SourceDatabase and TargetDatabase echo the requested direction
	SourceDatabase string
	TargetDatabase string

	// SourceIDs are the identifiers the links were requested for
	SourceIDs []string

	// RelatedIDs are the linked identifiers in the target database,
	// flattened across link sets in document order
	RelatedIDs []string
}
