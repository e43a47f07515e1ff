package blast

// Search lifecycle states reported in the result envelope
const (
	StatusCompleted = "completed"
	StatusError     = "error"
)

// BlastSearchArgs contains parameters for a BLAST similarity search
type BlastSearchArgs struct {
	Program     string  `json:"program" jsonschema:"required" jsonschema_description:"BLAST program: blastn, blastp, blastx, tblastn or tblastx"`
	Database    string  `json:"database" jsonschema:"required" jsonschema_description:"BLAST database (e.g. nt, nr, refseq_rna, refseq_protein, swissprot, pdb)"`
	Sequence    string  `json:"sequence" jsonschema:"required" jsonschema_description:"Query sequence, bare or as a FASTA record"`
	ExpectValue float64 `json:"expect_value,omitempty" jsonschema_description:"E-value threshold; lower is stricter (default: 10.0)"`
	WordSize    int     `json:"word_size,omitempty" jsonschema_description:"Word size for the initial exact match"`
	Matrix      string  `json:"matrix,omitempty" jsonschema_description:"Protein scoring matrix (e.g. BLOSUM62, PAM30)"`
	GapCosts    string  `json:"gap_costs,omitempty" jsonschema_description:"Gap open and extend costs as one string (e.g. '11 1')"`
	OutputFmt   string  `json:"output_fmt,omitempty" jsonschema_description:"Result detail: 'full' includes aligned sequence strings, 'summary' only scores and coordinates (default: full)"`
	Megablast   bool    `json:"megablast,omitempty" jsonschema_description:"Use megablast for fast nucleotide-vs-nucleotide searches (blastn only)"`
}

// BlastSearchResult is the result of a BLAST search. Engine failures
// after a successful argument check come back with success=true,
// status="error" and the message under results.error; success=false is
// reserved for arguments that never reached the engine.
type BlastSearchResult struct {
	Success  bool           `json:"success"`
	Error    string         `json:"error,omitempty"`
	Program  string         `json:"program"`
	Database string         `json:"database"`
	RID      string         `json:"rid,omitempty"`
	Status   string         `json:"status,omitempty"`
	Results  map[string]any `json:"results,omitempty"`
}

// Succeeded reports whether the search ran and produced a report
func (r BlastSearchResult) Succeeded() bool {
	return r.Success && r.Status != StatusError
}
