package blast

import (
	"regexp"
	"strings"

	"github.com/olgasafonova/ncbi-mcp-server/internal/apierrors"
)

// Output detail levels
const (
	OutputFull    = "full"
	OutputSummary = "summary"
)

var validPrograms = map[string]bool{
	"blastn":  true,
	"blastp":  true,
	"blastx":  true,
	"tblastn": true,
	"tblastx": true,
}

// databasePattern matches BLAST database names (nt, refseq_rna,
// 16S_ribosomal_RNA and friends)
var databasePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// ValidateProgram checks a BLAST program name and returns it in the
// lowercase form QBlast expects.
func ValidateProgram(program string) (string, error) {
	if program == "" {
		return "", apierrors.NewValidationError("program", "", "is required")
	}
	normalized := strings.ToLower(program)
	if !validPrograms[normalized] {
		return "", apierrors.NewValidationError("program", program, "must be one of blastn, blastp, blastx, tblastn, tblastx")
	}
	return normalized, nil
}

// ValidateDatabase validates a BLAST database name.
func ValidateDatabase(database string) error {
	if database == "" {
		return apierrors.NewValidationError("database", "", "is required")
	}
	if !databasePattern.MatchString(database) {
		return apierrors.NewValidationError("database", database, "must contain only letters, digits, underscores, dots and hyphens")
	}
	return nil
}

// ValidateSequence validates a query sequence.
func ValidateSequence(sequence string) error {
	if strings.TrimSpace(sequence) == "" {
		return apierrors.NewValidationError("sequence", "", "is required")
	}
	return nil
}

// ParseOutputFormat normalizes the requested output detail level,
// defaulting to full.
func ParseOutputFormat(format string) (string, error) {
	switch strings.ToLower(format) {
	case "":
		return OutputFull, nil
	case OutputFull:
		return OutputFull, nil
	case OutputSummary:
		return OutputSummary, nil
	default:
		return "", apierrors.NewValidationError("output_fmt", format, "must be \"full\" or \"summary\"")
	}
}
