package entrez

import (
	"regexp"
	"strings"

	"github.com/olgasafonova/ncbi-mcp-server/internal/apierrors"
)

// databasePattern matches E-utilities database names (pubmed, nuccore,
// pccompound and friends). The set is not pinned to a fixed list so
// databases NCBI adds keep working.
var databasePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// ValidateDatabase validates an NCBI database name.
func ValidateDatabase(database string) error {
	if database == "" {
		return apierrors.NewValidationError("database", "", "is required")
	}
	if !databasePattern.MatchString(database) {
		return apierrors.NewValidationError("database", database, "must contain only letters, digits, underscores, dots and hyphens")
	}
	return nil
}

// ValidateQuery validates a search query.
func ValidateQuery(query string) error {
	if strings.TrimSpace(query) == "" {
		return apierrors.NewValidationError("query", query, "is required")
	}
	return nil
}

// ValidateIDs validates a record ID list. IDs are joined with commas
// into a single request parameter, so separators inside an ID would
// silently change the request.
func ValidateIDs(field string, ids []string) error {
	if len(ids) == 0 {
		return apierrors.NewValidationError(field, "", "at least one ID is required")
	}
	for _, id := range ids {
		if strings.TrimSpace(id) == "" {
			return apierrors.NewValidationError(field, id, "IDs must not be empty")
		}
		if strings.ContainsAny(id, ", \t\n") {
			return apierrors.NewValidationError(field, id, "IDs must not contain commas or whitespace")
		}
	}
	return nil
}
