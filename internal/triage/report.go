package triage

import (
	"fmt"
	"os"
	"strings"

	"github.com/TadiwanasheNdombo/aura-document-system/internal/entity"
)

// writeReport renders the human-readable pre-check report dropped into
// the package folder before it moves out of incoming.
func writeReport(path string, result *entity.TriageResult) error {
	var b strings.Builder
	fmt.Fprintf(&b, "PRE-CHECK REPORT\n")
	fmt.Fprintf(&b, "================\n\n")
	fmt.Fprintf(&b, "Package:      %s\n", result.PackageID)
	fmt.Fprintf(&b, "Account Type: %s\n", result.AccountType)
	fmt.Fprintf(&b, "Status:       %s\n", result.Status)
	fmt.Fprintf(&b, "Processed:    %s\n\n", result.ProcessedAt.Format("2006-01-02 15:04:05"))

	fmt.Fprintf(&b, "Documents (%d):\n", len(result.Documents))
	for _, doc := range result.Documents {
		fmt.Fprintf(&b, "  - %s -> %s\n", doc.Filename, doc.IdentifiedType)
		if doc.Quality != "" {
			fmt.Fprintf(&b, "      quality: %s\n", doc.Quality)
		}
		for _, issue := range doc.Issues {
			fmt.Fprintf(&b, "      issue: %s\n", issue)
		}
	}

	if len(result.MissingDocs) > 0 {
		fmt.Fprintf(&b, "\nMissing documents:\n")
		for _, missing := range result.MissingDocs {
			fmt.Fprintf(&b, "  - %s\n", missing)
		}
	}

	return os.WriteFile(path, []byte(b.String()), 0o644)
}
