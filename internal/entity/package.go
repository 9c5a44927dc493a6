package entity

import (
	"time"

	"github.com/TadiwanasheNdombo/aura-document-system/constants"
)

// PackageManifest mirrors package_info.json inside a package folder.
// The account number doubles as the package folder name.
type PackageManifest struct {
	AccountNo   string `json:"account_no"`
	AccountName string `json:"account_name,omitempty"`
	BranchName  string `json:"branch_name,omitempty"`
	AccountType string `json:"account_type,omitempty"`
}

// DocumentReport is the triage outcome for one file in a package.
type DocumentReport struct {
	Filename       string   `json:"filename"`
	IdentifiedType string   `json:"identified_type"`
	Quality        string   `json:"quality,omitempty"`
	Issues         []string `json:"issues,omitempty"`
	RenamedTo      string   `json:"renamed_to,omitempty"`
}

// TriageResult is the full outcome of triaging one package.
type TriageResult struct {
	PackageID   string                 `json:"package_id"`
	AccountType constants.AccountType  `json:"account_type"`
	Status      constants.TriageStatus `json:"status"`
	Documents   []DocumentReport       `json:"documents"`
	MissingDocs []string               `json:"missing_docs,omitempty"`
	DestPath    string                 `json:"dest_path"`
	ProcessedAt time.Time              `json:"processed_at"`
}

// Flagged reports whether the package needs human review.
func (r *TriageResult) Flagged() bool {
	return r.Status == constants.StatusFlagged
}
