package constants

// AccountType is the classification of an account-opening package.
type AccountType string

const (
	AccountCompany    AccountType = "COMPANY"
	AccountIndividual AccountType = "INDIVIDUAL"
)

// TriageStatus is the overall outcome of a package triage run.
type TriageStatus string

const (
	StatusClean   TriageStatus = "CLEAN_FOR_PROCESSING"
	StatusFlagged TriageStatus = "FLAGGED_FOR_REVIEW"
)

// Quality issue tags attached to individual documents in a report.
const (
	IssueBlankPage = "Blank Page"
	IssueBlurry    = "Blurry"
)

// UnknownDocument is the classifier result when no keyword matches.
const UnknownDocument = "Unknown Document"

// Well-known file names inside a package directory.
const (
	ManifestFilename = "package_info.json"
	ReportFilename   = "_Pre-Check_Report.txt"
)
