package constants

import "strings"

// SourceType identifies which physical document a field set came from.
type SourceType string

// Stable values (store these exact strings in DB).
const (
	SourceMandateCard SourceType = "MANDATE_CARD"
	SourceNationalID  SourceType = "NATIONAL_ID"
)

var allSourceTypes = []SourceType{SourceMandateCard, SourceNationalID}

func SourceTypes() []string {
	result := make([]string, len(allSourceTypes))
	for i, s := range allSourceTypes {
		result[i] = string(s)
	}
	return result
}

// ParseSourceType canonicalizes free-form input to a SourceType.
func ParseSourceType(input string) (SourceType, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(input))
	switch normalized {
	case string(SourceMandateCard), "MANDATE", "ACCOUNT_FORM":
		return SourceMandateCard, true
	case string(SourceNationalID), "ID_CARD", "IDCARD":
		return SourceNationalID, true
	}
	return "", false
}

// Target field names per source, in report order.
var (
	MandateCardFields = []string{"profession", "employment_status", "monthly_salary", "employer_address"}
	NationalIDFields  = []string{"full_name", "id_number", "date_of_birth", "gender", "nationality", "issue_date", "expiry_date"}
)

// FieldNamesFor returns the target schema for a source type.
func FieldNamesFor(src SourceType) []string {
	if src == SourceMandateCard {
		return MandateCardFields
	}
	return NationalIDFields
}
