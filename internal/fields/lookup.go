package fields

import (
	"regexp"
	"strings"
)

// nationalityTerms maps uppercase demonyms and country names found in
// document text to the stored form. Checked in declaration order, so
// the adjective form sits ahead of its country name.
var nationalityTerms = []struct {
	Term  string
	Value string
}{
	{"ZIMBABWEAN", "Zimbabwean"},
	{"ZIMBABWE", "Zimbabwean"},
	{"SOUTH AFRICAN", "South African"},
	{"SOUTH AFRICA", "South African"},
	{"NIGERIAN", "Nigerian"},
	{"NIGERIA", "Nigerian"},
	{"KENYAN", "Kenyan"},
	{"KENYA", "Kenyan"},
	{"GHANAIAN", "Ghanaian"},
	{"GHANA", "Ghanaian"},
	{"BOTSWANAN", "Botswanan"},
	{"BOTSWANA", "Botswanan"},
	{"ZAMBIAN", "Zambian"},
	{"ZAMBIA", "Zambian"},
	{"MALAWIAN", "Malawian"},
	{"MALAWI", "Malawian"},
	{"MOZAMBICAN", "Mozambican"},
	{"MOZAMBIQUE", "Mozambican"},
	{"AMERICAN", "American"},
	{"UNITED STATES", "American"},
	{"BRITISH", "British"},
	{"UNITED KINGDOM", "British"},
	{"CANADIAN", "Canadian"},
	{"CANADA", "Canadian"},
	{"AUSTRALIAN", "Australian"},
	{"AUSTRALIA", "Australian"},
	{"INDIAN", "Indian"},
	{"INDIA", "Indian"},
	{"CHINESE", "Chinese"},
	{"CHINA", "Chinese"},
}

var reNationalityLabel = regexp.MustCompile(`(?i)\b(?:NATIONALITY|CITIZENSHIP|NAT\b\.?)[ .:\-]*([A-Za-z][A-Za-z ]{0,40})`)

// lookupNationality prefers a term sitting next to a nationality
// label over a bare keyword found anywhere in the text.
func lookupNationality(text string) (string, bool) {
	for _, m := range reNationalityLabel.FindAllStringSubmatch(text, -1) {
		if v, ok := matchNationality(m[1]); ok {
			return v, true
		}
	}
	return matchNationality(text)
}

func matchNationality(s string) (string, bool) {
	upper := strings.ToUpper(s)
	for _, entry := range nationalityTerms {
		if strings.Contains(upper, entry.Term) {
			return entry.Value, true
		}
	}
	return "", false
}
