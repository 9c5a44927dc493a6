package fields

import (
	"regexp"
	"time"
)

// Machine-readable zone scraps survive OCR better than the printed
// fields, so they serve as the fallback source for DOB, gender and
// expiry on ID documents.
var (
	reMRZRun    = regexp.MustCompile(`\b\d{6,}[A-Z\d<]{5,}\b`)
	reMRZBirth  = regexp.MustCompile(`(\d{6})([MF<])`)
	reMRZExpiry = regexp.MustCompile(`[MF<](\d{6})`)
)

// mrzFacts holds whatever the MRZ runs gave up.
type mrzFacts struct {
	DateOfBirth string
	Gender      string
	ExpiryDate  string
}

func parseMRZ(text string) mrzFacts {
	var facts mrzFacts
	for _, run := range reMRZRun.FindAllString(text, -1) {
		if facts.DateOfBirth == "" || facts.Gender == "" {
			if m := reMRZBirth.FindStringSubmatch(run); m != nil {
				if dob, ok := parseMRZDate(m[1], true); ok && facts.DateOfBirth == "" {
					facts.DateOfBirth = dob
				}
				if facts.Gender == "" {
					switch m[2] {
					case "M":
						facts.Gender = "Male"
					case "F":
						facts.Gender = "Female"
					}
				}
			}
		}
		if facts.ExpiryDate == "" {
			if m := reMRZExpiry.FindStringSubmatch(run); m != nil {
				if exp, ok := parseMRZDate(m[1], false); ok {
					facts.ExpiryDate = exp
				}
			}
		}
	}
	return facts
}

// pastOnly applies the previous-century rule: birth dates cannot sit
// in the future, expiry dates can.
func parseMRZDate(yymmdd string, pastOnly bool) (string, bool) {
	t, err := time.Parse("060102", yymmdd)
	if err != nil {
		return "", false
	}
	if pastOnly && t.Year() > time.Now().Year() {
		t = t.AddDate(-100, 0, 0)
	}
	return t.Format(DateOutputLayout), true
}
