package fields

import (
	"regexp"
	"strings"

	"github.com/TadiwanasheNdombo/aura-document-system/internal/entity"
)

var (
	reSurnameLabel = regexp.MustCompile(`(?i)\bSURNAME\b[ .:\-]*([A-Za-z][A-Za-z' -]*)`)
	reGivenLabel   = regexp.MustCompile(`(?i)\bGIVEN\s+NAMES?\b[ .:\-]*([A-Za-z][A-Za-z' -]*)`)
	reNameLabel    = regexp.MustCompile(`(?i)\b(?:FULL\s+NAME|NAME)\b[ .:\-]*([A-Za-z][A-Za-z' -]*)`)
	reNameNextLine = regexp.MustCompile(`(?im)^[ \t]*(?:FULL\s+NAME|NAME)[ \t.:\-]*\n[ \t]*([A-Za-z][A-Za-z' -]+)$`)

	// best-effort name block: 2-4 capitalization-patterned tokens,
	// tolerating one isolated lowercase OCR-noise letter between them
	reNameBlock = regexp.MustCompile(`[A-Z][a-z'-]+\s+(?:[a-z]\s+)?[A-Z][a-z'-]+(?:\s+[A-Z][a-z'-]+){0,2}`)
	reNameNoise = regexp.MustCompile(`\b[aAiI]\b`)

	// labels that terminate a name captured from flattened text
	reNextLabel = regexp.MustCompile(`(?i)\b(?:FULL\s+NAME|FIRST\s+NAME|SURNAME|GIVEN\s+NAMES?|ID\s+(?:NUMBER|NO)|NATIONAL|DATE\s+OF|SEX|GENDER|NATIONALITY|PLACE\s+OF|VILLAGE)\b`)

	reIDLabel = regexp.MustCompile(`(?im)(?:ID\s*(?:NUMBER|NO\.?)|NATIONAL\s+(?:ID|REGISTRATION))\s*[:\-]?\s*([A-Z0-9][A-Z0-9 \-]{4,})`)
	// registry format: 2-digit district, 6-8 digit serial, check letter, 2-digit district
	reIDFallback = regexp.MustCompile(`\b(\d{2}[- ]?\d{6,8}[- ]?[A-Z][- ]?\d{2})\b`)

	reGenderLabel      = regexp.MustCompile(`(?i)(?:SEX|GENDER)\s*[:\-]?\s*(MALE|FEMALE|M|F)\b`)
	reGenderStandalone = regexp.MustCompile(`(?i)\b(MALE|FEMALE)\b`)
)

// Each date field is layered: same-line label capture, then the value
// on the line after the label, then a proximity scan on bare keywords.
type dateField struct {
	sameLine *regexp.Regexp
	nextLine *regexp.Regexp
	keywords *regexp.Regexp
}

func (d dateField) extract(text string) (string, bool) {
	if m := d.sameLine.FindStringSubmatch(text); m != nil {
		if v, ok := dateFromCapture(m[1]); ok {
			return v, true
		}
	}
	if m := d.nextLine.FindStringSubmatch(text); m != nil {
		if v, ok := dateFromCapture(m[1]); ok {
			return v, true
		}
	}
	return findDateNear(text, d.keywords)
}

var (
	dobField = dateField{
		sameLine: regexp.MustCompile(`(?i)(?:DATE\s+OF\s+BIRTH|D\.?O\.?B\.?|BIRTH\s+DATE|BORN)[ \t:\-]*([^\n]+)`),
		nextLine: regexp.MustCompile(`(?i)(?:DATE\s+OF\s+BIRTH|D\.?O\.?B\.?|BIRTH\s+DATE|BORN)[ \t:\-]*\n[ \t]*([^\n]+)`),
		keywords: regexp.MustCompile(`(?i)\b(?:BIRTH|DOB)\b`),
	}
	issueField = dateField{
		sameLine: regexp.MustCompile(`(?i)(?:DATE\s+OF\s+ISSUE|ISSUE\s+DATE|ISSUED\s+ON)[ \t:\-]*([^\n]+)`),
		nextLine: regexp.MustCompile(`(?i)(?:DATE\s+OF\s+ISSUE|ISSUE\s+DATE|ISSUED\s+ON)[ \t:\-]*\n[ \t]*([^\n]+)`),
		keywords: regexp.MustCompile(`(?i)\b(?:ISSUE|ISSUED)\b`),
	}
	expiryField = dateField{
		sameLine: regexp.MustCompile(`(?i)(?:DATE\s+OF\s+EXPIRY|EXPIRY\s+DATE|EXPIRY|VALID\s+UNTIL|EXP\.?)[ \t:\-]*([^\n]+)`),
		nextLine: regexp.MustCompile(`(?i)(?:DATE\s+OF\s+EXPIRY|EXPIRY\s+DATE|EXPIRY|VALID\s+UNTIL|EXP\.?)[ \t:\-]*\n[ \t]*([^\n]+)`),
		keywords: regexp.MustCompile(`(?i)\b(?:EXPIRY|EXPIRES|VALID|EXP)\b`),
	}
)

func (p *Parser) parseIDCard(text string, fs entity.FieldSet) {
	mrz := parseMRZ(text)
	flat := flatten(text)

	if name := extractFullName(text, flat); name != "" {
		fs["full_name"] = name
	}

	if m := reIDLabel.FindStringSubmatch(text); m != nil {
		fs["id_number"] = cleanLine(m[1])
	} else if m := reIDFallback.FindStringSubmatch(text); m != nil {
		fs["id_number"] = m[1]
	}

	if dob, ok := dobField.extract(text); ok {
		fs["date_of_birth"] = dob
	} else if mrz.DateOfBirth != "" {
		fs["date_of_birth"] = mrz.DateOfBirth
	}

	// label beats a standalone token, which beats the MRZ run
	if m := reGenderLabel.FindStringSubmatch(text); m != nil {
		fs["gender"] = canonicalGender(m[1])
	} else if m := reGenderStandalone.FindStringSubmatch(text); m != nil {
		fs["gender"] = canonicalGender(m[1])
	} else if mrz.Gender != "" {
		fs["gender"] = mrz.Gender
	}

	if nat, ok := lookupNationality(text); ok {
		fs["nationality"] = nat
	}

	if issue, ok := issueField.extract(text); ok {
		fs["issue_date"] = issue
	}

	if expiry, ok := expiryField.extract(text); ok {
		fs["expiry_date"] = expiry
	} else if mrz.ExpiryDate != "" {
		fs["expiry_date"] = mrz.ExpiryDate
	}
}

// extractFullName layers the name heuristics: explicit surname plus
// given-names labels combined, a general name label, the line after a
// bare label, and finally a positional scan for a capitalized block.
func extractFullName(text, flat string) string {
	surname := nameCapture(reSurnameLabel, flat)
	given := nameCapture(reGivenLabel, flat)
	if surname != "" && given != "" {
		return given + " " + surname
	}

	if v := nameCapture(reNameLabel, flat); v != "" {
		return v
	}
	if m := reNameNextLine.FindStringSubmatch(text); m != nil {
		if v := cleanName(m[1]); v != "" {
			return v
		}
	}
	if block := reNameBlock.FindString(flat); block != "" {
		if v := cleanName(block); v != "" {
			return v
		}
	}
	if surname != "" {
		return surname
	}
	return given
}

func nameCapture(re *regexp.Regexp, flat string) string {
	m := re.FindStringSubmatch(flat)
	if m == nil {
		return ""
	}
	return cleanName(m[1])
}

// cleanName cuts a flat-text capture at the next label, drops isolated
// single-letter OCR noise and squeezes the whitespace back down.
func cleanName(s string) string {
	if loc := reNextLabel.FindStringIndex(s); loc != nil {
		s = s[:loc[0]]
	}
	s = reNameNoise.ReplaceAllString(s, " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.Trim(s, " '-")
}

func canonicalGender(raw string) string {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "M", "MALE":
		return "Male"
	case "F", "FEMALE":
		return "Female"
	}
	return ""
}

// cleanLine trims a captured line value and drops label echo noise.
func cleanLine(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, ":-")
	return strings.TrimSpace(s)
}
