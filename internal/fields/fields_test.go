package fields

import (
	"testing"

	"github.com/TadiwanasheNdombo/aura-document-system/constants"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/entity"
)

func TestParseDateLayouts(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"abbreviated month", "7 Mar 1990", "1990-03-07"},
		{"full month", "7 March 1990", "1990-03-07"},
		{"slash day first", "31/12/1990", "1990-12-31"},
		{"dash day first", "31-12-1990", "1990-12-31"},
		{"ambiguous resolves day first", "03/04/2020", "2020-04-03"},
		{"month first when day impossible", "12/25/1988", "1988-12-25"},
		{"compact yymmdd", "900715", "1990-07-15"},
		{"noise stripped", "07 Mar, 1990.", "1990-03-07"},
		{"abbreviated month to iso", "24 Dec 2023", "2023-12-24"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseDate(tc.in)
			if !ok {
				t.Fatalf("ParseDate(%q) not ok", tc.in)
			}
			if got != tc.want {
				t.Errorf("ParseDate(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseDateTwoDigitYearCentury(t *testing.T) {
	// years beyond the current two-digit year belong to last century
	got, ok := ParseDate("15/07/90")
	if !ok || got != "1990-07-15" {
		t.Errorf("ParseDate(15/07/90) = %q ok=%t, want 1990-07-15", got, ok)
	}
	got, ok = ParseDate("15/07/20")
	if !ok || got != "2020-07-15" {
		t.Errorf("ParseDate(15/07/20) = %q ok=%t, want 2020-07-15", got, ok)
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "not a date", "99/99/9999"} {
		if got, ok := ParseDate(in); ok {
			t.Errorf("ParseDate(%q) = %q, want not ok", in, got)
		}
	}
}

func TestParseIDCardLabelledFields(t *testing.T) {
	text := `REPUBLIC OF ZIMBABWE
NATIONAL REGISTRATION CARD
FULL NAME: TENDAI MOYO
ID NUMBER: 63-123456 A 42
DATE OF BIRTH: 15 Jul 1990
SEX: M
NATIONALITY: ZIMBABWEAN
DATE OF ISSUE: 01/02/2010
DATE OF EXPIRY: 01/02/2030`

	fs := NewParser(nil).Parse(text, constants.SourceNationalID)
	want := map[string]string{
		"full_name":     "TENDAI MOYO",
		"id_number":     "63-123456 A 42",
		"date_of_birth": "1990-07-15",
		"gender":        "Male",
		"nationality":   "Zimbabwean",
		"issue_date":    "2010-02-01",
		"expiry_date":   "2030-02-01",
	}
	for name, val := range want {
		if fs[name] != val {
			t.Errorf("%s = %q, want %q", name, fs[name], val)
		}
	}
}

func TestParseIDCardCombinesSurnameAndGivenNames(t *testing.T) {
	text := `SURNAME: CHITEZA
GIVEN NAMES: CLETOS`
	fs := NewParser(nil).Parse(text, constants.SourceNationalID)
	if fs["full_name"] != "CLETOS CHITEZA" {
		t.Errorf("full_name = %q, want given names before surname", fs["full_name"])
	}
}

func TestParseIDCardNamePositionalFallback(t *testing.T) {
	// no name label anywhere; the capitalized block is the best guess,
	// with the stray OCR letter between the tokens dropped
	text := "this card belongs to Tendai a Moyo resident of harare"
	fs := NewParser(nil).Parse(text, constants.SourceNationalID)
	if fs["full_name"] != "Tendai Moyo" {
		t.Errorf("full_name = %q, want Tendai Moyo", fs["full_name"])
	}
}

func TestParseIDCardNameOnFollowingLine(t *testing.T) {
	text := "FULL NAME:\nRUDO CHIKAFU\nID NUMBER: 63-998877 C 21"
	fs := NewParser(nil).Parse(text, constants.SourceNationalID)
	if fs["full_name"] != "RUDO CHIKAFU" {
		t.Errorf("full_name = %q, want RUDO CHIKAFU", fs["full_name"])
	}
}

func TestParseIDCardNationalityFromCountryName(t *testing.T) {
	text := "NATIONALITY: ZIMBABWE"
	fs := NewParser(nil).Parse(text, constants.SourceNationalID)
	if fs["nationality"] != "Zimbabwean" {
		t.Errorf("nationality = %q, want Zimbabwean", fs["nationality"])
	}
}

func TestParseIDCardNationalityLabelBeatsStrayMention(t *testing.T) {
	text := "issued near the BOTSWANA border\nNATIONALITY: ZAMBIAN"
	fs := NewParser(nil).Parse(text, constants.SourceNationalID)
	if fs["nationality"] != "Zambian" {
		t.Errorf("nationality = %q, want the labelled value", fs["nationality"])
	}
}

func TestParseIDCardDateBeforeLabel(t *testing.T) {
	// some card layouts print the value above its caption
	text := "01/02/2010\nDATE OF ISSUE"
	fs := NewParser(nil).Parse(text, constants.SourceNationalID)
	if fs["issue_date"] != "2010-02-01" {
		t.Errorf("issue_date = %q, want 2010-02-01", fs["issue_date"])
	}
}

func TestParseIDCardFallbackIDPattern(t *testing.T) {
	text := "some noisy scan 63 1234567 B 18 more text"
	fs := NewParser(nil).Parse(text, constants.SourceNationalID)
	if fs["id_number"] != "63 1234567 B 18" {
		t.Errorf("id_number = %q, want pattern match", fs["id_number"])
	}
}

func TestParseIDCardMRZFallback(t *testing.T) {
	// printed fields absent; MRZ run carries DOB, gender and expiry
	text := "ID<ZWE\n6312345678900715F3001012<<<<<<<<<<<<<<04"
	fs := NewParser(nil).Parse(text, constants.SourceNationalID)

	if fs["date_of_birth"] != "1990-07-15" {
		t.Errorf("date_of_birth = %q, want 1990-07-15", fs["date_of_birth"])
	}
	if fs["gender"] != "Female" {
		t.Errorf("gender = %q, want Female", fs["gender"])
	}
	if fs["expiry_date"] != "2030-01-01" {
		t.Errorf("expiry_date = %q, want 2030-01-01", fs["expiry_date"])
	}
}

func TestParseIDCardLabelBeatsMRZ(t *testing.T) {
	text := `DATE OF BIRTH: 01/01/1985
SEX: F
6312345678900715M3001012`
	fs := NewParser(nil).Parse(text, constants.SourceNationalID)
	if fs["date_of_birth"] != "1985-01-01" {
		t.Errorf("date_of_birth = %q, want label value", fs["date_of_birth"])
	}
	if fs["gender"] != "Female" {
		t.Errorf("gender = %q, want label value to win over MRZ", fs["gender"])
	}
}

func TestParseIDCardMissingFieldsStayNotFound(t *testing.T) {
	fs := NewParser(nil).Parse("completely unrelated text", constants.SourceNationalID)
	for _, name := range constants.NationalIDFields {
		if fs[name] != entity.NotFound {
			t.Errorf("%s = %q, want %q", name, fs[name], entity.NotFound)
		}
	}
}

func TestParseAccountForm(t *testing.T) {
	text := `ACCOUNT OPENING MANDATE
OCCUPATION: Software Engineer
EMPLOYMENT STATUS: Contract
MONTHLY SALARY: USD 2,500.00
EMPLOYER ADDRESS: 12 Samora Machel Ave, Harare`

	fs := NewParser(nil).Parse(text, constants.SourceMandateCard)
	if fs["profession"] != "Software Engineer" {
		t.Errorf("profession = %q", fs["profession"])
	}
	if fs["employment_status"] != "Contract" {
		t.Errorf("employment_status = %q, want Contract", fs["employment_status"])
	}
	if fs["monthly_salary"] != "2500.00" {
		t.Errorf("monthly_salary = %q, want digits only", fs["monthly_salary"])
	}
	if fs["employer_address"] != "12 Samora Machel Ave, Harare" {
		t.Errorf("employer_address = %q", fs["employer_address"])
	}
}

func TestEmploymentStatusSelfWins(t *testing.T) {
	text := "EMPLOYMENT STATUS: SELF EMPLOYED\nEMPLOYER ADDRESS: market stall 4"
	fs := NewParser(nil).Parse(text, constants.SourceMandateCard)
	if fs["employment_status"] != "Self-Employed" {
		t.Errorf("employment_status = %q, want Self-Employed", fs["employment_status"])
	}
}

func TestEmploymentStatusEmployerNameSelfWinsOverDeclared(t *testing.T) {
	// a SELF entry in the employer name field overrides whatever the
	// status box says
	text := "EMPLOYER'S NAME.......... SELF\nEMPLOYMENT STATUS: Employed"
	fs := NewParser(nil).Parse(text, constants.SourceMandateCard)
	if fs["employment_status"] != "Self-Employed" {
		t.Errorf("employment_status = %q, want Self-Employed", fs["employment_status"])
	}
}

func TestEmploymentStatusInferredFromEmployerName(t *testing.T) {
	text := "EMPLOYER'S NAME: Delta Beverages"
	fs := NewParser(nil).Parse(text, constants.SourceMandateCard)
	if fs["employment_status"] != "Employed" {
		t.Errorf("employment_status = %q, want Employed", fs["employment_status"])
	}
}

func TestEmploymentStatusInferredFromEmployer(t *testing.T) {
	text := "EMPLOYER ADDRESS: 1 Union Ave"
	fs := NewParser(nil).Parse(text, constants.SourceMandateCard)
	if fs["employment_status"] != "Employed" {
		t.Errorf("employment_status = %q, want Employed", fs["employment_status"])
	}
}

func TestSniffSourceType(t *testing.T) {
	tests := []struct {
		text string
		want constants.SourceType
	}{
		{"EMPLOYMENT STATUS: Employed", constants.SourceMandateCard},
		{"occupation: teacher", constants.SourceMandateCard},
		{"MONTHLY SALARY: 900", constants.SourceMandateCard},
		{"NATIONAL REGISTRATION CARD", constants.SourceNationalID},
		{"", constants.SourceNationalID},
	}
	for _, tc := range tests {
		if got := SniffSourceType(tc.text); got != tc.want {
			t.Errorf("SniffSourceType(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}
