package fields

import (
	"regexp"
	"strings"

	"github.com/TadiwanasheNdombo/aura-document-system/internal/entity"
)

var (
	reProfession   = regexp.MustCompile(`(?im)^\s*(?:PROFESSION|OCCUPATION|JOB\s+TITLE)\s*[:\-]?\s*(.+)$`)
	reEmployment   = regexp.MustCompile(`(?im)^\s*EMPLOYMENT\s+STATUS\s*[:\-]?\s*(.+)$`)
	reSalary       = regexp.MustCompile(`(?im)^\s*(?:MONTHLY\s+SALARY|GROSS\s+SALARY|SALARY|MONTHLY\s+INCOME)\s*[:\-]?\s*(.+)$`)
	reEmployerName = regexp.MustCompile(`(?im)^[ \t]*EMPLOYER'?S?\s+NAME[ \t.:\-]*(.+)$`)
	reEmployerAddr = regexp.MustCompile(`(?im)^\s*EMPLOYER(?:'?S)?\s+ADDRESS\s*[:\-]?\s*(.+)$`)

	reSalaryDigits = regexp.MustCompile(`[^\d.]`)
)

func (p *Parser) parseAccountForm(text string, fs entity.FieldSet) {
	if m := reProfession.FindStringSubmatch(text); m != nil {
		if v := cleanLine(m[1]); v != "" {
			fs["profession"] = v
		}
	}

	var employerName string
	if m := reEmployerName.FindStringSubmatch(text); m != nil {
		employerName = cleanLine(m[1])
	}

	if m := reEmployerAddr.FindStringSubmatch(text); m != nil {
		if v := cleanLine(m[1]); v != "" {
			fs["employer_address"] = v
		}
	}

	fs["employment_status"] = employmentStatus(text, employerName, fs.Found("employer_address"))

	if m := reSalary.FindStringSubmatch(text); m != nil {
		if v := reSalaryDigits.ReplaceAllString(m[1], ""); v != "" && v != "." {
			fs["monthly_salary"] = v
		}
	}
}

// employmentStatus resolves the status in precedence order: an
// employer name reading SELF, then the declared status, then an
// inference from employer details being filled in at all.
func employmentStatus(text, employerName string, hasEmployer bool) string {
	if strings.Contains(strings.ToUpper(employerName), "SELF") {
		return "Self-Employed"
	}
	if m := reEmployment.FindStringSubmatch(text); m != nil {
		declared := cleanLine(m[1])
		if strings.Contains(strings.ToUpper(declared), "SELF") {
			return "Self-Employed"
		}
		if declared != "" {
			return declared
		}
	}
	if employerName != "" || hasEmployer {
		return "Employed"
	}
	return entity.NotFound
}
