package quality

import (
	"strings"
	"unicode"

	"github.com/TadiwanasheNdombo/aura-document-system/constants"
)

// MinAlnumRatio is the share of alphanumeric runes below which
// recognized text is treated as garbled.
const MinAlnumRatio = 0.5

// AnalyzeText scores a document by its recognized text when pixel
// statistics are unavailable (PDFs). Too little text reads as a blank
// page; text that is mostly noise reads as blurry.
func AnalyzeText(text string) Report {
	trimmed := strings.TrimSpace(text)
	report := Report{Blank: len(trimmed) < constants.MinTextContent}
	var alnum, total int
	for _, r := range trimmed {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			alnum++
		}
	}
	// both flags can hold at once: short garbled text is blank and blurry
	if total > 0 && float64(alnum)/float64(total) < MinAlnumRatio {
		report.Blurry = true
	}
	return report
}
