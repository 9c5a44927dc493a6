package fields

import (
	"log/slog"
	"strings"

	"github.com/TadiwanasheNdombo/aura-document-system/constants"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/entity"
)

// Parser turns recognized text into the target field set for a source
// type. Extraction is best-effort: fields the heuristics cannot locate
// stay at entity.NotFound, never an error.
type Parser struct {
	logger *slog.Logger
}

func NewParser(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{logger: logger}
}

// Parse dispatches on the source type.
func (p *Parser) Parse(text string, src constants.SourceType) entity.FieldSet {
	fs := entity.NewFieldSet(src)
	if strings.TrimSpace(text) == "" {
		return fs
	}
	switch src {
	case constants.SourceMandateCard:
		p.parseAccountForm(text, fs)
	case constants.SourceNationalID:
		p.parseIDCard(text, fs)
	}
	found := 0
	for _, name := range constants.FieldNamesFor(src) {
		if fs.Found(name) {
			found++
		}
	}
	p.logger.Debug("fields.parse.done", "source_type", src, "found", found, "total", len(fs))
	return fs
}

// flatten collapses whitespace runs to single spaces. Label captures
// run against the flat form; line-oriented heuristics keep raw text.
func flatten(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// account-form markers that distinguish a mandate card from an ID scan
var accountFormMarkers = []string{"EMPLOYMENT STATUS", "OCCUPATION", "MONTHLY SALARY"}

// SniffSourceType guesses which document the text came from when the
// caller did not say.
func SniffSourceType(text string) constants.SourceType {
	upper := strings.ToUpper(text)
	for _, marker := range accountFormMarkers {
		if strings.Contains(upper, marker) {
			return constants.SourceMandateCard
		}
	}
	return constants.SourceNationalID
}
