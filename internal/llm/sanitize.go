package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/TadiwanasheNdombo/aura-document-system/constants"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/entity"
)

// NormalizeFieldSetJSON coaxes a near-miss model reply into the strict
// field-set shape:
//   - unknown keys are dropped
//   - null / empty / "N/A"-ish values become "Not Found"
//   - numbers are stringified
//   - missing target fields are filled with "Not Found"
//
// Returns the cleaned JSON plus the list of adjustments made.
func NormalizeFieldSetJSON(raw []byte, src constants.SourceType, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	targets := constants.FieldNamesFor(src)
	known := make(map[string]bool, len(targets))
	for _, name := range targets {
		known[name] = true
	}

	var adjusted []string
	out := make(map[string]any, len(targets))
	for k, v := range m {
		if !known[k] {
			adjusted = append(adjusted, k+"(unknown)")
			continue
		}
		switch t := v.(type) {
		case string:
			s := strings.TrimSpace(t)
			if s == "" || isNotFoundish(s) {
				out[k] = entity.NotFound
				if s != entity.NotFound {
					adjusted = append(adjusted, k+"(empty)")
				}
			} else {
				out[k] = s
			}
		case float64:
			out[k] = strconv.FormatFloat(t, 'f', -1, 64)
			adjusted = append(adjusted, k+"(number)")
		case nil:
			out[k] = entity.NotFound
			adjusted = append(adjusted, k+"(null)")
		default:
			out[k] = entity.NotFound
			adjusted = append(adjusted, k+"(type)")
		}
	}

	for _, name := range targets {
		if _, ok := out[name]; !ok {
			out[name] = entity.NotFound
			adjusted = append(adjusted, name+"(missing)")
		}
	}

	if len(adjusted) > 0 {
		logger.Debug("llm.sanitize.adjusted", "fields", adjusted)
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, nil, err
	}
	return b, adjusted, nil
}

func isNotFoundish(s string) bool {
	switch strings.ToUpper(s) {
	case "NOT FOUND", "N/A", "NA", "NONE", "NULL", "UNKNOWN", "-":
		return true
	}
	return false
}

// ToFieldSet decodes normalized JSON into the in-memory field set.
func ToFieldSet(raw []byte) (entity.FieldSet, error) {
	var fs entity.FieldSet
	if err := json.Unmarshal(raw, &fs); err != nil {
		return nil, fmt.Errorf("decode field set: %w", err)
	}
	return fs, nil
}
