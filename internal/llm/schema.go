package llm

import "github.com/TadiwanasheNdombo/aura-document-system/constants"

// BuildFieldSetJSONSchema returns a JSON-Schema (draft 2020-12 subset)
// as a generic map for the target field set of a source type. Every
// field is required; the model answers "Not Found" for misses rather
// than omitting keys.
func BuildFieldSetJSONSchema(src constants.SourceType) map[string]any {
	names := constants.FieldNamesFor(src)
	props := make(map[string]any, len(names))
	for _, name := range names {
		props[name] = map[string]any{"type": "string", "minLength": 1}
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             append([]string{}, names...),
	}
}
