package llm

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/TadiwanasheNdombo/aura-document-system/constants"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/entity"
)

func TestRecoverJSONPlainObject(t *testing.T) {
	in := `{"full_name":"TENDAI MOYO"}`
	got, err := RecoverJSON(in)
	if err != nil {
		t.Fatalf("RecoverJSON: %v", err)
	}
	if string(got) != in {
		t.Errorf("got %s", got)
	}
}

func TestRecoverJSONMarkdownFence(t *testing.T) {
	in := "```json\n{\"gender\": \"Male\"}\n```"
	got, err := RecoverJSON(in)
	if err != nil {
		t.Fatalf("RecoverJSON: %v", err)
	}
	if string(got) != `{"gender": "Male"}` {
		t.Errorf("got %s", got)
	}
}

func TestRecoverJSONSurroundingProse(t *testing.T) {
	in := `Here is the extraction you asked for: {"id_number": "63-123456 A 42", "note": "braces { } in string"} hope it helps`
	got, err := RecoverJSON(in)
	if err != nil {
		t.Fatalf("RecoverJSON: %v", err)
	}
	var m map[string]string
	if err := json.Unmarshal(got, &m); err != nil {
		t.Fatalf("recovered JSON does not parse: %v\n%s", err, got)
	}
	if m["id_number"] != "63-123456 A 42" {
		t.Errorf("id_number = %q", m["id_number"])
	}
}

func TestRecoverJSONNestedAndEscaped(t *testing.T) {
	in := `{"a": {"b": "quote \" and brace }"}, "c": "x"}`
	got, err := RecoverJSON(in)
	if err != nil {
		t.Fatalf("RecoverJSON: %v", err)
	}
	if string(got) != in {
		t.Errorf("got %s", got)
	}
}

func TestRecoverJSONFailures(t *testing.T) {
	for _, in := range []string{"no json here", `{"unterminated": "value`} {
		if got, err := RecoverJSON(in); err == nil {
			t.Errorf("RecoverJSON(%q) = %s, want error", in, got)
		}
	}
}

func TestBuildFieldSetJSONSchemaValidates(t *testing.T) {
	schema := BuildFieldSetJSONSchema(constants.SourceNationalID)

	valid := map[string]string{}
	for _, name := range constants.NationalIDFields {
		valid[name] = "Not Found"
	}
	b, _ := json.Marshal(valid)
	if err := ValidateJSONAgainstSchema(schema, b); err != nil {
		t.Errorf("complete field set rejected: %v", err)
	}

	// missing a required key
	delete(valid, "gender")
	b, _ = json.Marshal(valid)
	if err := ValidateJSONAgainstSchema(schema, b); err == nil {
		t.Error("field set missing gender accepted")
	}

	// extra key
	valid["gender"] = "Male"
	valid["shoe_size"] = "9"
	b, _ = json.Marshal(valid)
	if err := ValidateJSONAgainstSchema(schema, b); err == nil {
		t.Error("field set with unknown key accepted")
	}
}

func TestNormalizeFieldSetJSON(t *testing.T) {
	raw := []byte(`{
		"full_name": "  TENDAI MOYO ",
		"id_number": null,
		"date_of_birth": "N/A",
		"gender": "",
		"nationality": "Zimbabwean",
		"issue_date": 20100201,
		"shoe_size": "9"
	}`)
	cleaned, adjusted, err := NormalizeFieldSetJSON(raw, constants.SourceNationalID, nil)
	if err != nil {
		t.Fatalf("NormalizeFieldSetJSON: %v", err)
	}
	if len(adjusted) == 0 {
		t.Error("no adjustments reported")
	}

	schema := BuildFieldSetJSONSchema(constants.SourceNationalID)
	if err := ValidateJSONAgainstSchema(schema, cleaned); err != nil {
		t.Fatalf("normalized JSON still invalid: %v\n%s", err, cleaned)
	}

	fs, err := ToFieldSet(cleaned)
	if err != nil {
		t.Fatal(err)
	}
	if fs["full_name"] != "TENDAI MOYO" {
		t.Errorf("full_name = %q", fs["full_name"])
	}
	for _, name := range []string{"id_number", "date_of_birth", "gender", "expiry_date"} {
		if fs[name] != entity.NotFound {
			t.Errorf("%s = %q, want Not Found", name, fs[name])
		}
	}
	if _, ok := fs["shoe_size"]; ok {
		t.Error("unknown key survived normalization")
	}
	if !strings.HasPrefix(fs["issue_date"], "2010020") {
		t.Errorf("issue_date = %q, want stringified number", fs["issue_date"])
	}
}
