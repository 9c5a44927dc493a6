package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/TadiwanasheNdombo/aura-document-system/constants"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/common"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/llm"
)

func reply(text string) string {
	b, _ := json.Marshal(map[string]any{
		"candidates": []map[string]any{{
			"content": map[string]any{
				"parts": []map[string]string{{"text": text}},
			},
		}},
	})
	return string(b)
}

func idCardJSON() string {
	fields := map[string]string{}
	for _, name := range constants.NationalIDFields {
		fields[name] = "Not Found"
	}
	fields["full_name"] = "TENDAI MOYO"
	fields["gender"] = "Male"
	b, _ := json.Marshal(fields)
	return string(b)
}

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(Config{
		APIKey:       "test-key",
		BaseURL:      server.URL,
		Model:        "gemini-test",
		RateLimit:    1000,
		RetryBackoff: time.Millisecond,
	}, nil)
}

func TestExtractFieldsHappyPath(t *testing.T) {
	var gotPath string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if r.Header.Get("x-goog-api-key") != "test-key" {
			t.Error("api key header missing")
		}
		fmt.Fprint(w, reply(idCardJSON()))
	})

	fields, raw, err := client.ExtractFields(context.Background(), llm.ExtractRequest{
		DocumentID: "doc-1",
		SourceType: constants.SourceNationalID,
		Text:       "NATIONAL REGISTRATION CARD",
	})
	if err != nil {
		t.Fatalf("ExtractFields: %v", err)
	}
	if gotPath != "/models/gemini-test:generateContent" {
		t.Errorf("path = %q", gotPath)
	}
	if fields["full_name"] != "TENDAI MOYO" {
		t.Errorf("full_name = %q", fields["full_name"])
	}
	if len(raw) == 0 {
		t.Error("raw JSON not returned")
	}
}

func TestExtractFieldsForwardsImageMime(t *testing.T) {
	var body struct {
		Contents []struct {
			Parts []struct {
				Text       string `json:"text"`
				InlineData *struct {
					MimeType string `json:"mime_type"`
					Data     string `json:"data"`
				} `json:"inline_data"`
			} `json:"parts"`
		} `json:"contents"`
	}
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decoding request body: %v", err)
		}
		fmt.Fprint(w, reply(idCardJSON()))
	})

	_, _, err := client.ExtractFields(context.Background(), llm.ExtractRequest{
		SourceType: constants.SourceNationalID,
		Image:      []byte("jpeg-bytes"),
		MimeType:   "image/jpeg",
	})
	if err != nil {
		t.Fatalf("ExtractFields: %v", err)
	}
	if len(body.Contents) != 1 {
		t.Fatalf("contents = %d, want 1", len(body.Contents))
	}
	parts := body.Contents[0].Parts
	if !strings.Contains(parts[0].Text, "YYYY-MM-DD") {
		t.Error("prompt does not ask for ISO dates")
	}
	var sawImage bool
	for _, p := range parts {
		if p.InlineData == nil {
			continue
		}
		sawImage = true
		if p.InlineData.MimeType != "image/jpeg" {
			t.Errorf("mime_type = %q, want image/jpeg", p.InlineData.MimeType)
		}
		if p.InlineData.Data == "" {
			t.Error("inline image data empty")
		}
	}
	if !sawImage {
		t.Error("request carries no inline image part")
	}
}

func TestExtractFieldsRecoversFencedReply(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, reply("```json\n"+idCardJSON()+"\n```"))
	})

	fields, _, err := client.ExtractFields(context.Background(), llm.ExtractRequest{
		SourceType: constants.SourceNationalID,
	})
	if err != nil {
		t.Fatalf("ExtractFields: %v", err)
	}
	if fields["gender"] != "Male" {
		t.Errorf("gender = %q", fields["gender"])
	}
}

func TestExtractFieldsNormalizesNearMiss(t *testing.T) {
	// nulls and an unknown key: invalid strictly, fixable by sanitize
	client := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, reply(`{"full_name":"T MOYO","id_number":null,"extra":"x"}`))
	})

	fields, _, err := client.ExtractFields(context.Background(), llm.ExtractRequest{
		SourceType: constants.SourceNationalID,
	})
	if err != nil {
		t.Fatalf("ExtractFields: %v", err)
	}
	if fields["full_name"] != "T MOYO" {
		t.Errorf("full_name = %q", fields["full_name"])
	}
	if fields["id_number"] != "Not Found" {
		t.Errorf("id_number = %q", fields["id_number"])
	}
}

func TestExtractFieldsRetriesServerError(t *testing.T) {
	var calls int
	client := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, reply(idCardJSON()))
	})

	_, _, err := client.ExtractFields(context.Background(), llm.ExtractRequest{
		SourceType: constants.SourceNationalID,
	})
	if err != nil {
		t.Fatalf("ExtractFields after retry: %v", err)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestExtractFieldsTimeout(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		fmt.Fprint(w, reply(idCardJSON()))
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, _, err := client.ExtractFields(ctx, llm.ExtractRequest{
		SourceType: constants.SourceNationalID,
	})
	if !errors.Is(err, common.ErrExtractionTimeout) {
		t.Fatalf("err = %v, want ErrExtractionTimeout", err)
	}
}

func TestExtractFieldsGarbageReply(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, reply("I could not read the document, sorry."))
	})

	_, _, err := client.ExtractFields(context.Background(), llm.ExtractRequest{
		SourceType: constants.SourceNationalID,
	})
	if !errors.Is(err, common.ErrExtraction) {
		t.Fatalf("err = %v, want ErrExtraction", err)
	}
}
