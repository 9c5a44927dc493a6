package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/TadiwanasheNdombo/aura-document-system/constants"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/common"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/entity"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/llm"
)

// ExtractFields implements llm.FieldExtractor over the Gemini
// generateContent endpoint. The model reply is recovered, validated
// against the per-source schema, normalized on a near miss, and
// revalidated before it is trusted.
func (c *Client) ExtractFields(ctx context.Context, req llm.ExtractRequest) (entity.FieldSet, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"document_id", req.DocumentID,
		"source_type", req.SourceType,
		"text_len", len(req.Text),
		"has_image", len(req.Image) > 0,
	)

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, nil, c.classify(err, rid, start)
	}

	body := c.buildRequest(req)
	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/models/" + c.cfg.Model + ":generateContent"
	headers := map[string]string{"x-goog-api-key": c.cfg.APIKey}

	raw, err := c.breaker.Execute(func() ([]byte, error) {
		return c.postWithRetry(ctx, url, body, headers, rid)
	})
	if err != nil {
		return nil, nil, c.classify(err, rid, start)
	}

	content, err := replyText(raw)
	if err != nil {
		c.log.Error("llm.extract.decode_error", "req_id", rid, "error", err, "raw_bytes", len(raw))
		return nil, raw, common.NewAppError("EXTRACTION_ERROR", err.Error(), common.ErrExtraction)
	}

	recovered, err := llm.RecoverJSON(content)
	if err != nil {
		c.log.Error("llm.extract.recover_failed", "req_id", rid, "error", err)
		return nil, []byte(content), common.NewAppError("EXTRACTION_ERROR", err.Error(), common.ErrExtraction)
	}

	schema := llm.BuildFieldSetJSONSchema(req.SourceType)
	if vErr := llm.ValidateJSONAgainstSchema(schema, recovered); vErr != nil {
		cleaned, adjusted, sErr := llm.NormalizeFieldSetJSON(recovered, req.SourceType, c.log)
		if sErr != nil {
			c.log.Error("llm.extract.sanitize_failed", "req_id", rid, "error", sErr)
			return nil, recovered, common.NewAppError("EXTRACTION_ERROR", sErr.Error(), common.ErrExtraction)
		}
		if vErr2 := llm.ValidateJSONAgainstSchema(schema, cleaned); vErr2 != nil {
			c.log.Error("llm.extract.schema_validation_failed", "req_id", rid, "error", vErr2)
			return nil, recovered, common.NewAppError("VALIDATION_ERROR", vErr2.Error(), common.ErrValidation)
		}
		c.log.Warn("llm.extract.normalized", "req_id", rid, "adjusted", adjusted)
		recovered = cleaned
	}

	fields, err := llm.ToFieldSet(recovered)
	if err != nil {
		return nil, recovered, common.NewAppError("EXTRACTION_ERROR", err.Error(), common.ErrExtraction)
	}

	c.log.Info("llm.extract.ok",
		"req_id", rid,
		"document_id", req.DocumentID,
		"fields", len(fields),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return fields, recovered, nil
}

func (c *Client) buildRequest(req llm.ExtractRequest) map[string]any {
	parts := []map[string]any{{"text": buildPrompt(req)}}
	if len(req.Image) > 0 {
		mime := req.MimeType
		if mime == "" {
			mime = "image/png"
		}
		parts = append(parts, map[string]any{
			"inline_data": map[string]any{
				"mime_type": mime,
				"data":      base64.StdEncoding.EncodeToString(req.Image),
			},
		})
	}
	return map[string]any{
		"contents": []map[string]any{{"parts": parts}},
		"generationConfig": map[string]any{
			"temperature":        c.cfg.Temperature,
			"response_mime_type": "application/json",
		},
	}
}

// postWithRetry retries transient transport failures with a flat
// backoff; the breaker above it handles sustained failure.
func (c *Client) postWithRetry(ctx context.Context, url string, body any, headers map[string]string, rid string) ([]byte, error) {
	var lastErr error
	for attempt := 1; attempt <= c.cfg.RetryMaxAttempts; attempt++ {
		raw, status, err := llm.SendJSON(ctx, c.http, url, body, headers, c.log)
		if err == nil {
			return raw, nil
		}
		lastErr = err
		if !retryableStatus(status) || ctx.Err() != nil {
			return raw, err
		}
		c.log.Warn("llm.extract.retry", "req_id", rid, "attempt", attempt, "status", status, "error", err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.cfg.RetryBackoff):
		}
	}
	return nil, lastErr
}

// status 0 means the request never got a response (transport error)
func retryableStatus(status int) bool {
	return status == 0 || status == 429 || status/100 == 5
}

func (c *Client) classify(err error, rid string, start time.Time) error {
	elapsed := time.Since(start).Milliseconds()
	if errors.Is(err, context.DeadlineExceeded) {
		c.log.Error("llm.extract.timeout", "req_id", rid, "elapsed_ms", elapsed)
		return common.NewAppError("EXTRACTION_TIMEOUT", "vision extraction timed out", common.ErrExtractionTimeout)
	}
	c.log.Error("llm.extract.failed", "req_id", rid, "error", err, "elapsed_ms", elapsed)
	return common.NewAppError("EXTRACTION_ERROR", err.Error(), common.ErrExtraction)
}

// replyText pulls the concatenated text parts from the first
// candidate of a generateContent response.
func replyText(raw []byte) (string, error) {
	var resp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("decode gemini response: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in gemini response")
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}
	content := strings.TrimSpace(b.String())
	if content == "" {
		return "", fmt.Errorf("empty reply from gemini")
	}
	return content, nil
}

func buildPrompt(req llm.ExtractRequest) string {
	names := constants.FieldNamesFor(req.SourceType)

	var doc string
	switch req.SourceType {
	case constants.SourceMandateCard:
		doc = "a bank account-opening mandate card"
	case constants.SourceNationalID:
		doc = "a national identity card"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are a document extraction engine reading %s.\n", doc)
	b.WriteString("Return ONLY a JSON object with exactly these string keys:\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  - %s\n", name)
	}
	b.WriteString("Use \"Not Found\" for any field not present in the document.\n")
	b.WriteString("Dates must be formatted YYYY-MM-DD.\n")
	b.WriteString("Never add extra keys, comments or markdown.\n")
	if req.FilenameHint != "" {
		fmt.Fprintf(&b, "\nFilename: %s\n", req.FilenameHint)
	}
	if strings.TrimSpace(req.Text) != "" {
		b.WriteString("\nRecognized text (may be noisy):\n")
		text := req.Text
		if len(text) > 6000 {
			text = text[:6000]
		}
		b.WriteString(text)
	}
	return b.String()
}
