package ocr

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/TadiwanasheNdombo/aura-document-system/internal/common"
)

type fakeRunner struct {
	calls []string
	run   func(name string, args []string) ([]byte, []byte, error)
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.calls = append(f.calls, name)
	if f.run == nil {
		return nil, nil, nil
	}
	return f.run(name, args)
}

// rasterizingRun fakes pdftoppm by dropping page files at the prefix
// and fakes tesseract by returning canned text.
func rasterizingRun(t *testing.T, pages int, ocrText string) func(string, []string) ([]byte, []byte, error) {
	t.Helper()
	return func(name string, args []string) ([]byte, []byte, error) {
		switch name {
		case "pdftoppm":
			prefix := args[len(args)-1]
			for i := 1; i <= pages; i++ {
				if err := os.WriteFile(fmt.Sprintf("%s-%d.png", prefix, i), []byte("png"), 0o644); err != nil {
					t.Fatalf("writing fake page: %v", err)
				}
			}
			return nil, nil, nil
		case "tesseract":
			return []byte(ocrText), nil, nil
		}
		return nil, nil, fmt.Errorf("unexpected command %q", name)
	}
}

func newTestExtractor(r Runner, pdfText string, pdfErr error) *Extractor {
	e := NewExtractor(Config{}, nil)
	e.runner = r
	e.readPDFText = func(string) (string, int, error) {
		return pdfText, 1, pdfErr
	}
	return e
}

func TestExtractPDFUsesTextLayerWhenRich(t *testing.T) {
	native := strings.Repeat("FULL NAME JOHN DOE ", 10)
	runner := &fakeRunner{}
	e := newTestExtractor(runner, native, nil)

	res, err := e.Extract(context.Background(), "statement.pdf")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Method != "pdf-text" {
		t.Errorf("method = %q, want pdf-text", res.Method)
	}
	if len(runner.calls) != 0 {
		t.Errorf("runner was invoked %d times for a rich text layer", len(runner.calls))
	}
}

func TestExtractPDFFallsBackToOCRWhenThin(t *testing.T) {
	ocrText := strings.Repeat("SURNAME MOYO NATIONAL ID ", 8)
	runner := &fakeRunner{run: rasterizingRun(t, 2, ocrText)}
	e := newTestExtractor(runner, "short", nil)

	res, err := e.Extract(context.Background(), "scan.pdf")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Method != "pdf-ocr" {
		t.Errorf("method = %q, want pdf-ocr", res.Method)
	}
	if res.Pages != 2 {
		t.Errorf("pages = %d, want 2", res.Pages)
	}
	if !strings.Contains(res.Text, "SURNAME MOYO") {
		t.Errorf("OCR text missing from result: %q", res.Text)
	}
}

func TestExtractPDFKeepsLongerTextAfterFallback(t *testing.T) {
	// thin by threshold but still longer than what OCR recovers
	native := "NAME: T NDLOVU ID 63-123456 A 42"
	runner := &fakeRunner{run: rasterizingRun(t, 1, "x")}
	e := newTestExtractor(runner, native, nil)

	res, err := e.Extract(context.Background(), "scan.pdf")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Method != "pdf-text" {
		t.Errorf("method = %q, want pdf-text", res.Method)
	}
	if res.Text != native {
		t.Errorf("text = %q, want native layer kept", res.Text)
	}
}

func TestExtractPDFErrorWhenBothPathsFail(t *testing.T) {
	runner := &fakeRunner{run: func(string, []string) ([]byte, []byte, error) {
		return nil, []byte("boom"), errors.New("exec failed")
	}}
	e := newTestExtractor(runner, "", errors.New("no xref table"))

	_, err := e.Extract(context.Background(), "broken.pdf")
	if !errors.Is(err, common.ErrRecognition) {
		t.Fatalf("err = %v, want ErrRecognition", err)
	}
}

func TestExtractImageRunsTesseract(t *testing.T) {
	runner := &fakeRunner{run: func(name string, _ []string) ([]byte, []byte, error) {
		if name != "tesseract" {
			return nil, nil, fmt.Errorf("unexpected command %q", name)
		}
		return []byte("REPUBLIC OF ZIMBABWE\nNATIONAL REGISTRATION"), nil, nil
	}}
	e := newTestExtractor(runner, "", nil)

	res, err := e.Extract(context.Background(), filepath.Join("scans", "front.jpg"))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Method != "image-ocr" {
		t.Errorf("method = %q, want image-ocr", res.Method)
	}
	if !strings.Contains(res.Text, "ZIMBABWE") {
		t.Errorf("unexpected text: %q", res.Text)
	}
}

func TestExtractRejectsUnsupportedExtension(t *testing.T) {
	e := newTestExtractor(&fakeRunner{}, "", nil)
	_, err := e.Extract(context.Background(), "notes.docx")
	if !errors.Is(err, common.ErrRecognition) {
		t.Fatalf("err = %v, want ErrRecognition", err)
	}
}

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	in := "LINE ONE\t\tX\r\n\r\n\r\n\r\nLINE   TWO   \r\n"
	got := Normalize(in)
	want := "LINE ONE X\n\nLINE TWO"
	if got != want {
		t.Errorf("Normalize = %q, want %q", got, want)
	}
}
