package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/TadiwanasheNdombo/aura-document-system/constants"
	"github.com/TadiwanasheNdombo/aura-document-system/gen/ent"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/common"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/fields"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/llm"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/llm/gemini"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/ocr"
	processor "github.com/TadiwanasheNdombo/aura-document-system/internal/pipeline"
	repo "github.com/TadiwanasheNdombo/aura-document-system/internal/repository"
)

func main() {
	var (
		path   = flag.String("file", "", "document to extract (required)")
		docID  = flag.String("id", "", "document id (default: random)")
		source = flag.String("source", "", "MANDATE_CARD or NATIONAL_ID (default: detect)")
		dual   = flag.Bool("dual", false, "fill both target schemas from one scan")
		vision = flag.Bool("vision", false, "use the vision model instead of the rule parser")
		inmem  = flag.Bool("inmem", false, "use an in-memory SQLite database")
	)
	flag.Parse()

	logger := common.NewLogger()

	if *path == "" {
		fmt.Fprintln(os.Stderr, "Error: --file is required")
		os.Exit(1)
	}
	if *docID == "" {
		*docID = uuid.NewString()
	}

	var src constants.SourceType
	if *source != "" {
		parsed, ok := constants.ParseSourceType(*source)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown source %q\n", *source)
			os.Exit(1)
		}
		src = parsed
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	var entc *ent.Client
	if *inmem {
		client, err := repo.OpenSQLite(ctx, "", logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: opening sqlite: %v\n", err)
			os.Exit(1)
		}
		entc = client
		defer entc.Close()
	} else if dbURL := os.Getenv("DB_URL"); dbURL != "" {
		client, pool, err := repo.Open(ctx, repo.Config{
			DSN:             dbURL,
			MaxConns:        10,
			MinConns:        1,
			MaxConnLifetime: 30 * time.Minute,
			MaxConnIdleTime: 5 * time.Minute,
			DialTimeout:     3 * time.Second,
		}, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: opening db: %v\n", err)
			os.Exit(1)
		}
		entc = client
		defer repo.Close(client, pool, logger)
	}

	var fieldsRepo repo.ExtractionFieldRepository
	if entc != nil {
		fieldsRepo = repo.NewExtractionFieldRepository(entc, logger)
	}

	extractor := ocr.NewExtractor(ocr.Config{
		TessdataDir:      os.Getenv("TESSDATA_PREFIX"),
		ArtifactCacheDir: "./tmp",
	}, logger)

	var visionClient llm.FieldExtractor
	if *vision {
		if os.Getenv("GEMINI_API_KEY") == "" {
			fmt.Fprintln(os.Stderr, "Error: --vision requires GEMINI_API_KEY")
			os.Exit(1)
		}
		visionClient = gemini.NewClient(gemini.Config{}, logger)
	}

	proc := processor.NewProcessor(logger, extractor, fields.NewParser(logger), visionClient, fieldsRepo)
	req := processor.Request{
		DocumentID: *docID,
		Path:       *path,
		SourceType: src,
		UseVision:  *vision,
	}

	start := time.Now()
	var results []processor.Result
	if *dual {
		rs, err := proc.ExtractDualSource(ctx, req)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		results = rs
	} else {
		r, err := proc.ProcessDocument(ctx, req)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		results = []processor.Result{r}
	}

	for _, r := range results {
		fmt.Printf("\n%s (%s, %s)\n", r.DocumentID, r.SourceType, r.Method)
		names := make([]string, 0, len(r.Fields))
		for name := range r.Fields {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("  %-20s %s\n", name, r.Fields[name])
		}
	}
	fmt.Printf("\ndone in %s\n", time.Since(start).Round(time.Millisecond))
}
