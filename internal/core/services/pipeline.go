package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/abdomohamed/apim-swagger-downloader/internal/core/domain"
	"github.com/abdomohamed/apim-swagger-downloader/internal/core/ports/driven"
	"github.com/abdomohamed/apim-swagger-downloader/internal/core/ports/driving"
	"github.com/abdomohamed/apim-swagger-downloader/internal/logger"
)

// indexBatchSize is the number of documents sent per upsert request.
const indexBatchSize = 10

// Ensure Pipeline implements the interface.
var _ driving.PipelineRunner = (*Pipeline)(nil)

// Pipeline runs the catalog-to-index ingestion: enumerate the catalog,
// download specification exports, render documents into the store, and
// upsert them into the search collection.
//
// Remote calls are issued one at a time, and records are processed in the
// exact order the catalog enumerates them.
type Pipeline struct {
	catalog     driven.CatalogSource
	normaliser  driven.Normaliser
	renderer    driven.Renderer
	docStore    driven.DocumentStore
	searchIndex driven.SearchIndex
	filter      domain.Filter

	// SwaggerDir and MarkdownDir receive the on-disk artifacts. Either
	// may be empty to skip the corresponding file writes.
	SwaggerDir  string
	MarkdownDir string

	// Wiki supplies supplementary wiki documents. Nil skips the wiki
	// stage.
	Wiki driven.WikiSource
}

// NewPipeline creates a pipeline runner. The searchIndex may be nil when
// only the download and convert stages will run.
func NewPipeline(
	catalog driven.CatalogSource,
	normaliser driven.Normaliser,
	renderer driven.Renderer,
	docStore driven.DocumentStore,
	searchIndex driven.SearchIndex,
	filter domain.Filter,
) *Pipeline {
	return &Pipeline{
		catalog:     catalog,
		normaliser:  normaliser,
		renderer:    renderer,
		docStore:    docStore,
		searchIndex: searchIndex,
		filter:      filter,
	}
}

// Run executes the selected stages in pipeline order and returns a report.
//
// A malformed record (missing identifier) is counted and reported at the end
// of the run, never fatal. An unreachable catalog or a rejected index write
// aborts the failing stage with the error surfaced to the operator.
func (p *Pipeline) Run(ctx context.Context, opts driving.RunOptions) (*driving.RunReport, error) {
	// Cancelling on early return unwinds the catalog's producer
	// goroutine when a stage aborts mid-enumeration.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	report := &driving.RunReport{
		RunID:   uuid.NewString(),
		Started: time.Now(),
	}
	logger.Section("Pipeline run " + report.RunID)

	if opts.WantStage(driving.StageDownload) || opts.WantStage(driving.StageConvert) {
		if err := p.runEnumeration(ctx, opts, report); err != nil {
			return report, err
		}
	}

	if opts.WantStage(driving.StageWiki) && p.Wiki != nil {
		if err := p.runWiki(ctx, report); err != nil {
			return report, err
		}
	}

	if opts.WantStage(driving.StageIndex) {
		if err := p.runIndex(ctx, report); err != nil {
			return report, err
		}
	}

	report.Finished = time.Now()

	logger.Info("Run %s: %d APIs seen, %d kept, %d specs, %d documents, %d wiki, %d indexed",
		report.RunID, report.APIsSeen, report.APIsKept,
		report.SpecsDownloaded, report.DocumentsRendered,
		report.WikiDocuments, report.DocumentsIndexed)
	if report.MalformedRecords > 0 {
		logger.Warn("Rejected %d malformed record(s): %v",
			report.MalformedRecords, report.MalformedIDs)
	}
	return report, nil
}

// runEnumeration drives the download and convert stages off one catalog
// enumeration pass.
func (p *Pipeline) runEnumeration(ctx context.Context, opts driving.RunOptions, report *driving.RunReport) error {
	apisCh, errsCh := p.catalog.ListAPIs(ctx)

	for raw := range apisCh {
		report.APIsSeen++

		api, err := p.normaliser.Normalise(raw)
		if err != nil {
			if errors.Is(err, domain.ErrMalformedRecord) {
				report.MalformedRecords++
				report.MalformedIDs = append(report.MalformedIDs, malformedLabel(raw, report.APIsSeen))
				logger.Warn("Skipping malformed record at position %d: %v", report.APIsSeen, err)
				continue
			}
			return fmt.Errorf("normalise record %d: %w", report.APIsSeen, err)
		}

		if !p.filter.Matches(*api) {
			logger.Debug("Filtered out API %s", api.ID)
			continue
		}
		report.APIsKept++

		if opts.WantStage(driving.StageDownload) {
			if err := p.downloadSpec(ctx, api.ID, report); err != nil {
				// Per-API export failures degrade the run, they do
				// not abort it.
				logger.Warn("Export failed for API %s: %v", api.ID, err)
			}
		}

		if opts.WantStage(driving.StageConvert) {
			if err := p.convertAPI(ctx, *api, report); err != nil {
				return err
			}
		}
	}

	if err := <-errsCh; err != nil {
		return fmt.Errorf("enumerate catalog: %w", err)
	}
	return nil
}

// downloadSpec saves one API's specification export to the swagger
// directory.
func (p *Pipeline) downloadSpec(ctx context.Context, apiID string, report *driving.RunReport) error {
	spec, err := p.catalog.ExportSpec(ctx, apiID)
	if err != nil {
		return err
	}
	report.SpecsDownloaded++

	if p.SwaggerDir == "" {
		return nil
	}
	if err := os.MkdirAll(p.SwaggerDir, 0o750); err != nil {
		return fmt.Errorf("create swagger dir: %w", err)
	}
	path := filepath.Join(p.SwaggerDir, sanitiseFileName(apiID)+".json")
	if err := os.WriteFile(path, spec, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	logger.Debug("Saved swagger export to %s", path)
	return nil
}

// convertAPI renders one API into its document, stores it, and optionally
// writes the markdown artifact.
func (p *Pipeline) convertAPI(ctx context.Context, api domain.API, report *driving.RunReport) error {
	doc := p.renderer.Document(api)

	if err := p.docStore.Put(ctx, doc); err != nil {
		return fmt.Errorf("store document %s: %w", doc.ID, err)
	}
	report.DocumentsRendered++

	if p.MarkdownDir != "" {
		if err := os.MkdirAll(p.MarkdownDir, 0o750); err != nil {
			return fmt.Errorf("create markdown dir: %w", err)
		}
		path := filepath.Join(p.MarkdownDir, doc.FileName)
		if err := os.WriteFile(path, []byte(doc.Content), 0o600); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		logger.Debug("Saved document to %s", path)
	}
	return nil
}

// runWiki stores one combined document per wiki service. A missing wiki
// tree yields zero documents inside the source; a read or store failure
// aborts the stage.
func (p *Pipeline) runWiki(ctx context.Context, report *driving.RunReport) error {
	docs, err := p.Wiki.Documents(ctx)
	if err != nil {
		return fmt.Errorf("collect wiki documents: %w", err)
	}

	for _, doc := range docs {
		if err := p.docStore.Put(ctx, doc); err != nil {
			return fmt.Errorf("store wiki document %s: %w", doc.ID, err)
		}
		report.WikiDocuments++
	}
	logger.Info("Stored %d wiki document(s)", report.WikiDocuments)
	return nil
}

// runIndex upserts all stored API and wiki documents into the search
// collection in fixed-size batches.
func (p *Pipeline) runIndex(ctx context.Context, report *driving.RunReport) error {
	if p.searchIndex == nil {
		return fmt.Errorf("%w: no search index configured", domain.ErrIndexWrite)
	}

	if err := p.searchIndex.EnsureIndex(ctx); err != nil {
		return fmt.Errorf("%w: ensure index: %w", domain.ErrIndexWrite, err)
	}

	docs, err := p.docStore.ListByType(ctx, domain.DocumentTypeAPI)
	if err != nil {
		return fmt.Errorf("list documents: %w", err)
	}
	wikiDocs, err := p.docStore.ListByType(ctx, domain.DocumentTypeWiki)
	if err != nil {
		return fmt.Errorf("list wiki documents: %w", err)
	}
	docs = append(docs, wikiDocs...)

	for start := 0; start < len(docs); start += indexBatchSize {
		end := start + indexBatchSize
		if end > len(docs) {
			end = len(docs)
		}
		batch := docs[start:end]

		if err := p.searchIndex.Upsert(ctx, batch); err != nil {
			return fmt.Errorf("%w: batch starting at %s: %w",
				domain.ErrIndexWrite, batch[0].ID, err)
		}
		report.DocumentsIndexed += len(batch)
		logger.Debug("Indexed batch of %d document(s)", len(batch))
	}
	return nil
}

// sanitiseFileName keeps file names portable across filesystems.
func sanitiseFileName(name string) string {
	out := []rune(name)
	for i, r := range out {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			out[i] = '_'
		}
	}
	return string(out)
}

// malformedLabel names a rejected record for the end-of-run report, by
// display name when present, otherwise by enumeration position.
func malformedLabel(raw domain.RawAPI, position int) string {
	if raw.DisplayName != nil && *raw.DisplayName != "" {
		return *raw.DisplayName
	}
	return fmt.Sprintf("record #%d", position)
}
