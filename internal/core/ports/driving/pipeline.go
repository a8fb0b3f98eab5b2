package driving

import (
	"context"
	"time"
)

// Stage identifies one pipeline stage.
type Stage string

const (
	// StageDownload enumerates the catalog and saves specification exports.
	StageDownload Stage = "download"

	// StageConvert normalises and renders documents into the store.
	StageConvert Stage = "convert"

	// StageWiki combines supplementary wiki pages into documents and
	// stores them alongside the rendered API documents.
	StageWiki Stage = "wiki"

	// StageIndex upserts stored documents into the search collection.
	StageIndex Stage = "index"
)

// RunOptions selects which stages a pipeline run executes.
// The zero value runs every stage.
type RunOptions struct {
	// Stages restricts the run to the listed stages, in pipeline order.
	// Empty means all stages.
	Stages []Stage
}

// WantStage reports whether the run includes the given stage.
func (o RunOptions) WantStage(s Stage) bool {
	if len(o.Stages) == 0 {
		return true
	}
	for _, stage := range o.Stages {
		if stage == s {
			return true
		}
	}
	return false
}

// RunReport summarises one pipeline run.
type RunReport struct {
	// RunID uniquely identifies the run.
	RunID string

	// APIsSeen is the number of APIs the catalog enumerated.
	APIsSeen int

	// APIsKept is the number of APIs that passed the inclusion filter.
	APIsKept int

	// SpecsDownloaded is the number of specification exports saved.
	SpecsDownloaded int

	// DocumentsRendered is the number of documents produced and stored.
	DocumentsRendered int

	// WikiDocuments is the number of combined wiki documents stored.
	WikiDocuments int

	// DocumentsIndexed is the number of documents upserted into search.
	DocumentsIndexed int

	// MalformedRecords counts records rejected for a missing identifier.
	MalformedRecords int

	// MalformedIDs lists the display names or positions of rejected
	// records for the end-of-run report.
	MalformedIDs []string

	// Started and Finished bound the run.
	Started  time.Time
	Finished time.Time
}

// PipelineRunner executes the catalog-to-document ingestion pipeline.
type PipelineRunner interface {
	// Run executes the selected stages and returns a report. Catalog and
	// index-write failures abort the failing stage; malformed records are
	// counted and reported, never fatal.
	Run(ctx context.Context, opts RunOptions) (*RunReport, error)
}
