package catalog

import (
	"time"

	"github.com/example/innatural/internal/models"
)

// Stage identifies a pipeline stage for metadata stamping.
type Stage string

const (
	StageEnrich  Stage = "enrich"
	StageImprove Stage = "improve"
)

// Versions declared by each pipeline stage.
const (
	EnrichVersion  = "4.0.0"
	ImproveVersion = "4.1.0"
)

const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02 15:04:05"
)

// Stamp records that stage ran at now. It only touches doc.Metadata.
func Stamp(doc *models.Catalog, stage Stage, version string, now time.Time) {
	meta := &doc.Metadata
	meta.Version = version
	meta.LastUpdated = now.Format(dateLayout)

	switch stage {
	case StageEnrich:
		meta.Enriched = true
		meta.EnrichmentDate = now.Format(timestampLayout)
	case StageImprove:
		meta.Improved = true
		meta.ImprovementDate = now.Format(timestampLayout)
	}
}
