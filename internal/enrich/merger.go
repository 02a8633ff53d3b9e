// Package enrich merges legacy marketing copy into the current catalog and
// synthesizes copy for products the legacy catalog never described.
package enrich

import (
	"go.uber.org/zap"

	"github.com/example/innatural/internal/catalog"
	"github.com/example/innatural/internal/identity"
	"github.com/example/innatural/internal/models"
	"github.com/example/innatural/internal/synth"
)

// Outcome tells how a product's copy was obtained.
type Outcome int

const (
	OutcomeGenerated Outcome = iota
	OutcomeMatched
)

func (o Outcome) String() string {
	if o == OutcomeMatched {
		return "matched"
	}
	return "generated"
}

// Merger enriches current products from a backup catalog.
type Merger struct {
	mapper *identity.Mapper
	backup map[string]models.Product
	logger *zap.Logger
}

// NewMerger indexes the backup products by ID. The first product wins when the
// backup repeats an ID.
func NewMerger(mapper *identity.Mapper, backup *models.Catalog, logger *zap.Logger) *Merger {
	if logger == nil {
		logger = zap.NewNop()
	}
	index := make(map[string]models.Product)
	if backup != nil {
		for _, p := range backup.Products {
			if _, seen := index[p.ID]; !seen {
				index[p.ID] = p
			}
		}
	}
	return &Merger{mapper: mapper, backup: index, logger: logger}
}

// Lookup returns the backup product matched to currentID, if any.
func (m *Merger) Lookup(currentID string) (models.Product, bool) {
	backupID, ok := m.mapper.Resolve(currentID).BackupID()
	if !ok {
		return models.Product{}, false
	}
	p, ok := m.backup[backupID]
	return p, ok
}

// MergeProduct returns an enriched copy of current. Neither current nor the
// backup record is modified.
func (m *Merger) MergeProduct(current models.Product) (models.Product, Outcome, error) {
	if backup, ok := m.Lookup(current.ID); ok {
		return ApplyBackup(current, backup), OutcomeMatched, nil
	}

	content, err := synth.Synthesize(current)
	if err != nil {
		return current, OutcomeGenerated, err
	}

	enriched := current.Clone()
	enriched.Description = &content.Description
	enriched.Benefits = &content.Benefits
	return enriched, OutcomeGenerated, nil
}

// ApplyBackup copies the rich fields present on backup into a copy of current.
// Hair types are only taken when the backup lists some.
func ApplyBackup(current, backup models.Product) models.Product {
	enriched := current.Clone()
	src := backup.Clone()

	if src.Description != nil {
		enriched.Description = src.Description
	}
	if src.Benefits != nil {
		enriched.Benefits = src.Benefits
	}
	if src.Ingredients != nil {
		enriched.Ingredients = src.Ingredients
	}
	if len(src.HairTypes) > 0 {
		enriched.HairTypes = src.HairTypes
	}
	return enriched
}

// Run enriches every product of current and returns a new document along with
// the run statistics. Product order and identity fields are preserved; a
// product that cannot be enriched is kept as-is and listed in Report.Skipped.
func (m *Merger) Run(current *models.Catalog) (*models.Catalog, *catalog.Report) {
	report := &catalog.Report{
		Stage:   catalog.StageEnrich,
		Version: catalog.EnrichVersion,
		Total:   len(current.Products),
	}

	out := *current
	out.Products = make([]models.Product, 0, len(current.Products))

	for _, p := range current.Products {
		resolution := m.mapper.Resolve(p.ID)
		enriched, outcome, err := m.MergeProduct(p)
		if err != nil {
			m.logger.Warn("product skipped", zap.String("product_id", p.ID), zap.Error(err))
			report.Skip(p.ID, err)
			out.Products = append(out.Products, p.Clone())
			continue
		}

		out.Products = append(out.Products, enriched)

		switch outcome {
		case OutcomeMatched:
			report.Matched++
			backupID, _ := resolution.BackupID()
			m.logger.Info("product matched", zap.String("product_id", p.ID), zap.String("backup_id", backupID))
		default:
			report.Generated++
			if backupID, ok := resolution.BackupID(); ok {
				// mapped, but the backup catalog no longer carries the record
				report.Flagged = append(report.Flagged, p.ID)
				m.logger.Warn("backup product missing, copy generated",
					zap.String("product_id", p.ID), zap.String("backup_id", backupID))
				continue
			}
			m.logger.Info("product copy generated",
				zap.String("product_id", p.ID), zap.String("mapping", resolution.Kind().String()))
		}
	}

	return &out, report
}
