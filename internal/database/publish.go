package database

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/example/innatural/internal/models"
)

// Rows is the flattened form of a catalog document, ready to be written.
type Rows struct {
	RunID       uuid.UUID
	Collections []models.CollectionRecord
	Products    []models.ProductRecord
	Bundles     []models.BundleRecord
}

// PublishStats counts what a publish run wrote and removed.
type PublishStats struct {
	RunID       uuid.UUID
	Collections int
	Products    int
	Bundles     int
	Removed     int64
}

// BuildRows flattens doc into table rows stamped with runID. Display order
// follows document order.
func BuildRows(doc *models.Catalog, runID uuid.UUID) Rows {
	currency := doc.Metadata.Currency
	rows := Rows{
		RunID:       runID,
		Collections: make([]models.CollectionRecord, 0, len(doc.Collections)),
		Products:    make([]models.ProductRecord, 0, len(doc.Products)),
		Bundles:     make([]models.BundleRecord, 0, len(doc.Bundles)),
	}
	for i, c := range doc.Collections {
		rec := models.NewCollectionRecord(c, i)
		rec.PublishRunID = runID
		rows.Collections = append(rows.Collections, rec)
	}
	for i, p := range doc.Products {
		rec := models.NewProductRecord(p, currency, i)
		rec.PublishRunID = runID
		rows.Products = append(rows.Products, rec)
	}
	for i, b := range doc.Bundles {
		rec := models.NewBundleRecord(b, currency, i)
		rec.PublishRunID = runID
		rows.Bundles = append(rows.Bundles, rec)
	}
	return rows
}

// Publish upserts doc by slug inside one transaction and removes rows that
// the document no longer lists.
func Publish(db *gorm.DB, doc *models.Catalog) (PublishStats, error) {
	rows := BuildRows(doc, uuid.New())
	stats := PublishStats{
		RunID:       rows.RunID,
		Collections: len(rows.Collections),
		Products:    len(rows.Products),
		Bundles:     len(rows.Bundles),
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := upsert(tx, rows.Collections, []string{
			"name_ar", "name_en", "description_ar", "description_en",
			"concerns", "ingredients", "hair_types", "display_order",
		}); err != nil {
			return fmt.Errorf("collections: %w", err)
		}
		if err := upsert(tx, rows.Products, []string{
			"collection_slug", "type", "category", "name_ar", "name_en", "price", "currency", "size",
			"description_ar", "description_en", "benefits_ar", "benefits_en",
			"concerns", "hair_types", "ingredients", "display_order",
		}); err != nil {
			return fmt.Errorf("products: %w", err)
		}
		if err := upsert(tx, rows.Bundles, []string{
			"collection_slug", "name_ar", "name_en", "original_price", "sale_price",
			"discount", "savings", "currency", "description_ar", "description_en", "display_order",
		}); err != nil {
			return fmt.Errorf("bundles: %w", err)
		}

		for _, model := range []interface{}{
			&models.BundleRecord{},
			&models.ProductRecord{},
			&models.CollectionRecord{},
		} {
			res := tx.Where("publish_run_id <> ?", rows.RunID).Delete(model)
			if res.Error != nil {
				return fmt.Errorf("prune stale rows: %w", res.Error)
			}
			stats.Removed += res.RowsAffected
		}
		return nil
	})
	if err != nil {
		return stats, err
	}
	return stats, nil
}

func upsert[T any](tx *gorm.DB, records []T, columns []string) error {
	if len(records) == 0 {
		return nil
	}
	columns = append(columns, "publish_run_id", "updated_at")
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns(columns),
	}).CreateInBatches(records, 100).Error
}
