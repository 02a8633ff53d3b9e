// Package improve repairs body product copy in an assembled catalog: hair-care
// benefits are replaced with skin-care benefits and thin descriptions get the
// long body copy.
package improve

import (
	"go.uber.org/zap"

	"github.com/example/innatural/internal/catalog"
	"github.com/example/innatural/internal/models"
	"github.com/example/innatural/internal/synth"
)

// Change describes what CorrectProduct did to a product.
type Change struct {
	Benefits    bool
	Description bool
}

// Any reports whether the product changed.
func (c Change) Any() bool { return c.Benefits || c.Description }

// CorrectProduct returns a corrected copy of p. Hair products are returned
// unchanged. A body product gets skin-care benefits when its benefits mention
// hair, and the long body copy when its description is thin, whichever of the
// two applies.
func CorrectProduct(p models.Product) (models.Product, Change, error) {
	if p.Type.Category() != models.CategoryBody {
		return p, Change{}, nil
	}

	out := p.Clone()
	var change Change

	if synth.CategoryMismatch(p) {
		benefits := synth.SkinBenefits(p.Type)
		out.Benefits = &benefits
		change.Benefits = true
	}

	if synth.ThinDescription(p) {
		desc, ok, err := synth.BodyDescription(p)
		if err != nil {
			return p, Change{}, err
		}
		if ok {
			out.Description = &desc
			change.Description = true
		}
	}

	if !change.Any() {
		return p, Change{}, nil
	}
	return out, change, nil
}

// Corrector runs CorrectProduct over a catalog.
type Corrector struct {
	logger *zap.Logger
}

// NewCorrector builds a Corrector logging through logger.
func NewCorrector(logger *zap.Logger) *Corrector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Corrector{logger: logger}
}

// Run corrects every product and returns a new document. Running it on its
// own output changes nothing.
func (c *Corrector) Run(doc *models.Catalog) (*models.Catalog, *catalog.Report) {
	report := &catalog.Report{
		Stage:   catalog.StageImprove,
		Version: catalog.ImproveVersion,
		Total:   len(doc.Products),
	}

	out := *doc
	out.Products = make([]models.Product, 0, len(doc.Products))

	for _, p := range doc.Products {
		fixed, change, err := CorrectProduct(p)
		if err != nil {
			c.logger.Warn("product skipped", zap.String("product_id", p.ID), zap.Error(err))
			report.Skip(p.ID, err)
			out.Products = append(out.Products, p.Clone())
			continue
		}
		if !change.Any() {
			out.Products = append(out.Products, p.Clone())
			continue
		}

		out.Products = append(out.Products, fixed)
		if change.Benefits {
			report.Corrected++
			c.logger.Info("body benefits corrected",
				zap.String("product_id", p.ID), zap.String("type", string(p.Type)))
		}
		if change.Description {
			report.DescriptionsRewritten++
			c.logger.Info("body description rewritten", zap.String("product_id", p.ID))
		}
	}

	return &out, report
}
