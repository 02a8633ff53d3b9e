// Package synth generates bilingual marketing copy for products that have no
// legacy description. All text comes from fixed templates; nothing is
// machine translated.
package synth

import (
	"github.com/example/innatural/internal/catalog"
	"github.com/example/innatural/internal/models"
)

// Content is the generated copy for one product.
type Content struct {
	Description models.Text
	Benefits    models.TextList
}

// Synthesize builds a description and a benefit list for p.
func Synthesize(p models.Product) (Content, error) {
	desc, err := Description(p)
	if err != nil {
		return Content{}, err
	}
	return Content{Description: desc, Benefits: Benefits(p)}, nil
}

// requireName fails when a template would have to expand an empty name.
func requireName(p models.Product) error {
	if p.Name.EN == "" {
		return &catalog.SchemaDriftError{ProductID: p.ID, Field: "name.en"}
	}
	if p.Name.AR == "" {
		return &catalog.SchemaDriftError{ProductID: p.ID, Field: "name.ar"}
	}
	return nil
}
