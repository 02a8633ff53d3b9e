package models

import (
	"encoding/json"
	"math"
	"reflect"
)

// Catalog is the root catalog document consumed by the storefront and the chatbot.
type Catalog struct {
	Metadata    Metadata                   `json:"metadata"`
	Promotions  map[string]Promotion       `json:"promotions,omitempty"`
	Collections []Collection               `json:"collections"`
	Products    []Product                  `json:"products"`
	Bundles     []Bundle                   `json:"bundles"`
	Extra       map[string]json.RawMessage `json:"-"`
}

type catalogFields Catalog

func (c *Catalog) UnmarshalJSON(data []byte) error {
	var aux catalogFields
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	extra, err := extraFields(data, reflect.TypeOf(aux))
	if err != nil {
		return err
	}
	*c = Catalog(aux)
	c.Extra = extra
	return nil
}

func (c Catalog) MarshalJSON() ([]byte, error) {
	return marshalWithExtra(catalogFields(c), c.Extra)
}

// ProductIndex maps product IDs to their position in Products. When an ID is
// repeated the first occurrence wins.
func (c *Catalog) ProductIndex() map[string]int {
	index := make(map[string]int, len(c.Products))
	for i, p := range c.Products {
		if _, seen := index[p.ID]; !seen {
			index[p.ID] = i
		}
	}
	return index
}

// FindProduct returns the first product with the given ID.
func (c *Catalog) FindProduct(id string) (Product, bool) {
	for _, p := range c.Products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// FindCollection returns the collection with the given ID.
func (c *Catalog) FindCollection(id string) (Collection, bool) {
	for _, col := range c.Collections {
		if col.ID == id {
			return col, true
		}
	}
	return Collection{}, false
}

// Metadata describes the catalog snapshot and the pipeline stages applied to it.
type Metadata struct {
	LastUpdated     string                     `json:"lastUpdated,omitempty"`
	Source          string                     `json:"source,omitempty"`
	Currency        string                     `json:"currency,omitempty"`
	Version         string                     `json:"version,omitempty"`
	TotalProducts   int                        `json:"totalProducts,omitempty"`
	ScrapeDate      string                     `json:"scrapeDate,omitempty"`
	Enriched        bool                       `json:"enriched,omitempty"`
	EnrichmentDate  string                     `json:"enrichmentDate,omitempty"`
	Improved        bool                       `json:"improved,omitempty"`
	ImprovementDate string                     `json:"improvementDate,omitempty"`
	Extra           map[string]json.RawMessage `json:"-"`
}

type metadataFields Metadata

func (m *Metadata) UnmarshalJSON(data []byte) error {
	var aux metadataFields
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	extra, err := extraFields(data, reflect.TypeOf(aux))
	if err != nil {
		return err
	}
	*m = Metadata(aux)
	m.Extra = extra
	return nil
}

func (m Metadata) MarshalJSON() ([]byte, error) {
	return marshalWithExtra(metadataFields(m), m.Extra)
}

// Promotion is a threshold-based discount rule such as free shipping.
type Promotion struct {
	Threshold          int                        `json:"threshold"`
	DiscountPercentage int                        `json:"discount_percentage,omitempty"`
	Description        *Text                      `json:"description,omitempty"`
	Extra              map[string]json.RawMessage `json:"-"`
}

type promotionFields Promotion

func (p *Promotion) UnmarshalJSON(data []byte) error {
	var aux promotionFields
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	extra, err := extraFields(data, reflect.TypeOf(aux))
	if err != nil {
		return err
	}
	*p = Promotion(aux)
	p.Extra = extra
	return nil
}

func (p Promotion) MarshalJSON() ([]byte, error) {
	return marshalWithExtra(promotionFields(p), p.Extra)
}

// Collection is a product line such as "CocoShea".
type Collection struct {
	ID          string                     `json:"id"`
	Name        Text                       `json:"name"`
	Description *Text                      `json:"description,omitempty"`
	Concerns    []Concern                  `json:"concerns,omitempty"`
	Ingredients []string                   `json:"ingredients,omitempty"`
	HairTypes   []HairType                 `json:"hairTypes,omitempty"`
	Extra       map[string]json.RawMessage `json:"-"`
}

type collectionFields Collection

func (c *Collection) UnmarshalJSON(data []byte) error {
	var aux collectionFields
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	extra, err := extraFields(data, reflect.TypeOf(aux))
	if err != nil {
		return err
	}
	*c = Collection(aux)
	c.Extra = extra
	return nil
}

func (c Collection) MarshalJSON() ([]byte, error) {
	return marshalWithExtra(collectionFields(c), c.Extra)
}

// Bundle is a discounted set of products from one collection.
type Bundle struct {
	ID            string                     `json:"id"`
	Name          Text                       `json:"name"`
	Collection    string                     `json:"collection"`
	OriginalPrice int                        `json:"originalPrice"`
	SalePrice     int                        `json:"salePrice"`
	Discount      int                        `json:"discount"`
	Savings       int                        `json:"savings"`
	Description   *Text                      `json:"description,omitempty"`
	Extra         map[string]json.RawMessage `json:"-"`
}

type bundleFields Bundle

func (b *Bundle) UnmarshalJSON(data []byte) error {
	var aux bundleFields
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	extra, err := extraFields(data, reflect.TypeOf(aux))
	if err != nil {
		return err
	}
	*b = Bundle(aux)
	b.Extra = extra
	return nil
}

func (b Bundle) MarshalJSON() ([]byte, error) {
	return marshalWithExtra(bundleFields(b), b.Extra)
}

// ExpectedSavings is originalPrice - salePrice.
func (b Bundle) ExpectedSavings() int {
	return b.OriginalPrice - b.SalePrice
}

// ExpectedDiscount is the savings as a whole percentage of the original price,
// rounded half away from zero.
func (b Bundle) ExpectedDiscount() int {
	if b.OriginalPrice <= 0 {
		return 0
	}
	return int(math.Round(float64(b.ExpectedSavings()) / float64(b.OriginalPrice) * 100))
}
