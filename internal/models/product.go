package models

import (
	"encoding/json"
	"reflect"
)

// ProductType is the closed set of product kinds sold by the store.
type ProductType string

const (
	TypeShampoo     ProductType = "shampoo"
	TypeConditioner ProductType = "conditioner"
	TypeLeaveIn     ProductType = "leave-in"
	TypeMask        ProductType = "mask"
	TypeSerum       ProductType = "serum"
	TypeOil         ProductType = "oil"
	TypeMist        ProductType = "mist"
	TypeTreatment   ProductType = "treatment"
	TypeBodyButter  ProductType = "body-butter"
	TypeBodyCream   ProductType = "body-cream"
	TypeBodyScrub   ProductType = "body-scrub"
	TypeHandCream   ProductType = "hand-cream"
)

// ProductTypes lists every ProductType in catalog order.
var ProductTypes = []ProductType{
	TypeShampoo, TypeConditioner, TypeLeaveIn, TypeMask, TypeSerum, TypeOil,
	TypeMist, TypeTreatment, TypeBodyButter, TypeBodyCream, TypeBodyScrub, TypeHandCream,
}

// Category groups product types by what they are applied to.
type Category string

const (
	CategoryHair Category = "hair"
	CategoryBody Category = "body"
)

// Valid reports whether t is one of ProductTypes.
func (t ProductType) Valid() bool {
	for _, known := range ProductTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Category returns CategoryBody for skin products and CategoryHair otherwise.
// Unknown types are treated as hair care, the store's main line.
func (t ProductType) Category() Category {
	switch t {
	case TypeBodyButter, TypeBodyCream, TypeBodyScrub, TypeHandCream:
		return CategoryBody
	}
	return CategoryHair
}

// Concern is a hair concern tag.
type Concern string

const (
	ConcernHairLoss    Concern = "hair-loss"
	ConcernWeakHair    Concern = "weak-hair"
	ConcernDryness     Concern = "dryness"
	ConcernFrizz       Concern = "frizz"
	ConcernSplitEnds   Concern = "split-ends"
	ConcernDamagedHair Concern = "damaged-hair"
	ConcernThinning    Concern = "thinning"
	ConcernDehydration Concern = "dehydration"
	ConcernBreakage    Concern = "breakage"
)

// Concerns is the fixed concern vocabulary.
var Concerns = []Concern{
	ConcernHairLoss, ConcernWeakHair, ConcernDryness, ConcernFrizz, ConcernSplitEnds,
	ConcernDamagedHair, ConcernThinning, ConcernDehydration, ConcernBreakage,
}

// Valid reports whether c belongs to the concern vocabulary.
func (c Concern) Valid() bool {
	for _, known := range Concerns {
		if c == known {
			return true
		}
	}
	return false
}

// HairType is a hair texture tag.
type HairType string

const (
	HairCurly   HairType = "curly"
	HairCoily   HairType = "coily"
	HairWavy    HairType = "wavy"
	HairAfrican HairType = "african"
	HairCoarse  HairType = "coarse"
	HairThick   HairType = "thick"
	HairAll     HairType = "all"
)

// HairTypes is the fixed hair type vocabulary.
var HairTypes = []HairType{HairCurly, HairCoily, HairWavy, HairAfrican, HairCoarse, HairThick, HairAll}

// Valid reports whether h belongs to the hair type vocabulary.
func (h HairType) Valid() bool {
	for _, known := range HairTypes {
		if h == known {
			return true
		}
	}
	return false
}

// Product is a sellable catalog item.
type Product struct {
	ID          string                     `json:"id"`
	Collection  string                     `json:"collection"`
	Name        Text                       `json:"name"`
	Type        ProductType                `json:"type"`
	Price       int                        `json:"price"`
	Size        string                     `json:"size"`
	Concerns    []Concern                  `json:"concerns,omitempty"`
	HairTypes   []HairType                 `json:"hairTypes,omitempty"`
	Description *Text                      `json:"description,omitempty"`
	Benefits    *TextList                  `json:"benefits,omitempty"`
	Ingredients []string                   `json:"ingredients,omitempty"`
	Extra       map[string]json.RawMessage `json:"-"`
}

type productFields Product

// UnmarshalJSON decodes known fields and keeps the rest in Extra.
func (p *Product) UnmarshalJSON(data []byte) error {
	var aux productFields
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	extra, err := extraFields(data, reflect.TypeOf(aux))
	if err != nil {
		return err
	}
	*p = Product(aux)
	p.Extra = extra
	return nil
}

// MarshalJSON encodes known fields in declaration order followed by Extra.
func (p Product) MarshalJSON() ([]byte, error) {
	return marshalWithExtra(productFields(p), p.Extra)
}

// Clone returns a deep copy of p.
func (p Product) Clone() Product {
	out := p
	out.Concerns = cloneSlice(p.Concerns)
	out.HairTypes = cloneSlice(p.HairTypes)
	out.Ingredients = cloneStrings(p.Ingredients)
	if p.Description != nil {
		desc := *p.Description
		out.Description = &desc
	}
	if p.Benefits != nil {
		benefits := p.Benefits.Clone()
		out.Benefits = &benefits
	}
	out.Extra = cloneExtra(p.Extra)
	return out
}

// HasConcern reports whether c is tagged on the product.
func (p Product) HasConcern(c Concern) bool {
	for _, tagged := range p.Concerns {
		if tagged == c {
			return true
		}
	}
	return false
}

func cloneStrings(in []string) []string {
	return cloneSlice(in)
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
