package models

import "github.com/lib/pq"

// CollectionRecord is the published row for a Collection.
type CollectionRecord struct {
	BaseModel
	Slug          string         `gorm:"uniqueIndex" json:"slug"`
	NameAR        string         `json:"name_ar"`
	NameEN        string         `json:"name_en"`
	DescriptionAR string         `json:"description_ar"`
	DescriptionEN string         `json:"description_en"`
	Concerns      pq.StringArray `gorm:"type:text[]" json:"concerns"`
	Ingredients   pq.StringArray `gorm:"type:text[]" json:"ingredients"`
	HairTypes     pq.StringArray `gorm:"type:text[]" json:"hair_types"`
	DisplayOrder  int            `json:"display_order"`
}

func (CollectionRecord) TableName() string { return "catalog_collections" }

// ProductRecord is the published row for a Product.
type ProductRecord struct {
	BaseModel
	Slug           string         `gorm:"uniqueIndex" json:"slug"`
	CollectionSlug string         `gorm:"index" json:"collection_slug"`
	Type           string         `gorm:"index" json:"type"`
	Category       string         `json:"category"`
	NameAR         string         `json:"name_ar"`
	NameEN         string         `json:"name_en"`
	Price          int            `json:"price"`
	Currency       string         `json:"currency"`
	Size           string         `json:"size"`
	DescriptionAR  string         `json:"description_ar"`
	DescriptionEN  string         `json:"description_en"`
	BenefitsAR     pq.StringArray `gorm:"type:text[]" json:"benefits_ar"`
	BenefitsEN     pq.StringArray `gorm:"type:text[]" json:"benefits_en"`
	Concerns       pq.StringArray `gorm:"type:text[]" json:"concerns"`
	HairTypes      pq.StringArray `gorm:"type:text[]" json:"hair_types"`
	Ingredients    pq.StringArray `gorm:"type:text[]" json:"ingredients"`
	DisplayOrder   int            `json:"display_order"`
}

func (ProductRecord) TableName() string { return "catalog_products" }

// BundleRecord is the published row for a Bundle.
type BundleRecord struct {
	BaseModel
	Slug           string `gorm:"uniqueIndex" json:"slug"`
	CollectionSlug string `gorm:"index" json:"collection_slug"`
	NameAR         string `json:"name_ar"`
	NameEN         string `json:"name_en"`
	OriginalPrice  int    `json:"original_price"`
	SalePrice      int    `json:"sale_price"`
	Discount       int    `json:"discount"`
	Savings        int    `json:"savings"`
	Currency       string `json:"currency"`
	DescriptionAR  string `json:"description_ar"`
	DescriptionEN  string `json:"description_en"`
	DisplayOrder   int    `json:"display_order"`
}

func (BundleRecord) TableName() string { return "catalog_bundles" }

// NewCollectionRecord flattens c into its published row.
func NewCollectionRecord(c Collection, order int) CollectionRecord {
	rec := CollectionRecord{
		Slug:         c.ID,
		NameAR:       c.Name.AR,
		NameEN:       c.Name.EN,
		Concerns:     toStringArray(c.Concerns),
		Ingredients:  pq.StringArray(cloneStrings(c.Ingredients)),
		HairTypes:    toStringArray(c.HairTypes),
		DisplayOrder: order,
	}
	if c.Description != nil {
		rec.DescriptionAR = c.Description.AR
		rec.DescriptionEN = c.Description.EN
	}
	return rec
}

// NewProductRecord flattens p into its published row.
func NewProductRecord(p Product, currency string, order int) ProductRecord {
	rec := ProductRecord{
		Slug:           p.ID,
		CollectionSlug: p.Collection,
		Type:           string(p.Type),
		Category:       string(p.Type.Category()),
		NameAR:         p.Name.AR,
		NameEN:         p.Name.EN,
		Price:          p.Price,
		Currency:       currency,
		Size:           p.Size,
		Concerns:       toStringArray(p.Concerns),
		HairTypes:      toStringArray(p.HairTypes),
		Ingredients:    pq.StringArray(cloneStrings(p.Ingredients)),
		DisplayOrder:   order,
	}
	if p.Description != nil {
		rec.DescriptionAR = p.Description.AR
		rec.DescriptionEN = p.Description.EN
	}
	if p.Benefits != nil {
		rec.BenefitsAR = pq.StringArray(cloneStrings(p.Benefits.AR))
		rec.BenefitsEN = pq.StringArray(cloneStrings(p.Benefits.EN))
	}
	return rec
}

// NewBundleRecord flattens b into its published row.
func NewBundleRecord(b Bundle, currency string, order int) BundleRecord {
	rec := BundleRecord{
		Slug:           b.ID,
		CollectionSlug: b.Collection,
		NameAR:         b.Name.AR,
		NameEN:         b.Name.EN,
		OriginalPrice:  b.OriginalPrice,
		SalePrice:      b.SalePrice,
		Discount:       b.Discount,
		Savings:        b.Savings,
		Currency:       currency,
		DisplayOrder:   order,
	}
	if b.Description != nil {
		rec.DescriptionAR = b.Description.AR
		rec.DescriptionEN = b.Description.EN
	}
	return rec
}

func toStringArray[T ~string](in []T) pq.StringArray {
	if in == nil {
		return nil
	}
	out := make(pq.StringArray, len(in))
	for i, v := range in {
		out[i] = string(v)
	}
	return out
}
