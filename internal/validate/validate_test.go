package validate

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/innatural/internal/models"
)

func validCatalog() *models.Catalog {
	return &models.Catalog{
		Metadata: models.Metadata{LastUpdated: "2025-12-21", Source: "https://innaturalstores.com/", TotalProducts: 1},
		Collections: []models.Collection{{
			ID:   "cocoshea",
			Name: models.Text{AR: "كوكوشيا", EN: "CocoShea"},
		}},
		Products: []models.Product{{
			ID:          "cocoshea-shampoo",
			Collection:  "cocoshea",
			Name:        models.Text{AR: "شامبو كوكوشيا", EN: "CocoShea Shampoo"},
			Type:        models.TypeShampoo,
			Price:       180,
			Size:        "250ml",
			Concerns:    []models.Concern{models.ConcernSplitEnds},
			Description: &models.Text{AR: "وصف", EN: "Description"},
			Benefits:    &models.TextList{AR: []string{"فائدة"}, EN: []string{"Benefit"}},
		}},
		Bundles: []models.Bundle{{
			ID:            "cocoshea-hair-routine-bundle",
			Name:          models.Text{AR: "روتين", EN: "Routine"},
			Collection:    "cocoshea",
			OriginalPrice: 1105,
			SalePrice:     770,
			Discount:      30,
			Savings:       335,
		}},
	}
}

func checks(issues []Issue) []string {
	var out []string
	for _, i := range issues {
		out = append(out, i.Check)
	}
	return out
}

func TestValidCatalogPasses(t *testing.T) {
	r := Catalog(validCatalog())
	assert.True(t, r.OK(), "%v", r.Errors)
	assert.Empty(t, r.Warnings)
}

func TestDuplicateProductAndUnknownCollection(t *testing.T) {
	doc := validCatalog()
	dup := doc.Products[0]
	dup.Collection = "missing"
	doc.Products = append(doc.Products, dup)
	doc.Metadata.TotalProducts = 2

	r := Catalog(doc)
	require.False(t, r.OK())
	assert.ElementsMatch(t, []string{CheckUniqueID, CheckCollectionRef}, checks(r.Errors))
}

func TestBenefitLanguagesMustMatchDescription(t *testing.T) {
	doc := validCatalog()
	doc.Products[0].Benefits = &models.TextList{EN: []string{"Benefit"}}

	r := Catalog(doc)
	assert.Contains(t, checks(r.Errors), CheckBenefitLangs)
}

func TestBodyProductWithHairBenefitsFails(t *testing.T) {
	doc := validCatalog()
	doc.Products[0].Type = models.TypeBodyCream
	doc.Products[0].Benefits = &models.TextList{AR: []string{"للشعر"}, EN: []string{"Lasting moisture for hair"}}

	r := Catalog(doc)
	assert.Contains(t, checks(r.Errors), CheckCategory)
}

func TestInvalidTypePriceAndTags(t *testing.T) {
	doc := validCatalog()
	doc.Products[0].Type = "perfume"
	doc.Products[0].Price = 0
	doc.Products[0].Concerns = append(doc.Products[0].Concerns, "sunburn")

	r := Catalog(doc)
	assert.ElementsMatch(t, []string{CheckProductType, CheckPrice}, checks(r.Errors))
	assert.Equal(t, []string{CheckVocabulary}, checks(r.Warnings))
}

func TestBundleArithmetic(t *testing.T) {
	doc := validCatalog()
	doc.Bundles[0].Savings = 300
	doc.Bundles[0].Discount = 29

	r := Catalog(doc)
	assert.Equal(t, []string{CheckBundleSavings}, checks(r.Errors))
	assert.Equal(t, []string{CheckBundleDiscount}, checks(r.Warnings))
}

func TestBundleSalePriceMustBeBelowOriginal(t *testing.T) {
	doc := validCatalog()
	doc.Bundles[0].SalePrice = doc.Bundles[0].OriginalPrice

	r := Catalog(doc)
	assert.Equal(t, []string{CheckBundlePrice}, checks(r.Errors))
}

func TestTotalProductsMismatchWarns(t *testing.T) {
	doc := validCatalog()
	doc.Metadata.TotalProducts = 43

	r := Catalog(doc)
	assert.True(t, r.OK())
	assert.Equal(t, []string{CheckMetadata}, checks(r.Warnings))
}

func TestDerivedBundleFieldsAlwaysValidate(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("recomputed savings and discount pass the bundle checks", prop.ForAll(
		func(original, seed int) bool {
			b := models.Bundle{
				ID:            "b",
				Name:          models.Text{AR: "ب", EN: "b"},
				Collection:    "cocoshea",
				OriginalPrice: original,
				SalePrice:     1 + seed%(original-1),
			}
			b.Savings = b.ExpectedSavings()
			b.Discount = b.ExpectedDiscount()

			doc := validCatalog()
			doc.Bundles = []models.Bundle{b}
			r := Catalog(doc)
			return r.OK() && len(r.Warnings) == 0 &&
				b.Savings == b.OriginalPrice-b.SalePrice &&
				b.Discount >= 0 && b.Discount <= 100
		},
		gen.IntRange(2, 100000),
		gen.IntRange(0, 1000000),
	))

	properties.TestingRun(t)
}
