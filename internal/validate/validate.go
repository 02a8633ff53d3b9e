// Package validate checks a catalog document against the invariants the
// storefront and chatbot rely on.
package validate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/example/innatural/internal/catalog"
	"github.com/example/innatural/internal/models"
	"github.com/example/innatural/internal/synth"
)

// Severity of a finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is a single finding.
type Issue struct {
	Check    string   `json:"check"`
	Severity Severity `json:"severity"`
	Subject  string   `json:"subject"`
	Message  string   `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("[%s] %s %s: %s", i.Check, i.Severity, i.Subject, i.Message)
}

// Result collects the findings of a validation run.
type Result struct {
	Errors   []Issue `json:"errors"`
	Warnings []Issue `json:"warnings"`
}

// OK reports whether no errors were found.
func (r *Result) OK() bool { return len(r.Errors) == 0 }

func (r *Result) add(check string, sev Severity, subject, format string, args ...any) {
	issue := Issue{Check: check, Severity: sev, Subject: subject, Message: fmt.Sprintf(format, args...)}
	if sev == SeverityError {
		r.Errors = append(r.Errors, issue)
		return
	}
	r.Warnings = append(r.Warnings, issue)
}

// Check names.
const (
	CheckUniqueID       = "UNIQUE_ID"
	CheckCollectionRef  = "COLLECTION_REF"
	CheckBilingualName  = "BILINGUAL_NAME"
	CheckBilingualCopy  = "BILINGUAL_COPY"
	CheckBenefitLangs   = "BENEFIT_LANGUAGES"
	CheckCategory       = "CATEGORY_VOCABULARY"
	CheckProductType    = "PRODUCT_TYPE"
	CheckPrice          = "PRICE"
	CheckVocabulary     = "TAG_VOCABULARY"
	CheckBundlePrice    = "BUNDLE_PRICE"
	CheckBundleSavings  = "BUNDLE_SAVINGS"
	CheckBundleDiscount = "BUNDLE_DISCOUNT"
	CheckMetadata       = "METADATA"
	CheckVersion        = "VERSION"
	CheckSchema         = "SCHEMA"
)

// Catalog runs every check against doc.
func Catalog(doc *models.Catalog) *Result {
	r := &Result{}
	collections := checkCollections(r, doc)
	checkProducts(r, doc, collections)
	checkBundles(r, doc, collections)
	checkMetadata(r, doc)
	checkVersion(r, doc.Metadata)
	return r
}

func checkCollections(r *Result, doc *models.Catalog) map[string]bool {
	ids := make(map[string]bool, len(doc.Collections))
	for _, c := range doc.Collections {
		if ids[c.ID] {
			r.add(CheckUniqueID, SeverityError, c.ID, "duplicate collection id")
		}
		ids[c.ID] = true
		if !c.Name.Complete() {
			r.add(CheckBilingualName, SeverityError, c.ID, "collection name must have ar and en")
		}
	}
	return ids
}

func checkProducts(r *Result, doc *models.Catalog, collections map[string]bool) {
	seen := make(map[string]bool, len(doc.Products))
	for i, p := range doc.Products {
		subject := p.ID
		if subject == "" {
			subject = fmt.Sprintf("products[%d]", i)
			r.add(CheckUniqueID, SeverityError, subject, "missing product id")
		} else if seen[p.ID] {
			r.add(CheckUniqueID, SeverityError, subject, "duplicate product id")
		}
		seen[p.ID] = true

		if !collections[p.Collection] {
			r.add(CheckCollectionRef, SeverityError, subject, "unknown collection %q", p.Collection)
		}
		if !p.Name.Complete() {
			r.add(CheckBilingualName, SeverityError, subject, "product name must have ar and en")
		}
		if !p.Type.Valid() {
			r.add(CheckProductType, SeverityError, subject, "unknown product type %q", p.Type)
		}
		if p.Price <= 0 {
			r.add(CheckPrice, SeverityError, subject, "price must be positive, got %d", p.Price)
		}
		for _, c := range p.Concerns {
			if !c.Valid() {
				r.add(CheckVocabulary, SeverityWarning, subject, "unknown concern %q", c)
			}
		}
		for _, h := range p.HairTypes {
			if !h.Valid() {
				r.add(CheckVocabulary, SeverityWarning, subject, "unknown hair type %q", h)
			}
		}

		checkCopy(r, subject, p)
	}
}

func checkCopy(r *Result, subject string, p models.Product) {
	if p.Description == nil {
		r.add(CheckBilingualCopy, SeverityWarning, subject, "missing description")
	} else if !p.Description.Complete() {
		r.add(CheckBilingualCopy, SeverityError, subject, "description must have ar and en")
	}

	if p.Benefits != nil {
		var descLangs []string
		if p.Description != nil {
			descLangs = p.Description.Languages()
		}
		benefitLangs := p.Benefits.Languages()
		if !sameSet(descLangs, benefitLangs) {
			r.add(CheckBenefitLangs, SeverityError, subject,
				"benefit languages [%s] differ from description languages [%s]",
				strings.Join(benefitLangs, ","), strings.Join(descLangs, ","))
		}
		if len(p.Benefits.AR) != len(p.Benefits.EN) {
			r.add(CheckBenefitLangs, SeverityWarning, subject,
				"%d arabic benefits vs %d english", len(p.Benefits.AR), len(p.Benefits.EN))
		}
	}

	if synth.CategoryMismatch(p) {
		r.add(CheckCategory, SeverityError, subject, "body product %s has hair-care benefits", p.Type)
	}
}

func checkBundles(r *Result, doc *models.Catalog, collections map[string]bool) {
	seen := make(map[string]bool, len(doc.Bundles))
	for _, b := range doc.Bundles {
		if seen[b.ID] {
			r.add(CheckUniqueID, SeverityError, b.ID, "duplicate bundle id")
		}
		seen[b.ID] = true

		if !collections[b.Collection] {
			r.add(CheckCollectionRef, SeverityError, b.ID, "unknown collection %q", b.Collection)
		}
		if !b.Name.Complete() {
			r.add(CheckBilingualName, SeverityError, b.ID, "bundle name must have ar and en")
		}
		if b.SalePrice >= b.OriginalPrice || b.SalePrice <= 0 {
			r.add(CheckBundlePrice, SeverityError, b.ID,
				"sale price %d must be positive and below original price %d", b.SalePrice, b.OriginalPrice)
			continue
		}
		if want := b.ExpectedSavings(); b.Savings != want {
			r.add(CheckBundleSavings, SeverityError, b.ID, "savings %d, expected %d", b.Savings, want)
		}
		// Discounts are marketing figures and were historically truncated,
		// so a mismatch is reported but does not fail the run.
		if want := b.ExpectedDiscount(); b.Discount != want {
			r.add(CheckBundleDiscount, SeverityWarning, b.ID, "discount %d%%, expected %d%%", b.Discount, want)
		}
	}
}

func checkMetadata(r *Result, doc *models.Catalog) {
	if doc.Metadata.LastUpdated == "" || doc.Metadata.Source == "" {
		r.add(CheckMetadata, SeverityWarning, "metadata", "lastUpdated and source should be set")
	}
	if doc.Metadata.TotalProducts != 0 && doc.Metadata.TotalProducts != len(doc.Products) {
		r.add(CheckMetadata, SeverityWarning, "metadata",
			"totalProducts is %d but the catalog lists %d", doc.Metadata.TotalProducts, len(doc.Products))
	}
}

// stageFloors are the versions a catalog must have reached once a stage flag
// is set.
var stageFloors = []struct {
	name    string
	done    func(models.Metadata) bool
	version string
}{
	{"enriched", func(m models.Metadata) bool { return m.Enriched }, catalog.EnrichVersion},
	{"improved", func(m models.Metadata) bool { return m.Improved }, catalog.ImproveVersion},
}

func checkVersion(r *Result, meta models.Metadata) {
	if meta.Version == "" {
		return
	}
	v, err := semver.NewVersion(meta.Version)
	if err != nil {
		r.add(CheckVersion, SeverityWarning, "metadata", "version %q is not semantic: %v", meta.Version, err)
		return
	}
	for _, floor := range stageFloors {
		if !floor.done(meta) {
			continue
		}
		if v.LessThan(semver.MustParse(floor.version)) {
			r.add(CheckVersion, SeverityWarning, "metadata",
				"catalog is %s but version %s is below %s", floor.name, meta.Version, floor.version)
		}
	}
}

func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	a = append([]string(nil), a...)
	b = append([]string(nil), b...)
	sort.Strings(a)
	sort.Strings(b)
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
