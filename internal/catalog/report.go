package catalog

import (
	"fmt"
	"strings"
)

// SkippedProduct is a product a stage left untouched because of a local error.
type SkippedProduct struct {
	ProductID string `json:"product_id"`
	Reason    string `json:"reason"`
}

// Report summarises one pipeline run for the operator.
type Report struct {
	Stage                 Stage            `json:"stage"`
	Version               string           `json:"version"`
	Total                 int              `json:"total"`
	Matched               int              `json:"matched"`
	Generated             int              `json:"generated"`
	Corrected             int              `json:"corrected"`
	DescriptionsRewritten int              `json:"descriptions_rewritten"`
	Skipped               []SkippedProduct `json:"skipped,omitempty"`

	// Flagged lists products worth a manual look even though they were processed.
	Flagged []string `json:"flagged,omitempty"`
}

// Skip records a product that could not be processed.
func (r *Report) Skip(productID string, err error) {
	r.Skipped = append(r.Skipped, SkippedProduct{ProductID: productID, Reason: err.Error()})
}

// Summary renders the report as plain multi-line text.
func (r *Report) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "stage: %s (version %s)\n", r.Stage, r.Version)
	fmt.Fprintf(&b, "total products: %d\n", r.Total)
	switch r.Stage {
	case StageEnrich:
		fmt.Fprintf(&b, "from backup: %d\n", r.Matched)
		fmt.Fprintf(&b, "generated: %d\n", r.Generated)
	case StageImprove:
		fmt.Fprintf(&b, "benefits corrected: %d\n", r.Corrected)
		fmt.Fprintf(&b, "descriptions rewritten: %d\n", r.DescriptionsRewritten)
	}
	if len(r.Skipped) > 0 {
		fmt.Fprintf(&b, "skipped: %d\n", len(r.Skipped))
		for _, s := range r.Skipped {
			fmt.Fprintf(&b, "  - %s: %s\n", s.ProductID, s.Reason)
		}
	}
	if len(r.Flagged) > 0 {
		fmt.Fprintf(&b, "flagged for review: %s\n", strings.Join(r.Flagged, ", "))
	}
	return b.String()
}
