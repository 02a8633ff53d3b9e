package synth

import (
	"strings"
	"unicode/utf8"

	"github.com/example/innatural/internal/models"
)

// PlaceholderPhrase marks the short body-cream copy produced before the long
// body templates existed. The long body-cream copy says "provides lasting
// moisture" too, so the phrase runs up to "for your skin".
const PlaceholderPhrase = "provides lasting moisture and softness for your skin"

// ShortDescriptionLimit is the English length, in characters, under which a
// body product description is considered too thin to keep.
const ShortDescriptionLimit = 200

// MentionsHair reports whether any English phrase mentions hair,
// case-insensitively.
//
// This is a substring test and will also fire on words such as "chair" or
// "hairline"; no skin-care phrase in the templates contains it.
func MentionsHair(list models.TextList) bool {
	for _, phrase := range list.EN {
		if strings.Contains(strings.ToLower(phrase), "hair") {
			return true
		}
	}
	return false
}

// CategoryMismatch reports whether p is a body product carrying hair-care
// benefit copy.
func CategoryMismatch(p models.Product) bool {
	if p.Type.Category() != models.CategoryBody || p.Benefits == nil {
		return false
	}
	return MentionsHair(*p.Benefits)
}

// ThinDescription reports whether p's English description is missing, short,
// or the known placeholder.
func ThinDescription(p models.Product) bool {
	if p.Description == nil {
		return true
	}
	en := p.Description.EN
	return utf8.RuneCountInString(en) < ShortDescriptionLimit || strings.Contains(en, PlaceholderPhrase)
}
