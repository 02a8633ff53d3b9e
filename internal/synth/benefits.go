package synth

import (
	"github.com/example/innatural/internal/models"
)

var concernBenefits = map[models.Concern]models.Text{
	models.ConcernHairLoss:    {AR: "يقلل تساقط الشعر", EN: "Reduces hair loss"},
	models.ConcernWeakHair:    {AR: "يقوي الشعر", EN: "Strengthens hair"},
	models.ConcernDryness:     {AR: "ترطيب عميق", EN: "Deep hydration"},
	models.ConcernFrizz:       {AR: "يتحكم في التجعد", EN: "Controls frizz"},
	models.ConcernSplitEnds:   {AR: "يصلح الأطراف المتقصفة", EN: "Repairs split ends"},
	models.ConcernDamagedHair: {AR: "يصلح الشعر التالف", EN: "Repairs damaged hair"},
	models.ConcernThinning:    {AR: "يعزز كثافة الشعر", EN: "Boosts hair density"},
	models.ConcernDehydration: {AR: "يعيد توازن الرطوبة", EN: "Restores moisture balance"},
	models.ConcernBreakage:    {AR: "يقلل تكسر الشعر", EN: "Reduces breakage"},
}

// GenericHairBenefits is used for hair products without a recognised concern.
func GenericHairBenefits() models.TextList {
	return models.TextList{
		AR: []string{"يغذي الشعر", "يضيف لمعان", "يحسن الملمس"},
		EN: []string{"Nourishes hair", "Adds shine", "Improves texture"},
	}
}

var skinBenefits = map[models.ProductType]models.TextList{
	models.TypeBodyButter: {
		AR: []string{"ترطيب عميق للبشرة", "ينعم ويملس البشرة", "ترطيب طويل الأمد", "يغذي البشرة الجافة"},
		EN: []string{"Deep skin hydration", "Softens and smooths skin", "Long-lasting moisture", "Nourishes dry skin"},
	},
	models.TypeBodyCream: {
		AR: []string{"ترطيب دائم للبشرة", "خفيف وسريع الامتصاص", "ينعم البشرة", "ترطيب يومي"},
		EN: []string{"Lasting moisture for skin", "Lightweight and fast-absorbing", "Softens skin", "Daily hydration"},
	},
	models.TypeBodyScrub: {
		AR: []string{"يقشر خلايا الجلد الميتة", "يكشف عن بشرة أكثر نعومة", "يفتح لون البشرة", "يحضر البشرة للترطيب"},
		EN: []string{"Exfoliates dead skin cells", "Reveals smoother skin", "Brightens skin tone", "Prepares skin for hydration"},
	},
	models.TypeHandCream: {
		AR: []string{"عناية مكثفة لليدين", "يحمي ويغذي اليدين", "تركيبة غير دهنية", "حماية طوال اليوم"},
		EN: []string{"Intensive hand care", "Protects and nourishes hands", "Non-greasy formula", "All-day protection"},
	},
}

// SkinBenefits returns the four skin-care phrases for a body product type, or
// a generic skin triplet for any other type.
func SkinBenefits(t models.ProductType) models.TextList {
	if list, ok := skinBenefits[t]; ok {
		return list.Clone()
	}
	return models.TextList{
		AR: []string{"يغذي البشرة", "يضيف نعومة", "يحسن ملمس البشرة"},
		EN: []string{"Nourishes skin", "Adds softness", "Improves skin texture"},
	}
}

// ConcernBenefits concatenates the phrase of every recognised concern on p in
// the product's own concern order. Repeated tags contribute once.
func ConcernBenefits(p models.Product) models.TextList {
	var out models.TextList
	seen := make(map[models.Concern]bool, len(p.Concerns))
	for _, c := range p.Concerns {
		phrase, ok := concernBenefits[c]
		if !ok || seen[c] {
			continue
		}
		seen[c] = true
		out.AR = append(out.AR, phrase.AR)
		out.EN = append(out.EN, phrase.EN)
	}
	return out
}

// Benefits returns a category-appropriate benefit list for p. A hair product
// with no recognised concern gets GenericHairBenefits. Body products are the
// exception: they never receive hair vocabulary, so when their concern phrases
// mention hair, or no concern is recognised, the type's skin-care list is used
// instead of the generic triplet.
func Benefits(p models.Product) models.TextList {
	phrases := ConcernBenefits(p)

	if p.Type.Category() == models.CategoryBody {
		if len(phrases.EN) == 0 || MentionsHair(phrases) {
			return SkinBenefits(p.Type)
		}
		return phrases
	}

	if len(phrases.EN) == 0 {
		return GenericHairBenefits()
	}
	return phrases
}
