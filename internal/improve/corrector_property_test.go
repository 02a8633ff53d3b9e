package improve

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/example/innatural/internal/models"
	"github.com/example/innatural/internal/synth"
)

var benefitPool = []string{
	"Lasting moisture for hair", "Adds shine", "Deep hydration", "Softens skin",
	"Strengthens HAIR roots", "Non-greasy formula", "Chair-side friendly",
}

func genProduct() gopter.Gen {
	return gopter.CombineGens(
		gen.IntRange(0, len(models.ProductTypes)-1),
		gen.SliceOf(gen.IntRange(0, len(benefitPool)-1)),
		gen.IntRange(0, 400),
		gen.Bool(),
	).Map(func(v []interface{}) models.Product {
		typ := models.ProductTypes[v[0].(int)]
		var benefits *models.TextList
		if idx := v[1].([]int); len(idx) > 0 {
			list := models.TextList{}
			for _, i := range idx {
				list.EN = append(list.EN, benefitPool[i])
				list.AR = append(list.AR, "فائدة")
			}
			benefits = &list
		}
		desc := &models.Text{AR: "وصف", EN: string(make([]byte, v[2].(int)))}
		if v[3].(bool) {
			desc = nil
		}
		return models.Product{
			ID:          "p-" + string(typ),
			Collection:  "cocoshea",
			Name:        models.Text{AR: "منتج", EN: "Product"},
			Type:        typ,
			Price:       100,
			Description: desc,
			Benefits:    benefits,
		}
	})
}

func TestCorrectorProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300
	properties := gopter.NewProperties(parameters)

	properties.Property("correcting twice equals correcting once", prop.ForAll(
		func(p models.Product) bool {
			once, _, err := CorrectProduct(p)
			if err != nil {
				return false
			}
			twice, change, err := CorrectProduct(once)
			return err == nil && !change.Any() && twice.Benefits == once.Benefits
		},
		genProduct(),
	))

	properties.Property("corrected body products carry no hair benefits", prop.ForAll(
		func(p models.Product) bool {
			out, _, err := CorrectProduct(p)
			if err != nil {
				return false
			}
			if out.Type.Category() != models.CategoryBody || out.Benefits == nil {
				return true
			}
			return !synth.MentionsHair(*out.Benefits)
		},
		genProduct(),
	))

	properties.TestingRun(t)
}
