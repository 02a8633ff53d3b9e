package synth

import (
	"fmt"

	"github.com/example/innatural/internal/models"
)

var ingredientClauses = map[string]models.Text{
	"mixoil-rosemary-almond": {
		AR: "غني بزيت اللوز الحلو وخلاصة الروزماري",
		EN: "enriched with sweet almond oil and rosemary extract",
	},
	"mixoil-castor-coconut-jojoba": {
		AR: "غني بزيت جوز الهند والجوجوبا والمواد النباتية المغذية",
		EN: "enriched with coconut oil, jojoba, and nourishing botanicals",
	},
	"cocoshea": {
		AR: "غني بزيت جوز الهند وزبدة الشيا",
		EN: "enriched with coconut oil and shea butter",
	},
}

// IngredientClause returns the "key ingredients" clause for a collection.
func IngredientClause(collectionID string) models.Text {
	if clause, ok := ingredientClauses[collectionID]; ok {
		return clause
	}
	return models.Text{
		AR: "غني بالمكونات الطبيعية",
		EN: "enriched with natural ingredients",
	}
}

const bodyButterEN = `Luxurious %s that deeply hydrates and nourishes your skin 🧈✨

This rich, creamy body butter is %s that penetrate deep to provide intensive moisture. Perfect for dry skin, it leaves your skin feeling soft, supple, and beautifully smooth all day long.

The thick, indulgent texture melts into your skin, creating a protective barrier that locks in moisture and keeps your skin hydrated for hours. Ideal for use after showering or bathing when your skin needs extra nourishment.

Your skin deserves the best care 💛

WhatsApp/Call: +20155 5590333`

const bodyButterAR = `زبدة الجسم الفاخرة %s التي ترطب وتغذي بشرتك بعمق 🧈✨

زبدة الجسم الغنية والكريمية هذه %s التي تخترق بعمق لتوفير ترطيب مكثف. مثالية للبشرة الجافة، تترك بشرتك ناعمة ومرنة ومنعشة بشكل جميل طوال اليوم.

القوام السميك واللذيذ يذوب في بشرتك، مما يخلق حاجزاً واقياً يحبس الرطوبة ويحافظ على ترطيب بشرتك لساعات. مثالي للاستخدام بعد الاستحمام عندما تحتاج بشرتك إلى تغذية إضافية.

بشرتك تستحق أفضل عناية 💛

WhatsApp / Call:
+20155 5590333`

const bodyCreamEN = `Silky smooth %s for daily hydration ✨

This lightweight body cream is %s that absorb quickly without leaving any greasy residue. Perfect for everyday use, it provides lasting moisture and leaves your skin feeling soft, smooth, and refreshed.

The fast-absorbing formula is ideal for busy mornings when you need quick, effective hydration. Your skin will feel nourished and protected throughout the day.

Beautiful skin starts here 💛

WhatsApp/Call: +20155 5590333`

const bodyCreamAR = `كريم الجسم الناعم %s للترطيب اليومي ✨

كريم الجسم الخفيف هذا %s الذي يمتص بسرعة دون ترك أي بقايا دهنية. مثالي للاستخدام اليومي، يوفر ترطيباً دائماً ويترك بشرتك ناعمة ومنتعشة.

التركيبة سريعة الامتصاص مثالية للصباح المزدحم عندما تحتاجين إلى ترطيب سريع وفعال. ستشعرين ببشرتك مغذية ومحمية طوال اليوم.

البشرة الجميلة تبدأ من هنا 💛

WhatsApp / Call:
+20155 5590333`

const bodyScrubEN = `Exfoliating %s for radiant, smooth skin ✨

This gentle yet effective body scrub is %s that polish away dead skin cells and reveal the soft, glowing skin beneath. Use 2-3 times per week for best results.

The fine exfoliating particles work to smooth rough patches, improve skin texture, and prepare your skin to better absorb your moisturizer. Your skin will feel incredibly soft and look noticeably brighter.

Reveal your skin's natural glow 💛

WhatsApp/Call: +20155 5590333`

const bodyScrubAR = `مقشر الجسم %s لبشرة ناعمة ومشرقة ✨

مقشر الجسم اللطيف والفعال هذا %s الذي يزيل خلايا الجلد الميتة ويكشف عن البشرة الناعمة والمتوهجة تحتها. استخدميه 2-3 مرات في الأسبوع لأفضل النتائج.

جزيئات التقشير الدقيقة تعمل على تنعيم المناطق الخشنة، وتحسين ملمس البشرة، وتحضير بشرتك لامتصاص المرطب بشكل أفضل. ستشعرين ببشرتك ناعمة بشكل لا يصدق وتبدو أكثر إشراقاً.

اكشفي عن توهج بشرتك الطبيعي 💛

WhatsApp / Call:
+20155 5590333`

const handCreamEN = `Nourishing %s for soft, protected hands 🙌

This intensive hand cream is %s that provide deep nourishment and protection for your hardworking hands. The rich formula absorbs quickly and creates a protective barrier against dryness.

Perfect for frequent use throughout the day, especially after washing hands. Keeps your hands soft, smooth, and protected even with frequent washing.

Your hands deserve special care 💛

WhatsApp/Call: +20155 5590333`

const handCreamAR = `كريم اليد المغذي %s لأيادي ناعمة ومحمية 🙌

كريم اليد المكثف هذا %s الذي يوفر تغذية عميقة وحماية ليديك العاملتين. التركيبة الغنية تمتص بسرعة وتخلق حاجزاً واقياً ضد الجفاف.

مثالي للاستخدام المتكرر طوال اليوم، خاصة بعد غسل اليدين. يحافظ على يديك ناعمة ومنعشة ومحمية حتى مع الغسيل المتكرر.

يداك تستحقان عناية خاصة 💛

WhatsApp / Call:
+20155 5590333`

var bodyTemplates = map[models.ProductType]models.Text{
	models.TypeBodyButter: {AR: bodyButterAR, EN: bodyButterEN},
	models.TypeBodyCream:  {AR: bodyCreamAR, EN: bodyCreamEN},
	models.TypeBodyScrub:  {AR: bodyScrubAR, EN: bodyScrubEN},
	models.TypeHandCream:  {AR: handCreamAR, EN: handCreamEN},
}

// BodyDescription returns the long marketing copy for a body product. ok is
// false for types without long copy.
func BodyDescription(p models.Product) (desc models.Text, ok bool, err error) {
	tmpl, ok := bodyTemplates[p.Type]
	if !ok {
		return models.Text{}, false, nil
	}
	if err := requireName(p); err != nil {
		return models.Text{}, false, err
	}

	clause := IngredientClause(p.Collection)
	return models.Text{
		AR: fmt.Sprintf(tmpl.AR, p.Name.AR, clause.AR),
		EN: fmt.Sprintf(tmpl.EN, p.Name.EN, clause.EN),
	}, true, nil
}
