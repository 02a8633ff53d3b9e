package synth

import (
	"github.com/example/innatural/internal/models"
)

type descriptionTemplate func(name models.Text) models.Text

// Description returns the short type-keyed description for p.
func Description(p models.Product) (models.Text, error) {
	if err := requireName(p); err != nil {
		return models.Text{}, err
	}
	return templateFor(p.Type)(p.Name), nil
}

// templateFor covers every ProductType; anything else gets the generic
// "Premium" sentence.
func templateFor(t models.ProductType) descriptionTemplate {
	switch t {
	case models.TypeShampoo:
		return func(n models.Text) models.Text {
			return models.Text{
				AR: "شامبو " + n.AR + " لطيف وفعال مصمم خصيصاً لتلبية احتياجات العناية بشعرك. ينظف بعمق مع تغذية شعرك.",
				EN: "A gentle and effective " + n.EN + " specially formulated for your hair care needs. This premium shampoo cleanses thoroughly while nourishing your hair.",
			}
		}
	case models.TypeConditioner:
		return func(n models.Text) models.Text {
			return models.Text{
				AR: "اختبري قوة التغذية مع " + n.AR + ". هذا البلسم الغني يفك التشابكات، ينعم، ويعيد الجمال الطبيعي لشعرك.",
				EN: "Experience the nourishing power of " + n.EN + ". This rich conditioner detangles, softens, and restores your hair's natural beauty.",
			}
		}
	case models.TypeLeaveIn:
		return func(n models.Text) models.Text {
			return models.Text{
				AR: n.AR + " يوفر حماية يومية ورطوبة مستمرة طوال اليوم. مثالي للحفاظ على شعر صحي وجميل.",
				EN: n.EN + " provides daily protection and continuous moisture throughout the day. Perfect for maintaining healthy, beautiful hair.",
			}
		}
	case models.TypeMask:
		return func(n models.Text) models.Text {
			return models.Text{
				AR: "علاج مكثف مع " + n.AR + " يغذي ويصلح شعرك بعمق. اختبري نتائج مرئية مع الاستخدام المنتظم.",
				EN: "An intensive treatment with " + n.EN + " that deeply nourishes and repairs your hair. Experience visible results with regular use.",
			}
		}
	case models.TypeSerum:
		return func(n models.Text) models.Text {
			return models.Text{
				AR: n.AR + " علاج مركز يستهدف مشاكل الشعر المحددة بمكونات نشطة قوية.",
				EN: n.EN + " is a concentrated treatment that targets specific hair concerns with powerful active ingredients.",
			}
		}
	case models.TypeOil:
		return func(n models.Text) models.Text {
			return models.Text{
				AR: n.AR + " نقي ومغذي يخترق بعمق ليقوي، يحمي، ويجمل شعرك بشكل طبيعي.",
				EN: "Pure and nourishing " + n.EN + " that penetrates deep to strengthen, protect, and beautify your hair naturally.",
			}
		}
	case models.TypeMist:
		return func(n models.Text) models.Text {
			return models.Text{
				AR: n.AR + " بخاخ منعش يضيف عطراً، رطوبة، وحماية طوال اليوم.",
				EN: n.EN + " is a refreshing spray that adds fragrance, moisture, and protection throughout the day.",
			}
		}
	case models.TypeBodyButter:
		return func(n models.Text) models.Text {
			return models.Text{
				AR: n.AR + " فاخر يرطب ويغذي بشرتك بعمق، يتركها ناعمة ومرنة.",
				EN: "Luxurious " + n.EN + " that deeply hydrates and nourishes your skin, leaving it soft and supple.",
			}
		}
	case models.TypeBodyCream:
		return func(n models.Text) models.Text {
			return models.Text{
				AR: n.AR + " يوفر رطوبة ونعومة دائمة لبشرتك بتركيبة خفيفة سريعة الامتصاص.",
				EN: n.EN + " " + PlaceholderPhrase + " with a lightweight, fast-absorbing formula.",
			}
		}
	case models.TypeBodyScrub:
		return func(n models.Text) models.Text {
			return models.Text{
				AR: n.AR + " مقشر يزيل خلايا الجلد الميتة ويكشف عن بشرة أكثر نعومة وإشراقاً.",
				EN: "Exfoliating " + n.EN + " that removes dead skin cells and reveals smoother, brighter skin.",
			}
		}
	case models.TypeHandCream:
		return func(n models.Text) models.Text {
			return models.Text{
				AR: n.AR + " يحمي ويغذي يديك بعناية مكثفة تدوم طوال اليوم.",
				EN: n.EN + " protects and nourishes your hands with intensive care that lasts all day.",
			}
		}
	default:
		// treatment and anything added to the catalog before it gets its own copy
		return genericTemplate
	}
}

func genericTemplate(n models.Text) models.Text {
	return models.Text{
		AR: n.AR + " المميز لاحتياجات العناية بشعرك وجمالك.",
		EN: "Premium " + n.EN + " for your hair and beauty care needs.",
	}
}
