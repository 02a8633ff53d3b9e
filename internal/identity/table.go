package identity

// DefaultEntries maps the v3 storefront product IDs to the legacy catalog.
var DefaultEntries = []Entry{
	// MixOil Rosemary + Almond
	{Current: "mixoil-rosemary-shampoo", Backup: "mixoil-rosemary"},
	{Current: "mixoil-rosemary-conditioner"},
	{Current: "mixoil-rosemary-leave-in"},
	{Current: "mixoil-rosemary-mask"},
	{Current: "mixoil-rosemary-serum"},
	{Current: "mixoil-rosemary-oil", Backup: "mixoil-rosemary-almond"},
	{Current: "mixoil-rosemary-mist"},

	// MixOil Castor + Coconut + Jojoba
	{Current: "mixoil-castor-shampoo", Backup: "mixoil-castor"},
	{Current: "mixoil-castor-conditioner"},
	{Current: "mixoil-castor-leave-in"},
	{Current: "mixoil-castor-mask"},
	{Current: "mixoil-castor-serum"},
	{Current: "mixoil-castor-oil", Backup: "mixoil-triple-blend"},
	{Current: "mixoil-coconut-mist", Backup: "mixoil-coconut"},

	// MixOil body care
	{Current: "mixoil-almond-body-butter"},
	{Current: "mixoil-almond-body-cream"},
	{Current: "mixoil-almond-body-scrub"},
	{Current: "mixoil-coconut-body-cream"},
	{Current: "mixoil-coconut-body-scrub"},
	{Current: "mixoil-coconut-body-butter"},

	// CocoShea
	{Current: "cocoshea-shampoo"},
	{Current: "cocoshea-conditioner"},
	{Current: "cocoshea-leave-in"},
	{Current: "cocoshea-mask"},
	{Current: "cocoshea-serum"},
	{Current: "cocoshea-mist"},
	{Current: "cocoshea-body-cream"},
	{Current: "cocoshea-body-scrub"},
	{Current: "cocoshea-hand-cream"},

	// Curly hair
	{Current: "curly-shampoo", Backup: "curly-shampoo"},
	{Current: "curly-conditioner", Backup: "curly-conditioner"},
	{Current: "curly-leave-in", Backup: "curly-leave-in"},
	{Current: "curly-mask", Backup: "curly-hair-mask"},

	// Africa
	{Current: "africa-shampoo"},
	{Current: "africa-conditioner"},
	{Current: "africa-treatment"},
	{Current: "africa-mask", Backup: "africa-shea-butter"},
	{Current: "africa-serum"},
}
