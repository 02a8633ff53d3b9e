package models

// Language keys used by every bilingual field of the catalog.
const (
	LangArabic  = "ar"
	LangEnglish = "en"
)

// Text is a bilingual string. Arabic is listed first to match the key order of
// the documents the storefront scripts produce. A missing language stays
// missing on output.
type Text struct {
	AR string `json:"ar,omitempty"`
	EN string `json:"en,omitempty"`
}

// Complete reports whether both languages carry content.
func (t Text) Complete() bool {
	return t.AR != "" && t.EN != ""
}

// Empty reports whether neither language carries content.
func (t Text) Empty() bool {
	return t.AR == "" && t.EN == ""
}

// Get returns the value for lang ("ar" or "en").
func (t Text) Get(lang string) string {
	switch lang {
	case LangArabic:
		return t.AR
	case LangEnglish:
		return t.EN
	}
	return ""
}

// Languages lists the language keys that carry content.
func (t Text) Languages() []string {
	var langs []string
	if t.AR != "" {
		langs = append(langs, LangArabic)
	}
	if t.EN != "" {
		langs = append(langs, LangEnglish)
	}
	return langs
}

// TextList is a bilingual ordered list of short phrases.
type TextList struct {
	AR []string `json:"ar,omitempty"`
	EN []string `json:"en,omitempty"`
}

// Get returns the phrases for lang ("ar" or "en").
func (l TextList) Get(lang string) []string {
	switch lang {
	case LangArabic:
		return l.AR
	case LangEnglish:
		return l.EN
	}
	return nil
}

// Languages lists the language keys that have at least one phrase.
func (l TextList) Languages() []string {
	var langs []string
	if len(l.AR) > 0 {
		langs = append(langs, LangArabic)
	}
	if len(l.EN) > 0 {
		langs = append(langs, LangEnglish)
	}
	return langs
}

// Clone returns a deep copy.
func (l TextList) Clone() TextList {
	return TextList{
		AR: cloneStrings(l.AR),
		EN: cloneStrings(l.EN),
	}
}
