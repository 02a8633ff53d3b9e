// Package identity maps current catalog product IDs to the legacy backup
// catalog IDs whose marketing copy describes the same product.
//
// The table is curated by hand: renamed and re-scoped products cannot be
// matched by string similarity (mixoil-rosemary-shampoo inherits the copy of
// the broader mixoil-rosemary entry, while most line extensions have no
// legacy counterpart at all).
package identity

// Kind distinguishes the outcomes of a lookup.
type Kind int

const (
	// KindUnknown means the product ID is not in the table.
	KindUnknown Kind = iota
	// KindNoEquivalent means the table explicitly records that no backup
	// product corresponds to the current one.
	KindNoEquivalent
	// KindMatched means a backup product ID was found.
	KindMatched
)

func (k Kind) String() string {
	switch k {
	case KindMatched:
		return "matched"
	case KindNoEquivalent:
		return "no-equivalent"
	}
	return "unknown"
}

// Resolution is the result of a lookup: either Matched(backupID) or one of the
// two unmapped variants.
type Resolution struct {
	kind     Kind
	backupID string
}

// Matched builds a resolution pointing at backupID.
func Matched(backupID string) Resolution {
	return Resolution{kind: KindMatched, backupID: backupID}
}

// NoEquivalent is the resolution for explicitly unmapped products.
func NoEquivalent() Resolution {
	return Resolution{kind: KindNoEquivalent}
}

// Unknown is the resolution for IDs absent from the table.
func Unknown() Resolution {
	return Resolution{kind: KindUnknown}
}

// Kind returns the resolution variant.
func (r Resolution) Kind() Kind { return r.kind }

// BackupID returns the matched backup ID and true, or "" and false when unmapped.
func (r Resolution) BackupID() (string, bool) {
	if r.kind != KindMatched {
		return "", false
	}
	return r.backupID, true
}

// Mapped reports whether the resolution carries a backup ID.
func (r Resolution) Mapped() bool { return r.kind == KindMatched }

// Mapper resolves current product IDs against a fixed table.
type Mapper struct {
	table map[string]Resolution
}

// Entry is one row of a mapping table. An empty Backup records an explicit
// "no equivalent".
type Entry struct {
	Current string
	Backup  string
}

// New builds a Mapper from entries. Later entries override earlier ones.
func New(entries []Entry) *Mapper {
	table := make(map[string]Resolution, len(entries))
	for _, e := range entries {
		if e.Backup == "" {
			table[e.Current] = NoEquivalent()
			continue
		}
		table[e.Current] = Matched(e.Backup)
	}
	return &Mapper{table: table}
}

// Default returns the mapper for the current storefront catalog.
func Default() *Mapper {
	return New(DefaultEntries)
}

// Resolve looks up a current product ID. Unknown IDs are not an error.
func (m *Mapper) Resolve(currentID string) Resolution {
	if r, ok := m.table[currentID]; ok {
		return r
	}
	return Unknown()
}

// Len returns the number of table rows.
func (m *Mapper) Len() int { return len(m.table) }
