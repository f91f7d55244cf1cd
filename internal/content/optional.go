package content

// Optional holds an entry that may be absent. The zero value is absent.
type Optional struct {
	entry Entry
	ok    bool
}

// Some wraps a found entry.
func Some(entry Entry) Optional {
	return Optional{entry: entry, ok: true}
}

// None is the absent value.
func None() Optional {
	return Optional{}
}

// Get returns the entry and whether it is present.
func (o Optional) Get() (Entry, bool) {
	return o.entry, o.ok
}

// Present reports whether an entry is held.
func (o Optional) Present() bool {
	return o.ok
}
