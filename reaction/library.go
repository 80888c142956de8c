package reaction

// Library is an ordered container of rates: the unit of exchange between
// rate sources and network assembly. A Library never deduplicates; rates
// keep the order in which they were supplied, and unions append.
type Library struct {
	rates []Rate
}

// NewLibrary builds a Library from the given rates, preserving order.
// A nil entry returns ErrNilRate with no partial library.
// Complexity: O(len(rates)).
func NewLibrary(rates ...Rate) (*Library, error) {
	for _, r := range rates {
		if r == nil {
			return nil, ErrNilRate
		}
	}

	return &Library{rates: append([]Rate(nil), rates...)}, nil
}

// Rates returns a copy of the rate sequence in library order.
func (l *Library) Rates() []Rate {
	return append([]Rate(nil), l.rates...)
}

// Len returns the number of rates held.
func (l *Library) Len() int { return len(l.rates) }

// Union returns a new Library holding l's rates followed by other's.
// Duplicate reactions are kept; disambiguation is deferred to the
// network's fname-uniqueness gate. A nil other is treated as empty.
// Complexity: O(l.Len() + other.Len()).
func (l *Library) Union(other *Library) *Library {
	merged := append([]Rate(nil), l.rates...)
	if other != nil {
		merged = append(merged, other.rates...)
	}

	return &Library{rates: merged}
}
