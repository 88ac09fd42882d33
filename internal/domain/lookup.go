package domain

// Lookup is an immutable reference row: a taxonomy entry such as a risk
// factor, type, management method or status. Probability and impact rows
// additionally carry a numeric weight in Value.
// Lookup tables are seeded once at startup and read-only at runtime.
type Lookup struct {
	ID    int64
	Name  string
	Value *int
}

// Catalog is a full snapshot of the lookup tables, loaded once per
// operation so that a whole page of risks resolves against the same data.
type Catalog struct {
	Factors       []Lookup
	Types         []Lookup
	Methods       []Lookup
	Statuses      []Lookup
	Probabilities []Lookup
	Impacts       []Lookup
}

// DefaultStatusID is the seeded "Open" status assigned to new risks.
const DefaultStatusID int64 = 1

// Find returns the lookup with the given id from set, or false.
func Find(set []Lookup, id int64) (Lookup, bool) {
	for _, l := range set {
		if l.ID == id {
			return l, true
		}
	}
	return Lookup{}, false
}
