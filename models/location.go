package models

import "fmt"

// Location is a selectable city and its fixed coordinates.
type Location struct {
	Key string  `json:"key"`
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (l *Location) ToString() string {
	return fmt.Sprintf("Location(key=%s, lat=%f, lon=%f)", l.Key, l.Lat, l.Lon)
}

// LocationTable is an immutable key -> Location mapping.
type LocationTable struct {
	byKey map[string]Location
	keys  []string
}

// NewLocationTable copies the given locations; later keys win on duplicates.
func NewLocationTable(locations []Location) *LocationTable {
	t := &LocationTable{byKey: make(map[string]Location, len(locations))}
	for _, l := range locations {
		if _, dup := t.byKey[l.Key]; !dup {
			t.keys = append(t.keys, l.Key)
		}
		t.byKey[l.Key] = l
	}
	return t
}

// Lookup resolves a location key.
func (t *LocationTable) Lookup(key string) (Location, bool) {
	l, ok := t.byKey[key]
	return l, ok
}

// Keys returns the keys in insertion order.
func (t *LocationTable) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// All returns every location in insertion order.
func (t *LocationTable) All() []Location {
	out := make([]Location, 0, len(t.keys))
	for _, k := range t.keys {
		out = append(out, t.byKey[k])
	}
	return out
}
