package label

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownLabel is returned when a raw category is not in the vocabulary.
var ErrUnknownLabel = errors.New("unknown label")

// Mapper is an immutable raw-to-canonical category table.
type Mapper struct {
	table map[string]string
}

// New builds a Mapper from a copy of table.
func New(table map[string]string) *Mapper {
	m := &Mapper{table: make(map[string]string, len(table))}
	for raw, canonical := range table {
		m.table[raw] = canonical
	}
	return m
}

// Default is the built-in exporter vocabulary.
var Default = New(map[string]string{
	"SHOES":            "shoe",
	"JEWELRIES":        "jewelry",
	"HATS":             "hat",
	"OUTWEARS":         "outer",
	"PANTS":            "pants",
	"SKIRTS":           "skirt",
	"SWIMWEARS":        "swimwear",
	"TOPS":             "top",
	"WHOLEBODIES":      "wholebody",
	"BAGS":             "bag",
	"BELTS":            "belt",
	"GLASSES":          "glasses",
	"GLOVES":           "glove",
	"HAIR_ACCESSORIES": "hairpin",
	"KEY_RING":         "keyring",
	"SCARF/MUFFLER":    "scarf",
	"SOCKS":            "sock",
	"TIE":              "tie",
	"WATCHES":          "watch",
})

// Lookup returns the canonical label for raw.
func (m *Mapper) Lookup(raw string) (string, bool) {
	canonical, ok := m.table[raw]
	return canonical, ok
}

// Canonical is like Lookup but reports a missing entry as ErrUnknownLabel.
func (m *Mapper) Canonical(raw string) (string, error) {
	canonical, ok := m.table[raw]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLabel, raw)
	}
	return canonical, nil
}

// Labels returns the sorted, de-duplicated canonical labels.
func (m *Mapper) Labels() []string {
	seen := make(map[string]struct{}, len(m.table))
	labels := make([]string, 0, len(m.table))
	for _, canonical := range m.table {
		if _, ok := seen[canonical]; ok {
			continue
		}
		seen[canonical] = struct{}{}
		labels = append(labels, canonical)
	}
	slices.Sort(labels)
	return labels
}

// Len returns the number of raw categories.
func (m *Mapper) Len() int {
	return len(m.table)
}
