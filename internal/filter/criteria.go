// internal/filter/criteria.go
package filter

import (
	"encoding/json"
	"math"
	"sort"
)

// Reserved criteria keys. Every other key names a facet.
const (
	KeySearch       = "search"
	KeyPrice        = "price"
	KeyCategoryType = "categoryType"
	KeyVendor       = "vendor"
	KeyLocation     = "location"
)

// PriceRange is an inclusive [Min, Max] bound on selling price. A range
// decoded from malformed input is invalid and matches nothing.
type PriceRange struct {
	Min     float64
	Max     float64
	invalid bool
}

func NewPriceRange(min, max float64) *PriceRange {
	return &PriceRange{Min: min, Max: max}
}

func (r PriceRange) Valid() bool {
	return !r.invalid && !math.IsNaN(r.Min) && !math.IsNaN(r.Max)
}

func (r PriceRange) Contains(price float64) bool {
	return r.Valid() && r.Min <= price && price <= r.Max
}

// Criteria is the full set of constraints applied to a product listing.
// An empty value list for any key imposes no constraint.
type Criteria struct {
	Search       string
	Price        *PriceRange
	CategoryType []string
	Facets       map[string][]string
}

// IsEmpty reports whether the criteria constrain nothing.
func (c Criteria) IsEmpty() bool {
	if c.Search != "" || c.Price != nil || len(c.CategoryType) > 0 {
		return false
	}
	for _, values := range c.Facets {
		if len(values) > 0 {
			return false
		}
	}
	return true
}

// ActiveFacets returns the facet keys with at least one accepted value, sorted.
func (c Criteria) ActiveFacets() []string {
	keys := make([]string, 0, len(c.Facets))
	for key, values := range c.Facets {
		if len(values) > 0 {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

// MarshalJSON writes the flat wire form:
// {"search": "...", "price": [min, max], "categoryType": [...], "<facet>": [...]}.
func (c Criteria) MarshalJSON() ([]byte, error) {
	flat := make(map[string]interface{}, len(c.Facets)+3)
	for key, values := range c.Facets {
		flat[key] = values
	}
	if c.Search != "" {
		flat[KeySearch] = c.Search
	}
	if len(c.CategoryType) > 0 {
		flat[KeyCategoryType] = c.CategoryType
	}
	if c.Price != nil {
		if c.Price.Valid() {
			flat[KeyPrice] = []float64{c.Price.Min, c.Price.Max}
		} else {
			flat[KeyPrice] = []interface{}{nil, nil}
		}
	}
	return json.Marshal(flat)
}

// UnmarshalJSON reads the flat wire form. It never fails on malformed
// values: a bad price becomes an invalid range and unusable facet values
// are skipped.
func (c *Criteria) UnmarshalJSON(data []byte) error {
	var flat map[string]json.RawMessage
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}

	out := Criteria{}
	for key, raw := range flat {
		switch key {
		case KeySearch:
			var s string
			if json.Unmarshal(raw, &s) == nil {
				out.Search = s
			}
		case KeyPrice:
			out.Price = decodePrice(raw)
		case KeyCategoryType:
			out.CategoryType = decodeValues(raw)
		default:
			if out.Facets == nil {
				out.Facets = make(map[string][]string)
			}
			out.Facets[key] = decodeValues(raw)
		}
	}
	*c = out
	return nil
}

func decodePrice(raw json.RawMessage) *PriceRange {
	if string(raw) == "null" {
		return nil
	}
	var pair []interface{}
	if err := json.Unmarshal(raw, &pair); err != nil || len(pair) != 2 {
		return &PriceRange{invalid: true}
	}
	min, okMin := parseNumber(pair[0])
	max, okMax := parseNumber(pair[1])
	if !okMin || !okMax {
		return &PriceRange{invalid: true}
	}
	return &PriceRange{Min: min, Max: max}
}

// decodeValues accepts a list of scalars or a single scalar.
func decodeValues(raw json.RawMessage) []string {
	var list []interface{}
	if err := json.Unmarshal(raw, &list); err != nil {
		var single interface{}
		if err := json.Unmarshal(raw, &single); err != nil || single == nil {
			return []string{}
		}
		list = []interface{}{single}
	}

	values := make([]string, 0, len(list))
	for _, v := range list {
		if s, ok := stringify(v); ok {
			values = append(values, s)
		}
	}
	return values
}
