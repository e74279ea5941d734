// internal/filter/engine.go
package filter

import (
	"strings"

	"github.com/eventrix/eventrix-backend/internal/models"
)

// Default price bounds for an empty listing.
const (
	DefaultMinPrice = 0
	DefaultMaxPrice = 10000
)

type predicate func(p *models.ListedProduct) bool

// Apply returns the products matching c, in input order. Constraints apply
// as successive narrowing passes: category type, price, facets, and finally
// free-text search over whatever the structural filters kept.
func Apply(products []models.ListedProduct, c Criteria) []models.ListedProduct {
	result := make([]models.ListedProduct, len(products))
	copy(result, products)

	for _, keep := range stages(c) {
		result = narrow(result, keep)
	}
	return result
}

func stages(c Criteria) []predicate {
	var ps []predicate

	if len(c.CategoryType) > 0 {
		ps = append(ps, matchCategoryType(c.CategoryType))
	}
	if c.Price != nil {
		price := *c.Price
		ps = append(ps, func(p *models.ListedProduct) bool {
			return price.Contains(p.SellingPrice)
		})
	}
	for _, key := range c.ActiveFacets() {
		ps = append(ps, matchFacet(key, c.Facets[key]))
	}
	if c.Search != "" {
		ps = append(ps, matchSearch(strings.ToLower(c.Search)))
	}
	return ps
}

func narrow(products []models.ListedProduct, keep predicate) []models.ListedProduct {
	kept := products[:0]
	for i := range products {
		if keep(&products[i]) {
			kept = append(kept, products[i])
		}
	}
	return kept
}

func matchCategoryType(accepted []string) predicate {
	return func(p *models.ListedProduct) bool {
		if p.CategoryType == "" {
			return false
		}
		for _, t := range accepted {
			if strings.EqualFold(p.CategoryType, t) {
				return true
			}
		}
		return false
	}
}

func matchFacet(key string, accepted []string) predicate {
	switch key {
	case KeyVendor:
		return func(p *models.ListedProduct) bool {
			if p.VendorID == nil {
				return false
			}
			id := p.VendorID.String()
			for _, v := range accepted {
				if strings.EqualFold(id, strings.TrimSpace(v)) {
					return true
				}
			}
			return false
		}
	case KeyLocation:
		return func(p *models.ListedProduct) bool {
			if p.Location == nil || p.Location.Address == "" {
				return false
			}
			address := strings.ToLower(p.Location.Address)
			for _, token := range accepted {
				if strings.Contains(address, strings.ToLower(token)) {
					return true
				}
			}
			return false
		}
	default:
		return func(p *models.ListedProduct) bool {
			value, ok := p.Properties[key]
			if !ok || value == nil {
				return false
			}
			for _, want := range accepted {
				if matchProperty(value, want) {
					return true
				}
			}
			return false
		}
	}
}

// matchProperty tries want as a range-string first and falls back to exact
// string equality only when want is not a range.
func matchProperty(value interface{}, want string) bool {
	if r, ok := ParseRange(want); ok {
		n, ok := parseNumber(value)
		return ok && r.Contains(n)
	}
	s, ok := stringify(value)
	return ok && s == want
}

func matchSearch(term string) predicate {
	return func(p *models.ListedProduct) bool {
		if containsFold(p.Name, term) || containsFold(p.Description, term) {
			return true
		}
		for _, v := range p.Properties {
			if s, ok := stringify(v); ok && containsFold(s, term) {
				return true
			}
		}
		for _, field := range p.Location.SearchFields() {
			if containsFold(field, term) {
				return true
			}
		}
		return false
	}
}

func containsFold(s, lowerTerm string) bool {
	return s != "" && strings.Contains(strings.ToLower(s), lowerTerm)
}

// PriceBounds returns the lowest and highest selling price in products.
func PriceBounds(products []models.ListedProduct) (min, max float64) {
	if len(products) == 0 {
		return DefaultMinPrice, DefaultMaxPrice
	}
	min, max = products[0].SellingPrice, products[0].SellingPrice
	for _, p := range products[1:] {
		if p.SellingPrice < min {
			min = p.SellingPrice
		}
		if p.SellingPrice > max {
			max = p.SellingPrice
		}
	}
	return min, max
}
