// internal/facet/sidebar.go
package facet

import (
	"strings"
	"sync"

	"github.com/eventrix/eventrix-backend/internal/filter"
)

type Handle int

const (
	MinHandle Handle = iota
	MaxHandle
)

// Sidebar holds the shopper's current selections and re-emits the complete
// criteria after every change. Emissions run on a dispatcher goroutine, never
// on the caller's, and arrive in the order the changes were made.
type Sidebar struct {
	mu           sync.Mutex
	selections   map[string][]string
	search       string
	low, high    float64
	minBound     float64
	maxBound     float64
	priceTouched bool

	dispatch *dispatcher
}

// New creates a sidebar whose price range spans [minPrice, maxPrice].
// onChange may be nil.
func New(minPrice, maxPrice float64, onChange func(filter.Criteria)) *Sidebar {
	if minPrice > maxPrice {
		minPrice, maxPrice = maxPrice, minPrice
	}
	return &Sidebar{
		selections: make(map[string][]string),
		low:        minPrice,
		high:       maxPrice,
		minBound:   minPrice,
		maxBound:   maxPrice,
		dispatch:   newDispatcher(onChange),
	}
}

// Toggle adds value to key's selection if absent and removes it if present.
// The same rule applies to location, categoryType and every property key.
func (s *Sidebar) Toggle(key, value string) {
	s.mu.Lock()
	current := s.selections[key]
	next := make([]string, 0, len(current)+1)
	found := false
	for _, v := range current {
		if v == value {
			found = true
			continue
		}
		next = append(next, v)
	}
	if !found {
		next = append(next, value)
	}
	if len(next) == 0 {
		delete(s.selections, key)
	} else {
		s.selections[key] = next
	}
	s.emitLocked()
	s.mu.Unlock()
}

// SetPrice moves one handle of the price slider. A handle dragged past the
// other one pulls it along.
func (s *Sidebar) SetPrice(h Handle, value float64) {
	s.mu.Lock()
	switch h {
	case MinHandle:
		s.low = value
		if s.low > s.high {
			s.high = s.low
		}
	case MaxHandle:
		s.high = value
		if s.high < s.low {
			s.low = s.high
		}
	}
	s.priceTouched = true
	s.emitLocked()
	s.mu.Unlock()
}

// SetSearch replaces the search term. It is stored lowercase.
func (s *Sidebar) SetSearch(q string) {
	s.mu.Lock()
	s.search = strings.ToLower(q)
	s.emitLocked()
	s.mu.Unlock()
}

// SetBounds resets the price range to a new listing's bounds without
// emitting.
func (s *Sidebar) SetBounds(minPrice, maxPrice float64) {
	if minPrice > maxPrice {
		minPrice, maxPrice = maxPrice, minPrice
	}
	s.mu.Lock()
	s.minBound, s.maxBound = minPrice, maxPrice
	s.low, s.high = minPrice, maxPrice
	s.priceTouched = false
	s.mu.Unlock()
}

// Reset clears every selection and emits the empty criteria.
func (s *Sidebar) Reset() {
	s.mu.Lock()
	s.selections = make(map[string][]string)
	s.search = ""
	s.low, s.high = s.minBound, s.maxBound
	s.priceTouched = false
	s.emitLocked()
	s.mu.Unlock()
}

func (s *Sidebar) PriceRange() (low, high float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.low, s.high
}

func (s *Sidebar) Selected(key, value string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedLocked(key, value)
}

func (s *Sidebar) selectedLocked(key, value string) bool {
	for _, v := range s.selections[key] {
		if v == value {
			return true
		}
	}
	return false
}

// Criteria returns a snapshot of the current criteria. The price range is
// only included once a handle has moved.
func (s *Sidebar) Criteria() filter.Criteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.criteriaLocked()
}

func (s *Sidebar) criteriaLocked() filter.Criteria {
	c := filter.Criteria{Search: s.search}
	if s.priceTouched {
		c.Price = filter.NewPriceRange(s.low, s.high)
	}
	for key, values := range s.selections {
		copied := append([]string{}, values...)
		if key == filter.KeyCategoryType {
			c.CategoryType = copied
			continue
		}
		if c.Facets == nil {
			c.Facets = make(map[string][]string)
		}
		c.Facets[key] = copied
	}
	return c
}

func (s *Sidebar) emitLocked() {
	s.dispatch.enqueue(s.criteriaLocked())
}

// Close stops the dispatcher after delivering every pending emission.
// Called from the change callback it returns without waiting, and the
// remaining emissions are delivered once the callback returns.
func (s *Sidebar) Close() {
	s.dispatch.close()
}
