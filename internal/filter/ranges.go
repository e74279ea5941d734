// internal/filter/ranges.go
package filter

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var rangePattern = regexp.MustCompile(`(?i)^\s*(\d+(?:\.\d+)?)\s*-\s*(\d+(?:\.\d+)?|Above)\s*$`)

// Range is a numeric interval written as "<low> - <high>" or "<low> - Above".
// Both ends are inclusive.
type Range struct {
	Low  float64
	High float64
	Open bool
}

// ParseRange reads a range-string. Anything else is not a range.
func ParseRange(s string) (Range, bool) {
	m := rangePattern.FindStringSubmatch(s)
	if m == nil {
		return Range{}, false
	}
	low, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Range{}, false
	}
	if strings.EqualFold(m[2], "above") {
		return Range{Low: low, High: math.Inf(1), Open: true}, true
	}
	high, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return Range{}, false
	}
	return Range{Low: low, High: high}, true
}

func (r Range) Contains(n float64) bool {
	if n < r.Low {
		return false
	}
	return r.Open || n <= r.High
}

func (r Range) String() string {
	low := strconv.FormatFloat(r.Low, 'f', -1, 64)
	if r.Open {
		return low + " - Above"
	}
	return low + " - " + strconv.FormatFloat(r.High, 'f', -1, 64)
}
