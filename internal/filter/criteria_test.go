package filter

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCriteriaUnmarshalFlatForm(t *testing.T) {
	payload := `{
		"search": "lawn",
		"price": [100, "2500"],
		"categoryType": ["Luxury"],
		"capacity": ["100 - 500", 80],
		"location": "Pune",
		"color": []
	}`

	var c Criteria
	require.NoError(t, json.Unmarshal([]byte(payload), &c))

	assert.Equal(t, "lawn", c.Search)
	require.NotNil(t, c.Price)
	assert.True(t, c.Price.Valid())
	assert.Equal(t, 100.0, c.Price.Min)
	assert.Equal(t, 2500.0, c.Price.Max)
	assert.Equal(t, []string{"Luxury"}, c.CategoryType)
	assert.Equal(t, []string{"100 - 500", "80"}, c.Facets["capacity"])
	assert.Equal(t, []string{"Pune"}, c.Facets["location"])
	assert.Equal(t, []string{"capacity", "location"}, c.ActiveFacets())
}

func TestCriteriaUnmarshalMalformedPrice(t *testing.T) {
	for _, payload := range []string{
		`{"price": [1]}`,
		`{"price": "cheap"}`,
		`{"price": [null, null]}`,
		`{"price": ["low", "high"]}`,
	} {
		var c Criteria
		require.NoError(t, json.Unmarshal([]byte(payload), &c), payload)
		require.NotNil(t, c.Price, payload)
		assert.False(t, c.Price.Valid(), payload)
		assert.False(t, c.Price.Contains(0), payload)
	}

	var none Criteria
	require.NoError(t, json.Unmarshal([]byte(`{"price": null}`), &none))
	assert.Nil(t, none.Price)
	assert.True(t, none.IsEmpty())
}

func TestCriteriaMarshalKeepsMeaning(t *testing.T) {
	original := Criteria{
		Search:       "tent",
		Price:        NewPriceRange(10, 20),
		CategoryType: []string{"luxury"},
		Facets:       map[string][]string{"size": {"M"}},
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Criteria
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)

	invalid := Criteria{Price: &PriceRange{invalid: true}}
	data, err = json.Marshal(invalid)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.NotNil(t, decoded.Price)
	assert.False(t, decoded.Price.Valid())
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
		want  Range
	}{
		{"100 - 500", true, Range{Low: 100, High: 500}},
		{"  0-100 ", true, Range{Low: 0, High: 100}},
		{"500 - Above", true, Range{Low: 500, High: math.Inf(1), Open: true}},
		{"500 - above", true, Range{Low: 500, High: math.Inf(1), Open: true}},
		{"1.5 - 2.5", true, Range{Low: 1.5, High: 2.5}},
		{"100 to 500", false, Range{}},
		{"-5 - 10", false, Range{}},
		{"red", false, Range{}},
		{"", false, Range{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseRange(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRangeContains(t *testing.T) {
	above, _ := ParseRange("500 - Above")
	assert.True(t, above.Contains(500))
	assert.True(t, above.Contains(600))
	assert.False(t, above.Contains(499))
	assert.Equal(t, "500 - Above", above.String())

	bounded, _ := ParseRange("100 - 500")
	assert.True(t, bounded.Contains(300))
	assert.False(t, bounded.Contains(50))
	assert.False(t, bounded.Contains(600))
	assert.Equal(t, "100 - 500", bounded.String())
}

func TestParseNumberIsLenient(t *testing.T) {
	n, ok := parseNumber("300 guests")
	assert.True(t, ok)
	assert.Equal(t, 300.0, n)

	n, ok = parseNumber(" 2.5e2")
	assert.True(t, ok)
	assert.Equal(t, 250.0, n)

	_, ok = parseNumber("about 300")
	assert.False(t, ok)

	_, ok = parseNumber(true)
	assert.False(t, ok)
}
