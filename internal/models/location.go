// internal/models/location.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

type LocationKind string

const (
	LocationAddressOnly LocationKind = "address_only"
	LocationGeoPoint    LocationKind = "geo_point"
)

type GeoPoint struct {
	Lng float64 `json:"lng"`
	Lat float64 `json:"lat"`
}

// Location is either a plain postal address or an address pinned to a
// coordinate. Kind is always set after decoding.
type Location struct {
	Kind        LocationKind `json:"kind"`
	Address     string       `json:"address"`
	City        string       `json:"city,omitempty"`
	State       string       `json:"state,omitempty"`
	Country     string       `json:"country,omitempty"`
	Coordinates *GeoPoint    `json:"coordinates,omitempty"`
}

func NewAddress(address string) *Location {
	return &Location{Kind: LocationAddressOnly, Address: address}
}

func NewGeoPoint(address string, lng, lat float64) *Location {
	return &Location{
		Kind:        LocationGeoPoint,
		Address:     address,
		Coordinates: &GeoPoint{Lng: lng, Lat: lat},
	}
}

// SearchFields returns the free-text fields that participate in search.
func (l *Location) SearchFields() []string {
	if l == nil {
		return nil
	}
	return []string{l.Address, l.City, l.State, l.Country}
}

type locationWire struct {
	Kind        LocationKind    `json:"kind"`
	Type        string          `json:"type"`
	Address     string          `json:"address"`
	City        string          `json:"city"`
	State       string          `json:"state"`
	Country     string          `json:"country"`
	Coordinates json.RawMessage `json:"coordinates"`
	Latitude    json.RawMessage `json:"latitude"`
	Longitude   json.RawMessage `json:"longitude"`
}

// UnmarshalJSON accepts a bare address string, an address object, a GeoJSON
// point with an address, or the tagged form produced by MarshalJSON.
func (l *Location) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		return nil
	}

	if strings.HasPrefix(trimmed, `"`) {
		var address string
		if err := json.Unmarshal(data, &address); err != nil {
			return err
		}
		*l = Location{Kind: LocationAddressOnly, Address: address}
		return nil
	}

	var w locationWire
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("invalid location: %w", err)
	}

	loc := Location{
		Kind:    LocationAddressOnly,
		Address: w.Address,
		City:    w.City,
		State:   w.State,
		Country: w.Country,
	}

	if point, ok := decodeCoordinates(w.Coordinates); ok {
		loc.Kind = LocationGeoPoint
		loc.Coordinates = point
	} else if lat, ok := decodeNumber(w.Latitude); ok {
		if lng, ok := decodeNumber(w.Longitude); ok {
			loc.Kind = LocationGeoPoint
			loc.Coordinates = &GeoPoint{Lng: lng, Lat: lat}
		}
	}

	if w.Kind == LocationAddressOnly {
		loc.Kind = LocationAddressOnly
		loc.Coordinates = nil
	}

	*l = loc
	return nil
}

// coordinates may be a GeoJSON [lng, lat] pair or a {lng, lat} object.
func decodeCoordinates(raw json.RawMessage) (*GeoPoint, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, false
	}

	var pair []json.RawMessage
	if err := json.Unmarshal(raw, &pair); err == nil {
		if len(pair) != 2 {
			return nil, false
		}
		lng, okLng := decodeNumber(pair[0])
		lat, okLat := decodeNumber(pair[1])
		if !okLng || !okLat {
			return nil, false
		}
		return &GeoPoint{Lng: lng, Lat: lat}, true
	}

	var point struct {
		Lng json.RawMessage `json:"lng"`
		Lat json.RawMessage `json:"lat"`
	}
	if err := json.Unmarshal(raw, &point); err != nil {
		return nil, false
	}
	lng, okLng := decodeNumber(point.Lng)
	lat, okLat := decodeNumber(point.Lat)
	if !okLng || !okLat {
		return nil, false
	}
	return &GeoPoint{Lng: lng, Lat: lat}, true
}

func decodeNumber(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 {
		return 0, false
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, false
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (l Location) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *Location) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	return json.Unmarshal(scanBytes(value), l)
}
