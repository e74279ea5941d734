// internal/facet/controls.go
package facet

import (
	"sort"

	"github.com/eventrix/eventrix-backend/internal/filter"
	"github.com/eventrix/eventrix-backend/internal/models"
)

type Widget string

const (
	WidgetButton   Widget = "button"
	WidgetCheckbox Widget = "checkbox"
)

type Option struct {
	Value    string `json:"value"`
	Selected bool   `json:"selected"`
}

// Group is one block of controls in the sidebar.
type Group struct {
	Key     string   `json:"key"`
	Label   string   `json:"label"`
	Widget  Widget   `json:"widget"`
	Options []Option `json:"options"`
}

// Controls lays out the groups for view: locations first, then property
// keys in name order, then category types. Empty groups are omitted.
func (s *Sidebar) Controls(view models.SidebarView) []Group {
	s.mu.Lock()
	defer s.mu.Unlock()

	var groups []Group
	if len(view.Locations) > 0 {
		groups = append(groups, s.groupLocked(filter.KeyLocation, "Location", WidgetButton, view.Locations))
	}

	keys := make([]string, 0, len(view.PropertyValues))
	for key := range view.PropertyValues {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		values := view.PropertyValues[key]
		if len(values) == 0 {
			continue
		}
		widget := WidgetButton
		if Widget(view.DisplayTypes[key]) == WidgetCheckbox {
			widget = WidgetCheckbox
		}
		groups = append(groups, s.groupLocked(key, key, widget, values))
	}

	if len(view.CategoryTypes) > 0 {
		groups = append(groups, s.groupLocked(filter.KeyCategoryType, "Category Type", WidgetButton, view.CategoryTypes))
	}
	return groups
}

func (s *Sidebar) groupLocked(key, label string, widget Widget, values []string) Group {
	g := Group{Key: key, Label: label, Widget: widget, Options: make([]Option, len(values))}
	for i, v := range values {
		g.Options[i] = Option{Value: v, Selected: s.selectedLocked(key, v)}
	}
	return g
}
