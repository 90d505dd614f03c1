// Package lists defines the option lists offered by the report form and how a
// user's local additions are merged over the base configuration.
package lists

import (
	"fmt"
	"strings"
)

// Category names one option list. Values match the keys of the base config.
type Category string

const (
	Drones       Category = "drones"
	MissionTypes Category = "missionTypes"
	Ammo         Category = "ammo"
	Results      Category = "results"
	MgrsPrefixes Category = "mgrsPrefixes"
)

// Categories returns the categories the form uses, in display order.
func Categories() []Category {
	return []Category{Drones, MissionTypes, Ammo, Results, MgrsPrefixes}
}

// ParseCategory accepts a category key or its Ukrainian label.
func ParseCategory(raw string) (Category, error) {
	s := strings.TrimSpace(raw)
	for _, c := range Categories() {
		if strings.EqualFold(s, string(c)) || strings.EqualFold(s, c.Label()) {
			return c, nil
		}
	}
	return "", fmt.Errorf("lists: unknown category %q", raw)
}

// Label is the form label of the category.
func (c Category) Label() string {
	switch c {
	case Ammo:
		return "Боєприпас"
	case MissionTypes:
		return "Характер"
	case Drones:
		return "Борт"
	case Results:
		return "Результат"
	case MgrsPrefixes:
		return "MGRS префікс"
	default:
		return string(c)
	}
}

// Lists maps each category to its ordered options.
type Lists map[Category][]string

// Get returns the options of c, never nil.
func (l Lists) Get(c Category) []string {
	if v, ok := l[c]; ok && v != nil {
		return v
	}
	return []string{}
}

// Defaults are the initial selections of the form.
type Defaults struct {
	MgrsPrefix  string `json:"mgrsPrefix,omitempty" yaml:"mgrsPrefix,omitempty"`
	MissionType string `json:"missionType,omitempty" yaml:"missionType,omitempty"`
	Result      string `json:"result,omitempty" yaml:"result,omitempty"`
}

// Config is the base option configuration.
type Config struct {
	Lists    Lists    `json:"lists" yaml:"lists"`
	Defaults Defaults `json:"defaults" yaml:"defaults"`
}

// Override holds the user's local list additions and default selections.
type Override struct {
	Lists    Lists     `json:"lists"`
	Defaults *Defaults `json:"defaults,omitempty"`
}

// Normalize trims s and collapses internal whitespace runs to one space.
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
