package lists

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyValue rejects a blank list item.
	ErrEmptyValue = errors.New("lists: empty value")
	// ErrDuplicate rejects an item already present after normalization.
	ErrDuplicate = errors.New("lists: duplicate value")
)

// Merge builds the effective configuration. Every list category is additive:
// base entries in base order, then override entries not already present,
// compared on normalized text with blanks dropped. Defaults are replaced field
// by field when the override sets them. Merging the same override again
// yields the same result.
func Merge(base Config, ov Override) Config {
	out := Config{
		Lists:    make(Lists, len(Categories())),
		Defaults: base.Defaults,
	}
	for _, c := range Categories() {
		out.Lists[c] = mergeUnique(base.Lists.Get(c), ov.Lists.Get(c))
	}
	if ov.Defaults != nil {
		if ov.Defaults.MgrsPrefix != "" {
			out.Defaults.MgrsPrefix = ov.Defaults.MgrsPrefix
		}
		if ov.Defaults.MissionType != "" {
			out.Defaults.MissionType = ov.Defaults.MissionType
		}
		if ov.Defaults.Result != "" {
			out.Defaults.Result = ov.Defaults.Result
		}
	}
	return out
}

func mergeUnique(base, extra []string) []string {
	out := make([]string, 0, len(base)+len(extra))
	seen := make(map[string]struct{}, len(base)+len(extra))
	for _, v := range base {
		s := Normalize(v)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			out = append(out, v)
		}
	}
	for _, v := range extra {
		s := Normalize(v)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}

// AddItem appends value to the override list of c unless it is blank or
// already part of the effective list. It returns the normalized value.
func AddItem(effective Config, ov *Override, c Category, value string) (string, error) {
	v := Normalize(value)
	if v == "" {
		return "", ErrEmptyValue
	}
	for _, existing := range effective.Lists.Get(c) {
		if Normalize(existing) == v {
			return v, fmt.Errorf("%w: %q", ErrDuplicate, v)
		}
	}
	if ov.Lists == nil {
		ov.Lists = make(Lists)
	}
	ov.Lists[c] = append(ov.Lists[c], v)
	return v, nil
}

// SetList replaces the override list of c with the normalized non-blank values.
// An empty result removes the category from the override.
func SetList(ov *Override, c Category, values []string) {
	if ov.Lists == nil {
		ov.Lists = make(Lists)
	}
	cleaned := mergeUnique(nil, values)
	if len(cleaned) == 0 {
		delete(ov.Lists, c)
		return
	}
	ov.Lists[c] = cleaned
}
