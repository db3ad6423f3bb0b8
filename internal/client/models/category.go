package models

import (
	"fmt"
	"strings"
)

// Category is the kind of help a request asks for. Donor preferences are
// expressed as a set of categories too.
type Category string

const (
	CategoryFood       Category = "food"
	CategoryMoney      Category = "money"
	CategoryEssentials Category = "essentials"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryFood, CategoryMoney, CategoryEssentials}

func (c Category) Valid() bool {
	switch c {
	case CategoryFood, CategoryMoney, CategoryEssentials:
		return true
	}
	return false
}

func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

// PreferenceSet is an ordered, duplicate-free set of categories. The zero
// value is the empty set. Methods never modify the receiver.
type PreferenceSet []Category

// NewPreferenceSet validates tags and returns them in display order.
func NewPreferenceSet(tags ...Category) (PreferenceSet, error) {
	seen := make(map[Category]bool, len(tags))
	for _, t := range tags {
		if !t.Valid() {
			return nil, fmt.Errorf("unknown preference %q", t)
		}
		seen[t] = true
	}
	if len(seen) == 0 {
		return nil, nil
	}
	out := make(PreferenceSet, 0, len(seen))
	for _, c := range Categories {
		if seen[c] {
			out = append(out, c)
		}
	}
	return out, nil
}

func (p PreferenceSet) Has(c Category) bool {
	for _, t := range p {
		if t == c {
			return true
		}
	}
	return false
}

// Toggle returns a copy of p with c added if it was absent or removed if it
// was present.
func (p PreferenceSet) Toggle(c Category) PreferenceSet {
	out := make(PreferenceSet, 0, len(p)+1)
	for _, t := range Categories {
		has := p.Has(t)
		if t == c {
			has = !has
		}
		if has {
			out = append(out, t)
		}
	}
	return out
}

func (p PreferenceSet) Empty() bool { return len(p) == 0 }

func (p PreferenceSet) Clone() PreferenceSet {
	if p == nil {
		return nil
	}
	return append(PreferenceSet(nil), p...)
}

func (p PreferenceSet) String() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = string(c)
	}
	return strings.Join(parts, ", ")
}
