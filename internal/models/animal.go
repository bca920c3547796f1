package models

import "strings"

// FeatureMap holds the [0,1] feature values describing an animal.
// A feature that is not present reads as 0 (absent/false) — this is a
// domain invariant, so lookups go through Value instead of indexing the
// map directly.
type FeatureMap map[string]float64

// Value returns the stored value for a feature, or 0 when the feature is
// absent.
func (m FeatureMap) Value(feature string) float64 {
	if m == nil {
		return 0
	}
	return m[feature]
}

// Truthy reports whether a feature value counts as a "yes". Values above
// 0.5 are yes; 0.5 itself is the ambiguous boundary and is handled
// permissively by the candidate filter.
func Truthy(v float64) bool {
	return v > 0.5
}

// Animal is one guessable entity. Names are unique case-insensitively.
// Animals are created at load time or when learned; they are never
// deleted.
type Animal struct {
	Name     string     `json:"name"`
	Features FeatureMap `json:"features"`
}

// NewAnimal creates an animal with an empty feature map.
func NewAnimal(name string) *Animal {
	return &Animal{Name: name, Features: FeatureMap{}}
}

// SetFeature sets or overwrites a feature value.
func (a *Animal) SetFeature(feature string, value float64) {
	if a.Features == nil {
		a.Features = FeatureMap{}
	}
	a.Features[feature] = value
}

// NameEquals compares animal names case-insensitively.
func (a *Animal) NameEquals(name string) bool {
	return strings.EqualFold(a.Name, name)
}
