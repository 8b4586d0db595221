package restroom

import "strings"

// Criteria is the fully-specified filter value. An empty slice on any facet
// means "no constraint on that facet", never "exclude all". MaxDistanceKm
// is nil when no distance ceiling is set.
type Criteria struct {
	CleanlinessMin int           `json:"cleanliness_min"`
	CleanlinessMax int           `json:"cleanliness_max"`
	Features       []string      `json:"features"`
	PaymentTypes   []PaymentType `json:"payment_types"`
	Types          []Type        `json:"types"`
	Genders        []string      `json:"genders"`
	MaxDistanceKm  *float64      `json:"max_distance_km,omitempty"`
}

// OpenCriteria returns criteria with no constraints on any facet.
func OpenCriteria() Criteria {
	return Criteria{
		CleanlinessMin: 1,
		CleanlinessMax: 5,
		Features:       []string{},
		PaymentTypes:   []PaymentType{},
		Types:          []Type{},
		Genders:        []string{},
	}
}

// Matches reports whether the restroom passes the criteria and the search
// text. Search matches case-insensitively against the name; an empty search
// always passes. Restrooms with unknown distance are never excluded by the
// distance ceiling.
func (c Criteria) Matches(r Restroom, search string) bool {
	if search != "" && !strings.Contains(strings.ToLower(r.Name), strings.ToLower(search)) {
		return false
	}
	if r.Cleanliness < c.CleanlinessMin || r.Cleanliness > c.CleanlinessMax {
		return false
	}
	for _, f := range c.Features {
		if !contains(r.Features, f) {
			return false
		}
	}
	if len(c.PaymentTypes) > 0 && !containsPayment(c.PaymentTypes, r.PaymentType) {
		return false
	}
	if len(c.Types) > 0 && !containsType(c.Types, r.Type) {
		return false
	}
	if len(c.Genders) > 0 && !intersects(r.Gender, c.Genders) {
		return false
	}
	if c.MaxDistanceKm != nil && r.Distance != nil && *r.Distance > *c.MaxDistanceKm {
		return false
	}
	return true
}

// Update describes a partial change to criteria. Nil fields leave the
// corresponding facet untouched; ClearMaxDistance removes the ceiling.
type Update struct {
	CleanlinessMin   *int           `json:"cleanliness_min,omitempty"`
	CleanlinessMax   *int           `json:"cleanliness_max,omitempty"`
	Features         *[]string      `json:"features,omitempty"`
	PaymentTypes     *[]PaymentType `json:"payment_types,omitempty"`
	Types            *[]Type        `json:"types,omitempty"`
	Genders          *[]string      `json:"genders,omitempty"`
	MaxDistanceKm    *float64       `json:"max_distance_km,omitempty"`
	ClearMaxDistance bool           `json:"clear_max_distance,omitempty"`
}

// Apply returns a copy of the criteria with the update folded in.
func (u Update) Apply(c Criteria) Criteria {
	next := c
	if u.CleanlinessMin != nil {
		next.CleanlinessMin = *u.CleanlinessMin
	}
	if u.CleanlinessMax != nil {
		next.CleanlinessMax = *u.CleanlinessMax
	}
	if u.Features != nil {
		next.Features = append([]string{}, (*u.Features)...)
	}
	if u.PaymentTypes != nil {
		next.PaymentTypes = append([]PaymentType{}, (*u.PaymentTypes)...)
	}
	if u.Types != nil {
		next.Types = append([]Type{}, (*u.Types)...)
	}
	if u.Genders != nil {
		next.Genders = append([]string{}, (*u.Genders)...)
	}
	if u.ClearMaxDistance {
		next.MaxDistanceKm = nil
	} else if u.MaxDistanceKm != nil {
		v := *u.MaxDistanceKm
		next.MaxDistanceKm = &v
	}
	return next
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func containsPayment(haystack []PaymentType, needle PaymentType) bool {
	for _, p := range haystack {
		if p == needle {
			return true
		}
	}
	return false
}

func containsType(haystack []Type, needle Type) bool {
	for _, t := range haystack {
		if t == needle {
			return true
		}
	}
	return false
}

func intersects(a, b []string) bool {
	for _, s := range a {
		if contains(b, s) {
			return true
		}
	}
	return false
}
