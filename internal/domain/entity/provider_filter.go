package entity

import "strings"

// ProviderFilter is a domain-level filter for provider search.
// Every field is matched as a case-insensitive substring; empty means unset.
type ProviderFilter struct {
	Category string
	State    string
	LGA      string
	Keyword  string // matched against category or bio
}

// Normalize trims whitespace so blank values count as unset.
func (f ProviderFilter) Normalize() ProviderFilter {
	return ProviderFilter{
		Category: strings.TrimSpace(f.Category),
		State:    strings.TrimSpace(f.State),
		LGA:      strings.TrimSpace(f.LGA),
		Keyword:  strings.TrimSpace(f.Keyword),
	}
}

func (f ProviderFilter) IsEmpty() bool {
	n := f.Normalize()
	return n.Category == "" && n.State == "" && n.LGA == "" && n.Keyword == ""
}

// ProviderSort selects the ordering of a provider listing.
type ProviderSort int

const (
	// SortNewest orders by created_at descending.
	SortNewest ProviderSort = iota
	// SortTopRated orders by rating average, then created_at, both descending.
	SortTopRated
)
