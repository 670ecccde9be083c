package models

import "strings"

// SortMode selects the attribute ordering applied by the server-side search.
type SortMode string

const (
	SortNone       SortMode = ""
	SortSalaryHigh SortMode = "salary_high"
	SortNewest     SortMode = "newest"
)

// ParseSortMode maps a query value to a SortMode; unknown values mean no sort.
func ParseSortMode(value string) SortMode {
	switch SortMode(strings.ToLower(strings.TrimSpace(value))) {
	case SortSalaryHigh:
		return SortSalaryHigh
	case SortNewest:
		return SortNewest
	default:
		return SortNone
	}
}

// FilterCriteria captures the structured search inputs. Zero values mean
// "no constraint" for every field.
type FilterCriteria struct {
	Location        string
	JobType         string
	MinSalary       Salary
	ExperienceLevel string
	RemoteOnly      bool
	SortBy          SortMode
}

// SearchParams are the inputs forwarded to the scrape service.
type SearchParams struct {
	Keyword       string
	Location      string
	ResultsWanted int
}
