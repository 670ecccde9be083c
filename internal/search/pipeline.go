package search

import (
	"strings"

	"github.com/jimezsa/jobportal/internal/models"
)

// Attribute is the server-side search: attribute filter followed by the
// criteria's sort mode.
func Attribute(jobs []models.Job, criteria models.FilterCriteria) []models.Job {
	return SortByMode(Filter(jobs, criteria), criteria.SortBy)
}

// Keyword is the client-view search: attribute filter followed by relevance
// ranking against keyword. Without a keyword no score is computed and the
// criteria's sort mode applies instead.
func Keyword(jobs []models.Job, criteria models.FilterCriteria, keyword string) []models.ScoredJob {
	filtered := Filter(jobs, criteria)
	if strings.TrimSpace(keyword) == "" {
		sorted := SortByMode(filtered, criteria.SortBy)
		out := make([]models.ScoredJob, 0, len(sorted))
		for _, job := range sorted {
			out = append(out, models.ScoredJob{Job: job})
		}
		return out
	}
	return SortByRelevance(ScoreAll(filtered, keyword, criteria.RemoteOnly))
}
