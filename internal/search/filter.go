package search

import (
	"strings"

	"github.com/jimezsa/jobportal/internal/models"
)

// Filter returns the jobs satisfying every criterion that is set, in their
// original order. The input slice is not modified.
func Filter(jobs []models.Job, criteria models.FilterCriteria) []models.Job {
	out := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		if Matches(job, criteria) {
			out = append(out, job)
		}
	}
	return out
}

// Matches reports whether a single job passes the criteria. A job missing
// an attribute never passes a criterion on that attribute.
func Matches(job models.Job, criteria models.FilterCriteria) bool {
	if criteria.Location != "" {
		if job.Location == "" {
			return false
		}
		if !strings.Contains(strings.ToLower(job.Location), strings.ToLower(criteria.Location)) {
			return false
		}
	}

	if criteria.JobType != "" && !equalFoldPresent(job.JobType, criteria.JobType) {
		return false
	}

	if criteria.MinSalary.Valid {
		if !job.Salary.Valid || job.Salary.Value < criteria.MinSalary.Value {
			return false
		}
	}

	if criteria.ExperienceLevel != "" && !equalFoldPresent(job.ExperienceLevel, criteria.ExperienceLevel) {
		return false
	}

	// The scrape service marks remote postings with the literal string "yes".
	// A boolean true is a different value and is excluded on purpose.
	if criteria.RemoteOnly && !job.IsRemote.IsYes() {
		return false
	}

	return true
}

func equalFoldPresent(value, want string) bool {
	if value == "" {
		return false
	}
	return strings.ToLower(value) == strings.ToLower(want)
}
