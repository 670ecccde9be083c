package search

import (
	"sort"
	"time"

	"github.com/jimezsa/jobportal/internal/models"
)

// SortByRelevance orders scored jobs by descending score. Ties keep their
// input order. A sorted copy is returned.
func SortByRelevance(scored []models.ScoredJob) []models.ScoredJob {
	out := append([]models.ScoredJob(nil), scored...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// SortByMode orders jobs for the attribute search. SortNone returns the
// jobs in input order. A sorted copy is returned.
func SortByMode(jobs []models.Job, mode models.SortMode) []models.Job {
	out := append([]models.Job(nil), jobs...)
	switch mode {
	case models.SortSalaryHigh:
		sortBySalary(out)
	case models.SortNewest:
		sortByNewest(out)
	}
	return out
}

func sortBySalary(jobs []models.Job) {
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].Salary.OrZero() > jobs[j].Salary.OrZero()
	})
}

type datedJob struct {
	job    models.Job
	posted time.Time
	valid  bool
}

// sortByNewest puts the most recent posting first. Missing or unparseable
// dates count as the earliest possible value and sink to the end.
func sortByNewest(jobs []models.Job) {
	dated := make([]datedJob, len(jobs))
	for i, job := range jobs {
		posted, ok := ParseDatePosted(job.DatePosted)
		dated[i] = datedJob{job: job, posted: posted, valid: ok}
	}

	sort.SliceStable(dated, func(i, j int) bool {
		a, b := dated[i], dated[j]
		if a.valid != b.valid {
			return a.valid
		}
		return a.posted.After(b.posted)
	})

	for i := range dated {
		jobs[i] = dated[i].job
	}
}
