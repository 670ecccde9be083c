package search

import "github.com/jimezsa/jobportal/internal/models"

// portalFixture is a 20 posting snapshot shaped like a scrape service reply.
func portalFixture() []models.Job {
	rows := []struct {
		title   string
		jobType string
		posted  string
	}{
		{"job-01", "full-time", "2024-01-05"},
		{"job-02", "part-time", "2024-02-01"},
		{"job-03", "Full-Time", "2024-03-10"},
		{"job-04", "contract", "2024-03-11"},
		{"job-05", "full-time", ""},
		{"job-06", "full-time", "2024-02-20"},
		{"job-07", "internship", "2024-01-01"},
		{"job-08", "full-time", "2024-03-10"},
		{"job-09", "full-time", "not-a-date"},
		{"job-10", "part-time", "2024-04-01"},
		{"job-11", "full-time", "2024-04-02"},
		{"job-12", "full-time", "2023-12-31"},
		{"job-13", "", "2024-05-01"},
		{"job-14", "full-time", "2024-01-20"},
		{"job-15", "contract", "2024-02-02"},
		{"job-16", "full-time", "2024-03-01"},
		{"job-17", "full-time", "2024-02-28"},
		{"job-18", "part-time", "2024-01-09"},
		{"job-19", "full-time", "2024-06-30"},
		{"job-20", "FULL-TIME", "2024-03-15"},
	}

	jobs := make([]models.Job, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, models.Job{
			Title:      row.title,
			Company:    "Acme",
			Location:   "New York, NY",
			JobType:    row.jobType,
			DatePosted: row.posted,
		})
	}
	return jobs
}

func titles(jobs []models.Job) []string {
	out := make([]string, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, job.Title)
	}
	return out
}

func scoredTitles(jobs []models.ScoredJob) []string {
	out := make([]string, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, job.Title)
	}
	return out
}
