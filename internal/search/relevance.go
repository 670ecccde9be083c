package search

import (
	"strings"
	"unicode/utf8"

	"github.com/jimezsa/jobportal/internal/models"
)

const (
	exactTitleScore  = 100
	titlePhraseScore = 50
	titleTermScore   = 25
	bodyTermScore    = 5
	remoteScore      = 10

	// Terms of this length or shorter are ignored.
	shortTermLength = 2
)

// Terms splits a keyword query into lowercased terms, dropping short ones.
func Terms(keyword string) []string {
	fields := strings.Fields(strings.ToLower(keyword))
	terms := make([]string, 0, len(fields))
	for _, field := range fields {
		if utf8.RuneCountInString(field) <= shortTermLength {
			continue
		}
		terms = append(terms, field)
	}
	return terms
}

// Score computes how well a job matches a keyword query. All bonuses are
// additive: an exact title match also counts as a phrase match and as a
// match for each of its terms.
func Score(job models.Job, keyword string, remoteRequested bool) int {
	phrase := strings.ToLower(keyword)
	return score(job, phrase, Terms(keyword), remoteRequested)
}

func score(job models.Job, phrase string, terms []string, remoteRequested bool) int {
	title := strings.ToLower(job.Title)
	description := strings.ToLower(job.Description)

	total := 0
	if title == phrase {
		total += exactTitleScore
	}
	if strings.Contains(title, phrase) {
		total += titlePhraseScore
	}
	for _, term := range terms {
		if strings.Contains(title, term) {
			total += titleTermScore
		}
	}
	for _, term := range terms {
		if strings.Contains(description, term) {
			total += bodyTermScore
		}
	}
	if remoteRequested && job.IsRemote.Truthy() {
		total += remoteScore
	}
	return total
}

// ScoreAll attaches a relevance score to every job, keeping input order.
func ScoreAll(jobs []models.Job, keyword string, remoteRequested bool) []models.ScoredJob {
	phrase := strings.ToLower(keyword)
	terms := Terms(keyword)

	scored := make([]models.ScoredJob, 0, len(jobs))
	for _, job := range jobs {
		scored = append(scored, models.ScoredJob{
			Job:   job,
			Score: score(job, phrase, terms, remoteRequested),
		})
	}
	return scored
}
