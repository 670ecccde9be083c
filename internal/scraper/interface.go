package scraper

import (
	"context"
	"errors"

	fhttp "github.com/bogdanfinn/fhttp"
	"github.com/jimezsa/jobportal/internal/models"
)

var (
	// ErrUpstream means the collaborator could not be reached or answered with an error status.
	ErrUpstream = errors.New("upstream unavailable")
	// ErrNoJobs means the scrape service answered successfully with nothing.
	ErrNoJobs = errors.New("no jobs found")
	// ErrNotFound means the skill-gap or recommendation service does not know the user.
	ErrNotFound = errors.New("not found")
)

// Scraper returns raw postings for a keyword and location.
type Scraper interface {
	Search(ctx context.Context, params models.SearchParams) ([]models.Job, error)
}

// SkillGapSource returns the skill-gap analysis for a user.
type SkillGapSource interface {
	SkillGap(ctx context.Context, uid string) (models.SkillGapResult, error)
}

// RecommendationSource returns the jobs recommended for a user.
type RecommendationSource interface {
	Recommend(ctx context.Context, uid string) ([]models.Recommendation, error)
}

// Doer sends a request. *network.Client satisfies it.
type Doer interface {
	Do(req *fhttp.Request) (*fhttp.Response, error)
}
