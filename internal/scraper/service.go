package scraper

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/PuerkitoBio/goquery"
	"github.com/jimezsa/jobportal/internal/models"
)

const DefaultResultsWanted = 20

// Service calls the scrape service: GET /scrape_jobs?search_term&location.
type Service struct {
	client  Doer
	baseURL string
}

func NewService(client Doer, baseURL string) *Service {
	return &Service{client: client, baseURL: baseURL}
}

func (s *Service) Search(ctx context.Context, params models.SearchParams) ([]models.Job, error) {
	res, err := fetch(ctx, s.client, buildScrapeURL(s.baseURL, params), nil)
	if err != nil {
		return nil, err
	}
	if res.status >= 400 {
		return nil, fmt.Errorf("%w: scrape service http %d", ErrUpstream, res.status)
	}

	if res.contentType == "text/html" {
		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(res.body))
		if err != nil {
			return nil, fmt.Errorf("%w: parse html: %v", ErrUpstream, err)
		}
		jobs := parseJSONLDJobs(doc)
		if len(jobs) == 0 {
			return nil, ErrNoJobs
		}
		return jobs, nil
	}

	return decodeJobs(res.body)
}

func buildScrapeURL(base string, params models.SearchParams) string {
	values := url.Values{}
	values.Set("search_term", params.Keyword)
	values.Set("location", params.Location)
	wanted := params.ResultsWanted
	if wanted <= 0 {
		wanted = DefaultResultsWanted
	}
	values.Set("results_wanted", strconv.Itoa(wanted))
	return joinURL(base, "/scrape_jobs", values)
}
