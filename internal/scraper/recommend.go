package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/jimezsa/jobportal/internal/models"
)

// RecommendationService calls GET /api/recommend_jobs/{uid}.
type RecommendationService struct {
	client  Doer
	baseURL string
}

func NewRecommendationService(client Doer, baseURL string) *RecommendationService {
	return &RecommendationService{client: client, baseURL: baseURL}
}

func (s *RecommendationService) Recommend(ctx context.Context, uid string) ([]models.Recommendation, error) {
	target := joinURL(s.baseURL, "/api/recommend_jobs/"+url.PathEscape(uid), nil)
	res, err := fetch(ctx, s.client, target, nil)
	if err != nil {
		return nil, err
	}
	switch {
	case res.status == 404:
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, uid)
	case res.status >= 400:
		return nil, fmt.Errorf("%w: recommendation service http %d", ErrUpstream, res.status)
	}
	return decodeRecommendations(res.body)
}

// decodeRecommendations accepts a bare array or an object wrapping it under
// "recommendations" or "jobs". An empty body means no recommendations.
func decodeRecommendations(data []byte) ([]models.Recommendation, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return []models.Recommendation{}, nil
	}

	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, fmt.Errorf("%w: decode recommendations: %v", ErrUpstream, err)
	}

	var records []any
	switch value := decoded.(type) {
	case []any:
		records = value
	case map[string]any:
		list, ok := value["recommendations"].([]any)
		if !ok {
			list, ok = value["jobs"].([]any)
		}
		if !ok {
			return nil, fmt.Errorf("%w: unexpected recommendation object", ErrUpstream)
		}
		records = list
	case nil:
		return []models.Recommendation{}, nil
	default:
		return nil, fmt.Errorf("%w: unexpected recommendation type %T", ErrUpstream, decoded)
	}

	recs := make([]models.Recommendation, 0, len(records))
	for _, record := range records {
		fields, ok := record.(map[string]any)
		if !ok {
			continue
		}
		recs = append(recs, models.Recommendation{
			ID:         stringValue(fields["id"]),
			Title:      stringValue(fields["title"]),
			Company:    stringValue(fields["company"], fields["company_name"]),
			Location:   stringValue(fields["location"]),
			URL:        stringValue(fields["url"], fields["job_url"]),
			Skills:     stringList(fields["skills"]),
			MatchScore: models.ParseSalary(fields["match_score"]).OrZero(),
		})
	}
	return recs, nil
}

func stringList(value any) []string {
	items, ok := value.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := stringValue(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}
