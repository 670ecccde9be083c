package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/jimezsa/jobportal/internal/models"
)

// SkillGapService calls GET /api/skill_gap_analysis/{uid}.
type SkillGapService struct {
	client  Doer
	baseURL string
}

func NewSkillGapService(client Doer, baseURL string) *SkillGapService {
	return &SkillGapService{client: client, baseURL: baseURL}
}

func (s *SkillGapService) SkillGap(ctx context.Context, uid string) (models.SkillGapResult, error) {
	target := joinURL(s.baseURL, "/api/skill_gap_analysis/"+url.PathEscape(uid), nil)
	res, err := fetch(ctx, s.client, target, nil)
	if err != nil {
		return models.SkillGapResult{}, err
	}
	switch {
	case res.status == 404:
		return models.SkillGapResult{}, fmt.Errorf("%w: user %s", ErrNotFound, uid)
	case res.status >= 400:
		return models.SkillGapResult{}, fmt.Errorf("%w: skill gap service http %d", ErrUpstream, res.status)
	}
	return decodeSkillGap(res.body)
}

// decodeSkillGap also accepts the payload double-encoded as a JSON string.
func decodeSkillGap(data []byte) (models.SkillGapResult, error) {
	var encoded string
	if err := json.Unmarshal(data, &encoded); err == nil {
		data = []byte(encoded)
	}

	var result models.SkillGapResult
	if err := json.Unmarshal(data, &result); err != nil {
		return models.SkillGapResult{}, fmt.Errorf("%w: decode skill gap: %v", ErrUpstream, err)
	}
	return result, nil
}
