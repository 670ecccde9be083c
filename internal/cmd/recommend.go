package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/jimezsa/jobportal/internal/export"
	"github.com/jimezsa/jobportal/internal/scraper"
)

const noRecommendationsNotice = "No job recommendations available at the moment."

type RecommendCmd struct {
	UID     string `arg:"" help:"User id known to the recommendation service."`
	Proxies string `help:"Comma-separated proxy URLs." env:"JOBPORTAL_PROXIES"`
}

func (r *RecommendCmd) Run(ctx *Context) error {
	source, err := ctx.recommendationSource(r.Proxies)
	if err != nil {
		return err
	}

	recs, err := source.Recommend(context.Background(), r.UID)
	if errors.Is(err, scraper.ErrNotFound) {
		return fmt.Errorf("user %s not found", r.UID)
	}
	if err != nil {
		return fmt.Errorf("fetch recommendations: %w", err)
	}

	format := export.FormatTable
	if ctx.JSONOutput {
		format = export.FormatJSON
	}
	if len(recs) == 0 && format != export.FormatJSON {
		ctx.UI.Noticef(noRecommendationsNotice)
		return nil
	}
	return export.WriteRecommendations(ctx.Out, recs, format)
}
