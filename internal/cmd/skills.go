package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/jimezsa/jobportal/internal/export"
	"github.com/jimezsa/jobportal/internal/scraper"
	"github.com/jimezsa/jobportal/internal/skills"
)

type SkillsCmd struct {
	UID     string `arg:"" help:"User id known to the skill-gap service."`
	Proxies string `help:"Comma-separated proxy URLs." env:"JOBPORTAL_PROXIES"`
}

func (s *SkillsCmd) Run(ctx *Context) error {
	source, err := ctx.skillGapSource(s.Proxies)
	if err != nil {
		return err
	}

	result, err := source.SkillGap(context.Background(), s.UID)
	if errors.Is(err, scraper.ErrNotFound) {
		return fmt.Errorf("user %s not found", s.UID)
	}
	if err != nil {
		return fmt.Errorf("fetch skill gap: %w", err)
	}

	format := export.FormatTable
	if ctx.JSONOutput {
		format = export.FormatJSON
	}
	return export.WriteSkillGap(ctx.Out, skills.Analyze(result), format)
}
