package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jimezsa/jobportal/internal/server"
)

type ServeCmd struct {
	Addr    string `help:"Listen address (default from config)." env:"JOBPORTAL_LISTEN_ADDR"`
	Proxies string `help:"Comma-separated proxy URLs." env:"JOBPORTAL_PROXIES"`
}

func (s *ServeCmd) Run(ctx *Context) error {
	jobs, err := ctx.jobSource(s.Proxies)
	if err != nil {
		return err
	}
	gaps, err := ctx.skillGapSource(s.Proxies)
	if err != nil {
		return err
	}
	recs, err := ctx.recommendationSource(s.Proxies)
	if err != nil {
		return err
	}

	cfg := ctx.Config
	addr := firstNonEmpty(s.Addr, cfg.ListenAddr)

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx.Logger.Info().
		Str("scrape_url", cfg.ScrapeURL).
		Str("skill_gap_url", cfg.SkillGapURL).
		Str("recommend_url", cfg.RecommendURL).
		Int("page_size", cfg.PageSize).
		Msg("starting job portal")
	return server.NewServer(cfg, jobs, gaps, recs, ctx.Logger).Start(runCtx, addr)
}
