package cmd

import (
	"io"

	"github.com/jimezsa/jobportal/internal/config"
	"github.com/jimezsa/jobportal/internal/network"
	"github.com/jimezsa/jobportal/internal/scraper"
	"github.com/jimezsa/jobportal/internal/ui"
	"github.com/rs/zerolog"
)

type Context struct {
	Out        io.Writer
	Err        io.Writer
	UI         *ui.UI
	Config     config.Config
	ConfigDir  string
	Logger     zerolog.Logger
	Verbose    bool
	JSONOutput bool
	PlainText  bool
	Version    string
	ColorMode  ui.ColorMode

	// Jobs, SkillGaps and Recommendations replace the HTTP collaborators when set.
	Jobs            scraper.Scraper
	SkillGaps       scraper.SkillGapSource
	Recommendations scraper.RecommendationSource

	upstream *network.Client
}

// upstreamClient returns the HTTP client shared by every upstream source,
// routed through proxies when any are configured. It is built once.
func (ctx *Context) upstreamClient(proxiesFlag string) (*network.Client, error) {
	if ctx.upstream != nil {
		return ctx.upstream, nil
	}
	proxies, err := config.LoadProxies(proxiesFlag)
	if err != nil {
		return nil, err
	}

	var rotator *network.Rotator
	if len(proxies) > 0 {
		rotator, err = network.NewRotator(proxies, network.DefaultBenchDuration)
		if err != nil {
			return nil, err
		}
		ctx.Logger.Debug().Int("proxies", rotator.Len()).Msg("proxy rotation enabled")
	}
	client, err := network.NewClient(rotator, ctx.Config.Timeout())
	if err != nil {
		return nil, err
	}
	ctx.upstream = client
	return client, nil
}

func (ctx *Context) jobSource(proxiesFlag string) (scraper.Scraper, error) {
	if ctx.Jobs != nil {
		return ctx.Jobs, nil
	}
	client, err := ctx.upstreamClient(proxiesFlag)
	if err != nil {
		return nil, err
	}
	return scraper.NewService(client, ctx.Config.ScrapeURL), nil
}

func (ctx *Context) skillGapSource(proxiesFlag string) (scraper.SkillGapSource, error) {
	if ctx.SkillGaps != nil {
		return ctx.SkillGaps, nil
	}
	client, err := ctx.upstreamClient(proxiesFlag)
	if err != nil {
		return nil, err
	}
	return scraper.NewSkillGapService(client, ctx.Config.SkillGapURL), nil
}

func (ctx *Context) recommendationSource(proxiesFlag string) (scraper.RecommendationSource, error) {
	if ctx.Recommendations != nil {
		return ctx.Recommendations, nil
	}
	client, err := ctx.upstreamClient(proxiesFlag)
	if err != nil {
		return nil, err
	}
	return scraper.NewRecommendationService(client, ctx.Config.RecommendURL), nil
}
