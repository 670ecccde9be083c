package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jimezsa/jobportal/internal/export"
	"github.com/jimezsa/jobportal/internal/models"
	"github.com/jimezsa/jobportal/internal/paginate"
	"github.com/jimezsa/jobportal/internal/scraper"
	"github.com/jimezsa/jobportal/internal/search"
	"github.com/muesli/termenv"
)

const noJobsNotice = "No jobs found. Try adjusting your search criteria."

type SearchCmd struct {
	Keyword    string `arg:"" optional:"" help:"Search keyword (default from config)."`
	Location   string `help:"Job location; also filters results by location."`
	JobType    string `help:"Job type filter, e.g. fulltime, parttime, contract."`
	Salary     string `help:"Minimum salary."`
	Experience string `help:"Experience level filter."`
	Remote     bool   `help:"Remote-only roles."`
	Sort       string `help:"Sort by attribute instead of relevance: salary_high or newest." enum:",salary_high,newest" default:""`
	Page       int    `help:"Page number." default:"1"`
	PageSize   int    `help:"Results per page (default from config)."`
	Format     string `help:"Output format: table, csv, tsv, json, md." enum:",table,csv,tsv,json,md" default:""`
	Links      string `help:"Table link display: short or full." enum:"short,full" default:"full"`
	Output     string `name:"output" short:"o" help:"Write output to a file."`
	Proxies    string `help:"Comma-separated proxy URLs." env:"JOBPORTAL_PROXIES"`
}

func (s *SearchCmd) criteria(location string) models.FilterCriteria {
	return models.FilterCriteria{
		Location:        strings.TrimSpace(location),
		JobType:         strings.TrimSpace(s.JobType),
		MinSalary:       models.ParseSalaryString(s.Salary),
		ExperienceLevel: strings.TrimSpace(s.Experience),
		RemoteOnly:      s.Remote,
		SortBy:          models.ParseSortMode(s.Sort),
	}
}

func (s *SearchCmd) Run(ctx *Context) error {
	cfg := ctx.Config
	keyword := firstNonEmpty(s.Keyword, cfg.DefaultKeyword)
	location := firstNonEmpty(s.Location, cfg.DefaultLocation)

	source, err := ctx.jobSource(s.Proxies)
	if err != nil {
		return err
	}

	stopIndicator := startSearchIndicator(ctx)
	jobs, err := source.Search(context.Background(), models.SearchParams{
		Keyword:       keyword,
		Location:      location,
		ResultsWanted: cfg.ResultsWanted,
	})
	if stopIndicator != nil {
		stopIndicator()
	}
	if errors.Is(err, scraper.ErrNoJobs) {
		ctx.UI.Noticef(noJobsNotice)
		return nil
	}
	if err != nil {
		return fmt.Errorf("fetch jobs: %w", err)
	}
	ctx.Logger.Debug().Int("fetched", len(jobs)).Str("keyword", keyword).Msg("scrape complete")

	ranked := rankJobs(jobs, s.criteria(location), keyword)
	if len(ranked) == 0 {
		ctx.UI.Noticef(noJobsNotice)
		return nil
	}

	result := paginate.New(ranked, max(s.Page, 1), defaultInt(s.PageSize, cfg.PageSize))
	return s.write(ctx, result)
}

// rankJobs runs the attribute pipeline when an explicit sort is requested,
// otherwise the relevance pipeline.
func rankJobs(jobs []models.Job, criteria models.FilterCriteria, keyword string) []models.ScoredJob {
	if criteria.SortBy != models.SortNone {
		sorted := search.Attribute(jobs, criteria)
		out := make([]models.ScoredJob, 0, len(sorted))
		for _, job := range sorted {
			out = append(out, models.ScoredJob{Job: job})
		}
		return out
	}
	return search.Keyword(jobs, criteria, keyword)
}

func (s *SearchCmd) write(ctx *Context, result paginate.Result[models.ScoredJob]) error {
	format, err := resolveFormat(ctx, s.Format, s.Output)
	if err != nil {
		return err
	}

	writer := ctx.Out
	if s.Output != "" {
		file, err := os.Create(s.Output)
		if err != nil {
			return err
		}
		defer file.Close()
		writer = file
	}

	colorEnabled := ctx.UI != nil && ctx.UI.ColorEnabled
	hyperlinks := colorEnabled && isTTY(writer)
	linkStyle := export.LinkStyleShort
	if strings.EqualFold(s.Links, string(export.LinkStyleFull)) {
		linkStyle = export.LinkStyleFull
	}
	if err := export.WriteJobs(writer, result.Items, format, export.WriteOptions{
		ColorEnabled: colorEnabled,
		Hyperlinks:   hyperlinks,
		LinkStyle:    linkStyle,
		ShowScore:    s.Sort == "",
	}); err != nil {
		return err
	}

	if format == export.FormatTable {
		return export.WritePageFooter(writer, result.Total, result.Window, colorEnabled)
	}
	if result.TotalPages > 1 && ctx.Err != nil {
		fmt.Fprintf(ctx.Err, "page %d of %d (%d jobs)\n", result.Page, result.TotalPages, result.Total)
	}
	return nil
}

func resolveFormat(ctx *Context, format string, outputPath string) (export.Format, error) {
	if ctx.JSONOutput {
		return export.FormatJSON, nil
	}
	if ctx.PlainText {
		return export.FormatTSV, nil
	}
	if format != "" {
		return export.ParseFormat(format)
	}
	if outputPath != "" {
		return export.FormatCSV, nil
	}
	if isTTY(ctx.Out) {
		return export.FormatTable, nil
	}
	return export.FormatCSV, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

func defaultInt(value, fallback int) int {
	if value <= 0 {
		return fallback
	}
	return value
}

func isTTY(out io.Writer) bool {
	output := termenv.NewOutput(out)
	return output.ColorProfile() != termenv.Ascii
}

func startSearchIndicator(ctx *Context) func() {
	if ctx == nil || ctx.Err == nil || ctx.UI == nil {
		return nil
	}
	if !isTTY(ctx.Err) {
		return nil
	}

	done := make(chan struct{})
	stopped := make(chan struct{})

	go func() {
		defer close(stopped)
		start := time.Now()
		frames := []string{"|", "/", "-", "\\"}
		ticker := time.NewTicker(200 * time.Millisecond)
		defer ticker.Stop()
		index := 0

		for {
			select {
			case <-done:
				fmt.Fprint(ctx.Err, "\r\033[2K")
				return
			case <-ticker.C:
				seconds := int(time.Since(start).Seconds())
				frame := frames[index%len(frames)]
				fmt.Fprintf(ctx.Err, "\r\033[2KSearching... %ds %s", seconds, frame)
				index++
			}
		}
	}()

	return func() {
		close(done)
		<-stopped
	}
}
