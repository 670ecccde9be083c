package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/jimezsa/jobportal/internal/models"
	"github.com/muesli/termenv"
)

type Format string

const (
	FormatTable    Format = "table"
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "md"
	FormatTSV      Format = "tsv"
)

// ParseFormat maps a flag value to a Format; empty means table.
func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case "", FormatTable:
		return FormatTable, nil
	case FormatCSV:
		return FormatCSV, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatMarkdown:
		return FormatMarkdown, nil
	case FormatTSV:
		return FormatTSV, nil
	}
	return "", fmt.Errorf("unsupported format %q", value)
}

type WriteOptions struct {
	ColorEnabled bool
	Hyperlinks   bool
	LinkStyle    LinkStyle
	// ShowScore adds the relevance score column.
	ShowScore bool
}

type LinkStyle string

const (
	LinkStyleShort LinkStyle = "short"
	LinkStyleFull  LinkStyle = "full"
)

func WriteJobs(w io.Writer, jobs []models.ScoredJob, format Format, opts WriteOptions) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, jobs)
	case FormatCSV:
		return writeCSV(w, jobs, ',')
	case FormatTSV:
		return writeCSV(w, jobs, '\t')
	case FormatMarkdown:
		return writeMarkdown(w, jobs)
	default:
		return writeTable(w, jobs, opts)
	}
}

func writeJSON(w io.Writer, jobs []models.ScoredJob) error {
	if jobs == nil {
		jobs = []models.ScoredJob{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jobs)
}

func writeCSV(w io.Writer, jobs []models.ScoredJob, delim rune) error {
	writer := csv.NewWriter(w)
	writer.Comma = delim
	if err := writer.Write(csvHeader()); err != nil {
		return err
	}
	for _, job := range jobs {
		if err := writer.Write(csvRow(job)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func writeTable(w io.Writer, jobs []models.ScoredJob, opts WriteOptions) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(tableHeader(opts), "\t"))
	output := termenv.NewOutput(w)
	for _, job := range jobs {
		fmt.Fprintln(tw, strings.Join(tableRow(job, output, opts), "\t"))
	}
	return tw.Flush()
}

func writeMarkdown(w io.Writer, jobs []models.ScoredJob) error {
	if len(jobs) == 0 {
		_, err := fmt.Fprintln(w, "No results.")
		return err
	}
	for _, job := range jobs {
		urlLine := "  URL: -"
		if link := safe(job.URL); link != "" {
			urlLine = fmt.Sprintf("  URL: [Open listing](<%s>)", link)
		}
		lines := []string{
			fmt.Sprintf("- **%s** (%s)", safe(job.Title), safe(job.Company)),
			fmt.Sprintf("  Location: %s", orDash(job.Location)),
			urlLine,
		}
		if job.IsRemote.IsYes() {
			lines = append(lines, "  Remote: yes")
		}
		if job.JobType != "" {
			lines = append(lines, fmt.Sprintf("  Type: %s", safe(job.JobType)))
		}
		if job.ExperienceLevel != "" {
			lines = append(lines, fmt.Sprintf("  Experience: %s", safe(job.ExperienceLevel)))
		}
		if job.Salary.Valid {
			lines = append(lines, fmt.Sprintf("  Salary: %s", salaryString(job.Salary)))
		}
		if job.DatePosted != "" {
			lines = append(lines, fmt.Sprintf("  Posted: %s", safe(job.DatePosted)))
		}
		if job.Score > 0 {
			lines = append(lines, fmt.Sprintf("  Score: %d", job.Score))
		}
		for _, line := range lines {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

func csvHeader() []string {
	return []string{
		"score",
		"title",
		"company",
		"location",
		"job_type",
		"experience_level",
		"salary",
		"max_amount",
		"is_remote",
		"date_posted",
		"site",
		"job_url",
	}
}

func csvRow(job models.ScoredJob) []string {
	return []string{
		strconv.Itoa(job.Score),
		safe(job.Title),
		safe(job.Company),
		safe(job.Location),
		safe(job.JobType),
		safe(job.ExperienceLevel),
		salaryString(job.Salary),
		salaryString(job.MaxAmount),
		remoteString(job.IsRemote),
		safe(job.DatePosted),
		safe(job.Site),
		safe(job.URL),
	}
}

func salaryString(s models.Salary) string {
	if !s.Valid {
		return ""
	}
	return strconv.FormatFloat(s.Value, 'f', -1, 64)
}

func remoteString(r models.RemoteFlag) string {
	if r.Raw() == nil {
		return ""
	}
	return fmt.Sprint(r.Raw())
}

func safe(value string) string {
	return strings.TrimSpace(value)
}

func orDash(value string) string {
	if value = safe(value); value == "" {
		return "-"
	}
	return value
}

func tableHeader(opts WriteOptions) []string {
	header := []string{"title", "company", "location", "salary", "url"}
	if opts.ShowScore {
		header = append([]string{"score"}, header...)
	}
	return header
}

func tableRow(job models.ScoredJob, output *termenv.Output, opts WriteOptions) []string {
	const linkColor = "#87CEEB"

	link := safe(job.URL)
	displayURL := "-"
	if link != "" {
		displayURL = link
		if opts.LinkStyle == LinkStyleShort && opts.Hyperlinks {
			displayURL = shortURLLabel(link)
		}
		if opts.ColorEnabled {
			displayURL = output.String(displayURL).Foreground(output.Color(linkColor)).String()
		}
		if opts.Hyperlinks {
			displayURL = hyperlink(link, displayURL)
		}
	}

	salary := salaryString(job.Salary)
	if salary == "" {
		salary = "-"
	}
	row := []string{
		safe(job.Title),
		orDash(job.Company),
		orDash(job.Location),
		salary,
		displayURL,
	}
	if opts.ShowScore {
		row = append([]string{strconv.Itoa(job.Score)}, row...)
	}
	return row
}

func hyperlink(url string, text string) string {
	const esc = "\x1b"
	return esc + "]8;;" + url + esc + "\\" + text + esc + "]8;;" + esc + "\\"
}

func shortURLLabel(raw string) string {
	const maxLen = 60
	label := strings.TrimSpace(raw)
	if parsed, err := url.Parse(raw); err == nil {
		host := strings.TrimPrefix(parsed.Host, "www.")
		if host != "" {
			label = host + parsed.Path
		}
	}
	label = strings.TrimSpace(label)
	if label == "" {
		label = raw
	}
	if len(label) > maxLen {
		label = label[:maxLen-3] + "..."
	}
	return label
}
