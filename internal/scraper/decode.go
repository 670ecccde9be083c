package scraper

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jimezsa/jobportal/internal/models"
)

// decodeJobs accepts the shapes the scrape service answers with: a JSON
// array of postings, an object wrapping them under "jobs", or an object
// carrying only a "message" when nothing was found.
func decodeJobs(data []byte) ([]models.Job, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, ErrNoJobs
	}

	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrUpstream, err)
	}

	var records []any
	switch value := decoded.(type) {
	case []any:
		records = value
	case map[string]any:
		list, ok := value["jobs"].([]any)
		if !ok {
			if _, hasMessage := value["message"]; hasMessage {
				return nil, ErrNoJobs
			}
			return nil, fmt.Errorf("%w: unexpected response object", ErrUpstream)
		}
		records = list
	case nil:
		return nil, ErrNoJobs
	default:
		return nil, fmt.Errorf("%w: unexpected response type %T", ErrUpstream, decoded)
	}

	jobs := make([]models.Job, 0, len(records))
	for _, record := range records {
		fields, ok := record.(map[string]any)
		if !ok {
			continue
		}
		jobs = append(jobs, jobFromRecord(fields))
	}
	if len(jobs) == 0 {
		return nil, ErrNoJobs
	}
	return jobs, nil
}

// jobFromRecord maps one posting. Every value may arrive stringified and
// missing values may arrive as "".
func jobFromRecord(fields map[string]any) models.Job {
	salary := models.ParseSalary(fields["salary"])
	if !salary.Valid {
		salary = models.ParseSalary(fields["min_amount"])
	}

	return models.Job{
		Title:           stringValue(fields["title"]),
		Company:         stringValue(fields["company"], fields["company_name"]),
		Location:        stringValue(fields["location"]),
		JobType:         stringValue(fields["job_type"]),
		Salary:          salary,
		MaxAmount:       models.ParseSalary(fields["max_amount"]),
		ExperienceLevel: stringValue(fields["experience_level"], fields["job_level"]),
		IsRemote:        models.NewRemoteFlag(fields["is_remote"]),
		DatePosted:      stringValue(fields["date_posted"]),
		Description:     stringValue(fields["description"]),
		URL:             stringValue(fields["job_url"], fields["url"]),
		Site:            stringValue(fields["site"]),
		CompanyLogo:     stringValue(fields["company_logo"]),
	}
}
