package scraper

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jimezsa/jobportal/internal/models"
)

// parseJSONLDJobs extracts schema.org JobPosting entries from an HTML page.
func parseJSONLDJobs(doc *goquery.Document) []models.Job {
	var jobs []models.Job
	seen := map[string]struct{}{}

	doc.Find("script[type='application/ld+json']").Each(func(_ int, s *goquery.Selection) {
		data, err := decodeJSONLD(s.Text())
		if err != nil {
			return
		}

		for _, job := range extractJobsFromJSONLD(data) {
			key := job.URL
			if key == "" {
				key = strings.ToLower(job.Title + "|" + job.Company + "|" + job.Location)
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			jobs = append(jobs, job)
		}
	})

	return jobs
}

func decodeJSONLD(raw string) (any, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "<!--")
	raw = strings.TrimSuffix(raw, "-->")
	raw = strings.ReplaceAll(raw, "\u2028", "")
	raw = strings.ReplaceAll(raw, "\u2029", "")

	var data any
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &data); err != nil {
		return nil, err
	}
	return data, nil
}

func extractJobsFromJSONLD(data any) []models.Job {
	var jobs []models.Job

	switch value := data.(type) {
	case []any:
		for _, item := range value {
			jobs = append(jobs, extractJobsFromJSONLD(item)...)
		}
	case map[string]any:
		switch strings.ToLower(stringValue(value["@type"], value["type"])) {
		case "jobposting":
			return append(jobs, jobFromJobPosting(value))
		case "itemlist":
			jobs = append(jobs, extractJobsFromJSONLD(value["itemListElement"])...)
		case "listitem":
			jobs = append(jobs, extractJobsFromJSONLD(value["item"])...)
		}
		if graph, ok := value["@graph"]; ok {
			jobs = append(jobs, extractJobsFromJSONLD(graph)...)
		}
		if main, ok := value["mainEntity"]; ok {
			jobs = append(jobs, extractJobsFromJSONLD(main)...)
		}
	}

	return jobs
}

func jobFromJobPosting(value map[string]any) models.Job {
	job := models.Job{
		Title:           stringValue(value["title"], value["name"]),
		Company:         stringValue(mapValue(value["hiringOrganization"], "name")),
		Location:        locationFromJSONLD(value["jobLocation"]),
		JobType:         strings.ToLower(stringValue(value["employmentType"])),
		ExperienceLevel: stringValue(value["experienceRequirements"]),
		DatePosted:      stringValue(value["datePosted"]),
		Description:     cleanText(stringValue(value["description"])),
		URL:             stringValue(value["url"], value["@id"]),
	}

	if salary := mapValue(value["baseSalary"], "value"); salary != nil {
		job.Salary = models.ParseSalary(mapValue(salary, "value"))
		if !job.Salary.Valid {
			job.Salary = models.ParseSalary(mapValue(salary, "minValue"))
		}
		job.MaxAmount = models.ParseSalary(mapValue(salary, "maxValue"))
	}

	// Telecommute postings carry the same sentinel the scrape service uses.
	if strings.EqualFold(stringValue(value["jobLocationType"]), "TELECOMMUTE") {
		job.IsRemote = models.NewRemoteFlag("yes")
	}
	return job
}

func locationFromJSONLD(value any) string {
	switch v := value.(type) {
	case []any:
		var parts []string
		for _, item := range v {
			if loc := locationFromJSONLD(item); loc != "" {
				parts = append(parts, loc)
			}
		}
		return strings.Join(parts, "; ")
	case map[string]any:
		if address, ok := v["address"].(map[string]any); ok {
			return joinAddress(address)
		}
		return joinAddress(v)
	case string:
		return v
	}
	return ""
}

func joinAddress(value map[string]any) string {
	parts := []string{
		stringValue(value["addressLocality"]),
		stringValue(value["addressRegion"]),
		stringValue(value["addressCountry"]),
	}
	var cleaned []string
	for _, part := range parts {
		if part != "" {
			cleaned = append(cleaned, part)
		}
	}
	return strings.Join(cleaned, ", ")
}
