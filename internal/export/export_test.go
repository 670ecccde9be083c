package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/jimezsa/jobportal/internal/models"
	"github.com/jimezsa/jobportal/internal/paginate"
	"github.com/jimezsa/jobportal/internal/skills"
)

func sampleJobs() []models.ScoredJob {
	return []models.ScoredJob{
		{
			Job: models.Job{
				Title:      "Software Engineer",
				Company:    "Acme",
				Location:   "New York, NY",
				JobType:    "fulltime",
				Salary:     models.NewSalary(125000.5),
				IsRemote:   models.NewRemoteFlag("yes"),
				DatePosted: "2024-03-01",
				URL:        "https://www.example.com/jobs/1",
			},
			Score: 200,
		},
		{Job: models.Job{Title: "Analyst", IsRemote: models.NewRemoteFlag(false)}},
	}
}

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{"": FormatTable, "CSV": FormatCSV, "md": FormatMarkdown, " json ": FormatJSON}
	for input, want := range cases {
		got, err := ParseFormat(input)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q) = %q, %v, want %q", input, got, err, want)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Fatalf("ParseFormat(xml) should fail")
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJobs(&buf, sampleJobs(), FormatCSV, WriteOptions{}); err != nil {
		t.Fatalf("WriteJobs() error = %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("len(records) = %d, want 3", len(records))
	}
	row := records[1]
	if row[0] != "200" || row[1] != "Software Engineer" || row[6] != "125000.5" || row[8] != "yes" {
		t.Fatalf("row = %v", row)
	}
	if records[2][6] != "" || records[2][8] != "false" {
		t.Fatalf("row = %v, want empty salary and raw remote", records[2])
	}
}

func TestWriteJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJobs(&buf, nil, FormatJSON, WriteOptions{}); err != nil {
		t.Fatalf("WriteJobs() error = %v", err)
	}
	var decoded []any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded == nil || len(decoded) != 0 {
		t.Fatalf("decoded = %v, want empty array", decoded)
	}
}

func TestWriteMarkdown(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJobs(&buf, sampleJobs(), FormatMarkdown, WriteOptions{}); err != nil {
		t.Fatalf("WriteJobs() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"- **Software Engineer** (Acme)", "Remote: yes", "Salary: 125000.5", "Score: 200", "Location: -"} {
		if !strings.Contains(out, want) {
			t.Fatalf("markdown missing %q:\n%s", want, out)
		}
	}
}

func TestWriteTableScoreColumn(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJobs(&buf, sampleJobs(), FormatTable, WriteOptions{ShowScore: true}); err != nil {
		t.Fatalf("WriteJobs() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if !strings.HasPrefix(lines[0], "score") {
		t.Fatalf("header = %q, want score first", lines[0])
	}
	if !strings.Contains(lines[1], "https://www.example.com/jobs/1") {
		t.Fatalf("row = %q, want full url", lines[1])
	}
}

func TestShortURLLabel(t *testing.T) {
	got := shortURLLabel("https://www.example.com/jobs/1?x=1")
	if got != "example.com/jobs/1" {
		t.Fatalf("shortURLLabel() = %q, want %q", got, "example.com/jobs/1")
	}
}

func TestPageLine(t *testing.T) {
	got := PageLine(paginate.NewWindow(6, 12), nil, false)
	if got != "1 … 4 5 [6] 7 8 … 12" {
		t.Fatalf("PageLine() = %q", got)
	}
}

func TestWritePageFooter(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePageFooter(&buf, 3, paginate.NewWindow(1, 1), false); err != nil {
		t.Fatalf("WritePageFooter() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("single page footer = %q, want empty", buf.String())
	}

	if err := WritePageFooter(&buf, 13, paginate.NewWindow(2, 3), false); err != nil {
		t.Fatalf("WritePageFooter() error = %v", err)
	}
	if !strings.Contains(buf.String(), "13 jobs, page 2 of 3\n1 [2] 3\n") {
		t.Fatalf("footer = %q", buf.String())
	}
}

func TestWriteSkillGap(t *testing.T) {
	analysis := skills.Analyze(models.SkillGapResult{
		UserSkills:    []string{"python", "crm"},
		MissingSkills: []string{"docker"},
		RecommendedCourses: []models.Course{
			{Name: "Docker Deep Dive", URL: "https://courses.test/docker", ForSkill: "docker"},
		},
	})

	var buf bytes.Buffer
	if err := WriteSkillGap(&buf, analysis, FormatTable); err != nil {
		t.Fatalf("WriteSkillGap() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"Your skills\n  Tech: Python\n  Sales: Crm\n",
		"Trending skills\n  none\n",
		"Missing skills\n  Tech: Docker\n",
		"  Docker Deep Dive (Docker) https://courses.test/docker\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteRecommendations(t *testing.T) {
	recs := []models.Recommendation{
		{Title: "Backend Engineer", Company: "Acme", URL: "https://jobs.test/7", Skills: []string{"go", "sql"}, MatchScore: 0.82},
		{Title: "Data Analyst"},
	}

	var buf bytes.Buffer
	if err := WriteRecommendations(&buf, recs, FormatTable); err != nil {
		t.Fatalf("WriteRecommendations() error = %v", err)
	}
	want := "Backend Engineer (Acme) match 0.82 [go, sql] https://jobs.test/7\nData Analyst\n"
	if buf.String() != want {
		t.Fatalf("output = %q, want %q", buf.String(), want)
	}

	buf.Reset()
	if err := WriteRecommendations(&buf, nil, FormatJSON); err != nil {
		t.Fatalf("WriteRecommendations() error = %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Fatalf("json output = %q, want []", buf.String())
	}
}
