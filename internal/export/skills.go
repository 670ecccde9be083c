package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jimezsa/jobportal/internal/skills"
)

// WriteSkillGap prints a categorized skill-gap analysis. JSON output is the
// analysis itself; every other format is a plain sectioned listing.
func WriteSkillGap(w io.Writer, analysis skills.Analysis, format Format) error {
	if format == FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(analysis)
	}

	sections := []struct {
		title  string
		groups []skills.Group
	}{
		{"Your skills", analysis.UserSkills},
		{"Trending skills", analysis.TrendingSkills},
		{"Missing skills", analysis.MissingSkills},
	}
	for _, section := range sections {
		if err := writeGroups(w, section.title, section.groups); err != nil {
			return err
		}
	}

	if len(analysis.RecommendedCourses) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "Recommended courses"); err != nil {
		return err
	}
	for _, course := range analysis.RecommendedCourses {
		line := "  " + safe(course.Name)
		if course.ForSkill != "" {
			line += " (" + skills.TitleCase(course.ForSkill) + ")"
		}
		if course.URL != "" {
			line += " " + safe(course.URL)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func writeGroups(w io.Writer, title string, groups []skills.Group) error {
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}
	if len(groups) == 0 {
		_, err := fmt.Fprintln(w, "  none")
		return err
	}
	for _, group := range groups {
		if _, err := fmt.Fprintf(w, "  %s: %s\n", group.Category, strings.Join(group.Skills, ", ")); err != nil {
			return err
		}
	}
	return nil
}
