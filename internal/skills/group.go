package skills

import "github.com/jimezsa/jobportal/internal/models"

// Group holds the display labels of the skills in one category.
type Group struct {
	Category Category `json:"category"`
	Skills   []string `json:"skills"`
}

// GroupSkills buckets skills by category, in Categories order. Labels are
// title-cased for display; categorization uses the raw label. Empty
// categories are omitted.
func GroupSkills(skills []string) []Group {
	buckets := make(map[Category][]string, len(Table)+1)
	for _, skill := range skills {
		category := Categorize(skill)
		buckets[category] = append(buckets[category], TitleCase(skill))
	}

	groups := make([]Group, 0, len(buckets))
	for _, category := range Categories() {
		if labels, ok := buckets[category]; ok {
			groups = append(groups, Group{Category: category, Skills: labels})
		}
	}
	return groups
}

// Analysis is a skill-gap result prepared for display.
type Analysis struct {
	UserSkills         []Group         `json:"user_skills"`
	TrendingSkills     []Group         `json:"trending_skills"`
	MissingSkills      []Group         `json:"missing_skills"`
	RecommendedCourses []models.Course `json:"recommended_courses"`
}

func Analyze(result models.SkillGapResult) Analysis {
	courses := result.RecommendedCourses
	if courses == nil {
		courses = []models.Course{}
	}
	return Analysis{
		UserSkills:         GroupSkills(result.UserSkills),
		TrendingSkills:     GroupSkills(result.TrendingSkills),
		MissingSkills:      GroupSkills(result.MissingSkills),
		RecommendedCourses: courses,
	}
}
