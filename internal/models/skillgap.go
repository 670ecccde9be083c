package models

import "encoding/json"

// SkillGapResult is the payload of the skill-gap analysis service.
type SkillGapResult struct {
	UserSkills         []string `json:"user_skills"`
	TrendingSkills     []string `json:"trending_skills"`
	MissingSkills      []string `json:"missing_skills"`
	RecommendedCourses []Course `json:"recommended_courses"`
}

// Course is passed through untouched; rating and difficulty are whatever the
// service sent (number, string or null).
type Course struct {
	Name       string          `json:"name"`
	Rating     json.RawMessage `json:"rating,omitempty"`
	Difficulty json.RawMessage `json:"difficulty,omitempty"`
	URL        string          `json:"url"`
	Tags       []string        `json:"tags,omitempty"`
	ForSkill   string          `json:"for_skill,omitempty"`
}
