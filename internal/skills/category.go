package skills

import "strings"

type Category string

const (
	CategoryTech      Category = "Tech"
	CategorySales     Category = "Sales"
	CategoryMarketing Category = "Marketing"
	CategoryOther     Category = "Other"
)

// Rule maps a category to the substrings that identify it.
type Rule struct {
	Category Category
	Patterns []string
}

// Table is evaluated top to bottom; the first rule with a matching pattern wins.
var Table = []Rule{
	{
		Category: CategoryTech,
		Patterns: []string{
			"python", "java", "javascript", "html", "css", "react", "angular", "node",
			"sql", "aws", "azure", "docker", "kubernetes", "git", "api", "database",
			"cloud", "programming",
		},
	},
	{
		Category: CategorySales,
		Patterns: []string{
			"sales", "crm", "lead", "prospect", "account", "client", "negotiation",
			"closing", "pipeline", "forecasting",
		},
	},
	{
		Category: CategoryMarketing,
		Patterns: []string{
			"marketing", "seo", "content", "social media", "campaign", "brand",
			"analytics", "audience", "engagement",
		},
	},
}

// Categories lists every category in display order, Other last.
func Categories() []Category {
	out := make([]Category, 0, len(Table)+1)
	for _, rule := range Table {
		out = append(out, rule.Category)
	}
	return append(out, CategoryOther)
}

// Categorize assigns a skill label to exactly one category using
// case-insensitive substring matches against Table.
func Categorize(skill string) Category {
	lower := strings.ToLower(skill)
	for _, rule := range Table {
		if containsAny(lower, rule.Patterns) {
			return rule.Category
		}
	}
	return CategoryOther
}

func containsAny(text string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}
