package skills

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// TitleCase capitalizes the first letter of each space-separated word and
// lowercases the rest. Spacing is kept as given. Used for display only.
func TitleCase(skill string) string {
	words := strings.Split(skill, " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		first, size := utf8.DecodeRuneInString(word)
		words[i] = string(unicode.ToUpper(first)) + strings.ToLower(word[size:])
	}
	return strings.Join(words, " ")
}
