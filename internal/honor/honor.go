// Package honor flags questions that look like homework requests so the CLI
// can show the honor-code notice before proceeding.
package honor

import "strings"

var homeworkKeywords = []string{
	"homework",
	"assignment",
	"problem set",
	"pset",
	"task",
	"exercise",
	"solve",
	"implement",
}

// IsHomeworkRelated reports whether the question mentions any homework
// keyword, case-insensitively.
func IsHomeworkRelated(question string) bool {
	q := strings.ToLower(question)
	for _, keyword := range homeworkKeywords {
		if strings.Contains(q, keyword) {
			return true
		}
	}
	return false
}
