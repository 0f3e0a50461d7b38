package helper

import (
	"math"
	"regexp"
	"strings"
)

const defaultWPM = 200

var (
	htmlTagPattern   = regexp.MustCompile(`<[^>]*>`)
	blankLinePattern = regexp.MustCompile(`\n\s*\n`)
)

// EstimateReadingTime returns the reading time of a text in whole
// minutes at 200 wpm, never below 1. HTML tags are ignored.
func EstimateReadingTime(text string) int {
	stripped := htmlTagPattern.ReplaceAllString(text, " ")
	words := strings.Fields(stripped)

	if len(words) == 0 {
		return 1
	}

	minutes := int(math.Ceil(float64(len(words)) / float64(defaultWPM)))
	if minutes < 1 {
		return 1
	}
	return minutes
}

// SplitParagraphs breaks a descripcion into paragraphs on blank
// lines, trimming each part. A body with no blank lines yields a
// single paragraph.
func SplitParagraphs(text string) []string {
	parts := blankLinePattern.Split(text, -1)
	paragraphs := make([]string, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			paragraphs = append(paragraphs, part)
		}
	}

	if len(paragraphs) == 0 && strings.TrimSpace(text) != "" {
		paragraphs = append(paragraphs, strings.TrimSpace(text))
	}

	return paragraphs
}
