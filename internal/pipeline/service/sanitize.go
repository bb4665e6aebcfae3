package service

import (
	"html"
	"strings"
)

// Markers that would let a description break out of the prompt
// structure the agents are given.
var injectionMarkers = []string{"</input>", "</skill>", "<eval>", "<system>"}

// sanitizeInput escapes HTML/XML special characters before the text is
// embedded in an agent prompt, and reports whether the raw text carried
// a known injection marker.
func sanitizeInput(text string) (string, bool) {
	lower := strings.ToLower(text)
	suspicious := false
	for _, marker := range injectionMarkers {
		if strings.Contains(lower, marker) {
			suspicious = true
			break
		}
	}
	return html.EscapeString(text), suspicious
}
