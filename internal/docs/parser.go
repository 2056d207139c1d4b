package docs

import (
	"strings"

	"github.com/rdocs/rdocs-mcp/pkg/types"
)

// Markers R prints when a help topic does not exist.
var notFoundMarkers = []string{
	"No documentation",
	"not found",
}

// descriptionLineIndex is where the one-line title sits in R's plain-text
// help output: two header lines, then the title. Shorter input falls back
// to the first non-blank line; see preambleLine.
const descriptionLineIndex = 2

// Parse splits raw R help text into named sections and folds them into a
// DocResult. It is pure: identical input always yields an identical result,
// and malformed text degrades to fallbacks instead of failing.
func Parse(rawText, pkg, symbol string) *types.DocResult {
	topic := pkg
	if symbol != "" {
		topic = pkg + "::" + symbol
	}

	if strings.TrimSpace(rawText) == "" || containsNotFoundMarker(rawText) {
		return &types.DocResult{Error: "Documentation not found for " + topic}
	}

	lines := strings.Split(rawText, "\n")
	for i, line := range lines {
		lines[i] = strings.ReplaceAll(line, "\b", "")
	}

	result := &types.DocResult{
		Description: preambleLine(lines),
	}

	var (
		current string
		content []string
	)
	for _, line := range lines {
		if isSectionHeader(line) {
			flushSection(result, current, content)
			current = sectionName(line)
			content = content[:0]
			continue
		}
		if current != "" {
			content = append(content, line)
		}
	}
	flushSection(result, current, content)

	// Package overviews have no reliable section structure; keep the raw
	// text rather than losing it.
	if result.Usage == "" && symbol == "" {
		result.Usage = rawText
	}

	return result
}

// preambleLine picks the initial description from the document preamble:
// the title line after R's two-line header, or the first non-blank line
// when the input is shorter than that. Section headers are never accepted
// as a description, so help text that starts its sections early does not
// leak "Usage:" into the description field.
func preambleLine(lines []string) string {
	if len(lines) > descriptionLineIndex && !isSectionHeader(lines[descriptionLineIndex]) {
		if title := strings.TrimSpace(deEmphasize(lines[descriptionLineIndex])); title != "" {
			return title
		}
	}
	for _, line := range lines {
		if isSectionHeader(line) {
			continue
		}
		if trimmed := strings.TrimSpace(deEmphasize(line)); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// flushSection folds the accumulated content lines of the pending section
// into the result. A document with no pending section is a no-op.
func flushSection(result *types.DocResult, name string, content []string) {
	if name == "" {
		return
	}
	foldSection(result, name, strings.TrimSpace(strings.Join(content, "\n")))
}

func containsNotFoundMarker(text string) bool {
	for _, marker := range notFoundMarkers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}
