package docs

import (
	"strings"

	"github.com/rdocs/rdocs-mcp/pkg/types"
)

// Headings for the two blocks of a package-level full doc, in the order
// they are assembled.
const (
	overviewHeading = "Package Overview"
	exportsHeading  = "Exported Functions"
)

// metadataFields are the DESCRIPTION fields kept in a package description
// dump, in output order.
var metadataFields = []string{"Package", "Version", "Title", "Description"}

// AssembleFullDoc merges separately fetched example text into a parsed help
// result. A blank examples fetch leaves the parsed example untouched;
// missing examples are not an error.
func AssembleFullDoc(parsed *types.DocResult, examplesText string) *types.DocResult {
	if trimmed := strings.TrimSpace(examplesText); trimmed != "" {
		parsed.Example = trimmed
	}
	return parsed
}

// AssemblePackageDoc builds the full doc for a package-level query from the
// three independently fetched blocks: the DESCRIPTION metadata, the package
// overview, and the exported-symbol listing.
func AssemblePackageDoc(metadataText, overviewText, exportsText string) *types.DocResult {
	result := &types.DocResult{
		Description: formatMetadata(metadataText),
	}

	var usage string
	if overview := strings.TrimSpace(overviewText); overview != "" {
		usage = appendBlock(usage, overviewHeading, overview)
	}
	if exports := strings.TrimSpace(exportsText); exports != "" {
		usage = appendBlock(usage, exportsHeading, exports)
	}
	result.Usage = usage

	return result
}

// formatMetadata reduces a raw DESCRIPTION dump to the fields named in
// metadataFields, as "Key: value" lines in fixed order. Continuation lines
// (indented, per DCF format) are folded into the preceding field.
func formatMetadata(metadataText string) string {
	fields := make(map[string]string)
	var last string
	for _, line := range strings.Split(metadataText, "\n") {
		if line == "" {
			continue
		}
		if (line[0] == ' ' || line[0] == '\t') && last != "" {
			fields[last] += " " + strings.TrimSpace(line)
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		last = strings.TrimSpace(key)
		fields[last] = strings.TrimSpace(value)
	}

	var b strings.Builder
	for _, key := range metadataFields {
		value, ok := fields[key]
		if !ok {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(value)
	}
	return b.String()
}
