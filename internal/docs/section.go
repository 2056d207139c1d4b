package docs

import (
	"regexp"
	"strings"

	"github.com/rdocs/rdocs-mcp/pkg/types"
)

// R renders section headers in two shapes: an emphasis-encoded run where
// every letter is prefixed with an underscore ("_D_e_s_c_r_i_p_t_i_o_n:"),
// and a plain capitalized word ("Usage:"). The two predicates are kept
// separate on purpose; a header line matches if either one does.
var (
	emphasisHeaderPattern = regexp.MustCompile(`^(?:_[A-Za-z])+(?: (?:_[A-Za-z])+)*\s*:\s*$`)
	plainHeaderPattern    = regexp.MustCompile(`^[A-Z][A-Za-z]*(?: [A-Z][A-Za-z]*)*:\s*$`)
)

// isEmphasisHeader reports whether line is an emphasis-encoded section
// header like "_U_s_a_g_e:".
func isEmphasisHeader(line string) bool {
	return emphasisHeaderPattern.MatchString(line)
}

// isPlainHeader reports whether line is a plain capitalized section header
// like "Usage:" or "See Also:".
func isPlainHeader(line string) bool {
	return plainHeaderPattern.MatchString(line)
}

// isSectionHeader reports whether line starts a new help-text section.
func isSectionHeader(line string) bool {
	return isEmphasisHeader(line) || isPlainHeader(line)
}

// deEmphasize strips the overstrike encoding R uses for emphasis: each
// emphasized character arrives as "_\bX", which reduces to "_X" once the
// backspace is dropped. Lines with no decoration pass through unchanged.
func deEmphasize(line string) string {
	line = strings.ReplaceAll(line, "\b", "")
	if !strings.Contains(line, "_") {
		return line
	}
	var b strings.Builder
	b.Grow(len(line))
	for i := 0; i < len(line); i++ {
		if line[i] == '_' && i+1 < len(line) && isLetterByte(line[i+1]) {
			continue
		}
		b.WriteByte(line[i])
	}
	return b.String()
}

// sectionName extracts the normalized section name from a header line:
// decoration stripped, trailing colon removed, surrounding space trimmed.
func sectionName(header string) string {
	name := deEmphasize(header)
	name = strings.TrimSpace(name)
	name = strings.TrimSuffix(name, ":")
	return strings.TrimSpace(name)
}

// foldKey reduces a section name to its lookup key: lowercase letters only,
// so "See Also" and "_S_e_e _A_l_s_o" both key as "seealso".
func foldKey(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isLetterByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// foldTarget says where a section's content lands in the DocResult.
type foldTarget int

const (
	foldDrop foldTarget = iota
	foldDescription
	foldUsage
	foldUsageAppend
	foldExample
)

// fold maps one recognized section name to its placement. Sections appended
// into usage carry the sub-heading written above their content.
type fold struct {
	target  foldTarget
	heading string
}

// sectionFolds maps normalized section keys to placements. Unknown sections
// fall through to foldDrop.
var sectionFolds = map[string]fold{
	"description": {target: foldDescription},
	"usage":       {target: foldUsage},
	"arguments":   {target: foldUsageAppend, heading: "Arguments"},
	"value":       {target: foldUsageAppend, heading: "Return Value"},
	"details":     {target: foldUsageAppend, heading: "Details"},
	"examples":    {target: foldExample},
	"references":  {target: foldUsageAppend, heading: "References"},
	"seealso":     {target: foldUsageAppend, heading: "See Also"},
	"author":      {target: foldUsageAppend, heading: "Author"},
	"authors":     {target: foldUsageAppend, heading: "Author"},
	"note":        {target: foldUsageAppend, heading: "Note"},
}

// appendBlock joins content onto existing under a sub-heading, separated by
// a blank line. The first block has nothing to separate from.
func appendBlock(existing, heading, content string) string {
	block := heading + "\n" + content
	if existing == "" {
		return block
	}
	return existing + "\n\n" + block
}

// foldSection places one named section's content into the result according
// to the fold table. Empty content is ignored.
func foldSection(result *types.DocResult, name, content string) {
	if content == "" {
		return
	}
	f, ok := sectionFolds[foldKey(name)]
	if !ok {
		return
	}
	switch f.target {
	case foldDescription:
		result.Description = content
	case foldUsage:
		result.Usage = content
	case foldUsageAppend:
		result.Usage = appendBlock(result.Usage, f.heading, content)
	case foldExample:
		result.Example = content
	}
}
