package docs

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rdocs/rdocs-mcp/pkg/types"
)

// Score bands for the four match classes. The exact values are tunable; the
// strict ordering exact > prefix > substring > fuzzy is the contract.
const (
	scoreExact     = 100
	scorePrefix    = 75
	scoreSubstring = 50
	scoreFuzzyMax  = 25
	scoreFuzzyMin  = 1
)

const (
	// DefaultSearchLimit caps the number of results returned per query.
	DefaultSearchLimit = 25

	// contextRadius bounds the snippet of surrounding text carried with
	// each match.
	contextRadius = 60

	// fuzzyWindow bounds how far apart the first and last character of a
	// subsequence match may be.
	fuzzyWindow = 80
)

// Match type labels carried on SearchResult.Type.
const (
	matchExact     = "exact"
	matchPrefix    = "prefix"
	matchSubstring = "substring"
	matchFuzzy     = "fuzzy"
)

// CorpusEntry is one unit of searchable documentation text with its
// originating symbol, if any.
type CorpusEntry struct {
	Symbol string
	Text   string
}

// Ranker scores and orders documentation matches for a search query.
type Ranker struct {
	Limit int
}

// NewRanker returns a Ranker capping results at limit, or at
// DefaultSearchLimit when limit is not positive.
func NewRanker(limit int) *Ranker {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	return &Ranker{Limit: limit}
}

// Search scans each corpus entry for the query and returns ranked matches:
// sorted by score descending, ties in corpus order, capped at the ranker
// limit. TotalResults counts matches before the cap; truncation is silent.
func (r *Ranker) Search(entries []CorpusEntry, query string, fuzzy bool) *types.SearchResults {
	if strings.TrimSpace(query) == "" {
		return &types.SearchResults{Results: []types.SearchResult{}, Error: "empty query"}
	}

	matches := make([]types.SearchResult, 0, len(entries))
	for _, entry := range entries {
		if m, ok := matchEntry(entry, query, fuzzy); ok {
			matches = append(matches, m)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	total := len(matches)
	if len(matches) > r.Limit {
		matches = matches[:r.Limit]
	}

	return &types.SearchResults{
		Results:      matches,
		TotalResults: total,
	}
}

// matchEntry finds the best match for query in one corpus entry. Substring
// classes are checked first; the fuzzy subsequence class only applies when
// enabled and no substring occurrence exists.
func matchEntry(entry CorpusEntry, query string, fuzzy bool) (types.SearchResult, bool) {
	text := entry.Text
	folded := foldText(text)
	q := strings.ToLower(query)

	if idx := strings.Index(folded.lower, q); idx >= 0 {
		score, matchType := classifySubstring(folded.lower, idx, len(q))
		start, end := folded.origRange(idx, idx+len(q))
		return types.SearchResult{
			Symbol:  entry.Symbol,
			Match:   text[start:end],
			Context: contextWindow(text, start, end),
			Score:   score,
			Type:    matchType,
		}, true
	}

	if !fuzzy {
		return types.SearchResult{}, false
	}

	lo, hi, ok := subsequenceSpan(folded.lower, q)
	if !ok {
		return types.SearchResult{}, false
	}
	// Spread-out matches score lower: one point per gap character.
	score := scoreFuzzyMax - ((hi - lo) - len(q))
	if score < scoreFuzzyMin {
		score = scoreFuzzyMin
	}
	start, end := folded.origRange(lo, hi)
	return types.SearchResult{
		Symbol:  entry.Symbol,
		Match:   text[start:end],
		Context: contextWindow(text, start, end),
		Score:   score,
		Type:    matchFuzzy,
	}, true
}

// foldedText pairs the lowercased form of a text with a byte-offset map back
// into the original. Lowercasing is not byte-length-preserving ("Ⱥ" grows,
// the Kelvin sign shrinks), so indices found in the lowered form must not be
// used to slice the original directly.
type foldedText struct {
	lower string
	// offsets[i] is the original byte offset of lower[i]; nil means the
	// mapping is the identity (pure-ASCII text).
	offsets []int
}

func foldText(text string) foldedText {
	ascii := true
	for i := 0; i < len(text); i++ {
		if text[i] >= utf8.RuneSelf {
			ascii = false
			break
		}
	}
	if ascii {
		return foldedText{lower: strings.ToLower(text)}
	}

	var b strings.Builder
	b.Grow(len(text))
	offsets := make([]int, 0, len(text)+1)
	for i, r := range text {
		lr := unicode.ToLower(r)
		for j := 0; j < utf8.RuneLen(lr); j++ {
			offsets = append(offsets, i)
		}
		b.WriteRune(lr)
	}
	offsets = append(offsets, len(text))
	return foldedText{lower: b.String(), offsets: offsets}
}

// origRange maps a [start, end) byte range in the lowered form back to the
// bounds of the original runes it covers.
func (f foldedText) origRange(start, end int) (int, int) {
	if f.offsets == nil {
		return start, end
	}
	return f.offsets[start], f.offsets[end]
}

// classifySubstring grades an occurrence at idx: whole word beats prefix
// beats bare substring.
func classifySubstring(lower string, idx, length int) (int, string) {
	startsWord := idx == 0 || !isWordByte(lower[idx-1])
	endsWord := idx+length == len(lower) || !isWordByte(lower[idx+length])
	switch {
	case startsWord && endsWord:
		return scoreExact, matchExact
	case startsWord:
		return scorePrefix, matchPrefix
	default:
		return scoreSubstring, matchSubstring
	}
}

// subsequenceSpan finds the tightest-start span in which the characters of
// q appear in order within text, bounded by fuzzyWindow. It tries each
// occurrence of the first character as a starting point and keeps the
// narrowest resulting span.
func subsequenceSpan(text, q string) (start, end int, ok bool) {
	if q == "" {
		return 0, 0, false
	}
	best := -1
	from := 0
	for {
		first := strings.IndexByte(text[from:], q[0])
		if first < 0 {
			break
		}
		first += from
		last := walkSubsequence(text, q, first)
		if last >= 0 && last-first < fuzzyWindow {
			if best < 0 || last+1-first < end-start {
				start, end, best = first, last+1, first
			}
		}
		from = first + 1
	}
	return start, end, best >= 0
}

// walkSubsequence matches q's characters in order starting at first, which
// must hold q[0]. Returns the index of the final matched character, or -1.
func walkSubsequence(text, q string, first int) int {
	pos := first
	for i := 1; i < len(q); i++ {
		next := strings.IndexByte(text[pos+1:], q[i])
		if next < 0 {
			return -1
		}
		pos += 1 + next
	}
	return pos
}

// contextWindow returns the text surrounding [start, end), clamped to
// contextRadius bytes on each side and to the lines holding the match.
func contextWindow(text string, start, end int) string {
	lo := start - contextRadius
	if lo < 0 {
		lo = 0
	}
	hi := end + contextRadius
	if hi > len(text) {
		hi = len(text)
	}
	if cut := strings.LastIndexByte(text[lo:start], '\n'); cut >= 0 {
		lo += cut + 1
	}
	if cut := strings.IndexByte(text[end:hi], '\n'); cut >= 0 {
		hi = end + cut
	}
	return strings.TrimSpace(text[lo:hi])
}

// isWordByte reports whether c can appear inside an R identifier.
func isWordByte(c byte) bool {
	return c == '.' || c == '_' ||
		(c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z')
}
