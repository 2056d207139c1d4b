package docs

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchEmptyQuery(t *testing.T) {
	ranker := NewRanker(0)

	results := ranker.Search([]CorpusEntry{{Text: "some text"}}, "", false)

	assert.Equal(t, "empty query", results.Error)
	assert.Empty(t, results.Results)
	assert.Zero(t, results.TotalResults)
}

func TestSearchRanking(t *testing.T) {
	entries := []CorpusEntry{
		{Symbol: "mean", Text: "the mean function"},
		{Symbol: "median", Text: "median of values"},
		{Symbol: "geomean", Text: "geometric mean calc"},
	}
	ranker := NewRanker(0)

	t.Run("non-fuzzy excludes the subsequence-only entry", func(t *testing.T) {
		results := ranker.Search(entries, "mean", false)

		require.Len(t, results.Results, 2)
		assert.Equal(t, 2, results.TotalResults)
		for _, r := range results.Results {
			assert.Contains(t, []string{"mean", "geomean"}, r.Symbol)
			assert.Equal(t, scoreExact, r.Score)
		}
	})

	t.Run("fuzzy includes all three with median last", func(t *testing.T) {
		results := ranker.Search(entries, "mean", true)

		require.Len(t, results.Results, 3)
		assert.Equal(t, "median", results.Results[2].Symbol)
		assert.Equal(t, matchFuzzy, results.Results[2].Type)
		assert.Less(t, results.Results[2].Score, results.Results[1].Score)
	})
}

func TestSearchMatchClasses(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		query         string
		fuzzy         bool
		expectedType  string
		expectedScore int
	}{
		{
			name:          "whole word is an exact match",
			text:          "compute the sample median here",
			query:         "median",
			expectedType:  matchExact,
			expectedScore: scoreExact,
		},
		{
			name:          "word start is a prefix match",
			text:          "medians are robust",
			query:         "median",
			expectedType:  matchPrefix,
			expectedScore: scorePrefix,
		},
		{
			name:          "dotted identifier tail is a substring match",
			text:          "the weighted.median variant",
			query:         "median",
			expectedType:  matchSubstring,
			expectedScore: scoreSubstring,
		},
		{
			name:          "mid-word occurrence",
			text:          "unremarkable",
			query:         "remark",
			expectedType:  matchSubstring,
			expectedScore: scoreSubstring,
		},
		{
			name:          "case-insensitive comparison",
			text:          "Median Value",
			query:         "median",
			expectedType:  matchExact,
			expectedScore: scoreExact,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranker := NewRanker(0)
			results := ranker.Search([]CorpusEntry{{Text: tt.text}}, tt.query, tt.fuzzy)

			require.Len(t, results.Results, 1)
			assert.Equal(t, tt.expectedType, results.Results[0].Type)
			assert.Equal(t, tt.expectedScore, results.Results[0].Score)
		})
	}
}

func TestSearchMidIdentifierIsSubstring(t *testing.T) {
	ranker := NewRanker(0)

	results := ranker.Search([]CorpusEntry{{Text: "rowMedians(x)"}}, "median", false)

	require.Len(t, results.Results, 1)
	assert.Equal(t, matchSubstring, results.Results[0].Type)
}

func TestSearchFuzzyGapPenalty(t *testing.T) {
	ranker := NewRanker(0)
	entries := []CorpusEntry{
		{Symbol: "tight", Text: "xaxbxc"},
		{Symbol: "spread", Text: "a xx b xx c"},
	}

	results := ranker.Search(entries, "abc", true)

	require.Len(t, results.Results, 2)
	assert.Equal(t, "tight", results.Results[0].Symbol)
	assert.Greater(t, results.Results[0].Score, results.Results[1].Score)
}

func TestSearchFuzzyWindowBound(t *testing.T) {
	ranker := NewRanker(0)
	text := "a" + strings.Repeat("x", fuzzyWindow+10) + "b"

	results := ranker.Search([]CorpusEntry{{Text: text}}, "ab", true)

	assert.Empty(t, results.Results)
}

func TestSearchScoresAreNonNegativeAndOrdered(t *testing.T) {
	assert.Greater(t, scoreExact, scorePrefix)
	assert.Greater(t, scorePrefix, scoreSubstring)
	assert.Greater(t, scoreSubstring, scoreFuzzyMax)
	assert.GreaterOrEqual(t, scoreFuzzyMin, 0)
}

func TestSearchTruncation(t *testing.T) {
	ranker := NewRanker(5)
	entries := make([]CorpusEntry, 12)
	for i := range entries {
		entries[i] = CorpusEntry{
			Symbol: fmt.Sprintf("sym%d", i),
			Text:   "the median appears here",
		}
	}

	results := ranker.Search(entries, "median", false)

	assert.Len(t, results.Results, 5)
	assert.Equal(t, 12, results.TotalResults)
	assert.GreaterOrEqual(t, results.TotalResults, len(results.Results))
}

func TestSearchStableTieOrder(t *testing.T) {
	ranker := NewRanker(0)
	entries := []CorpusEntry{
		{Symbol: "first", Text: "median one"},
		{Symbol: "second", Text: "median two"},
		{Symbol: "third", Text: "median three"},
	}

	results := ranker.Search(entries, "median", false)

	require.Len(t, results.Results, 3)
	assert.Equal(t, "first", results.Results[0].Symbol)
	assert.Equal(t, "second", results.Results[1].Symbol)
	assert.Equal(t, "third", results.Results[2].Symbol)
}

func TestSearchContextWindow(t *testing.T) {
	ranker := NewRanker(0)
	text := "irrelevant line\nthe median of a numeric vector is its middle value\nanother line"

	results := ranker.Search([]CorpusEntry{{Text: text}}, "median", false)

	require.Len(t, results.Results, 1)
	context := results.Results[0].Context
	assert.Contains(t, context, "median")
	assert.NotContains(t, context, "irrelevant")
	assert.NotContains(t, context, "another line")
	assert.LessOrEqual(t, len(context), 2*contextRadius+len("median"))
}

func TestSearchExpandingCaseMapping(t *testing.T) {
	// "Ⱥ" (U+023A, 2 bytes) lowercases to "ⱥ" (U+2C65, 3 bytes), so the
	// lowered text is longer than the original; match offsets must still
	// land on the original bytes instead of running past the end.
	ranker := NewRanker(0)

	results := ranker.Search([]CorpusEntry{{Text: "ȺȺȺȺmedian"}}, "median", false)

	require.Len(t, results.Results, 1)
	assert.Equal(t, "median", results.Results[0].Match)
	assert.Contains(t, results.Results[0].Context, "median")
}

func TestSearchShrinkingCaseMapping(t *testing.T) {
	// The Kelvin sign (U+212A, 3 bytes) lowercases to plain "k" (1 byte),
	// shifting every later offset in the lowered text.
	ranker := NewRanker(0)
	text := "temperature in K, then the median value"

	results := ranker.Search([]CorpusEntry{{Text: text}}, "median", false)

	require.Len(t, results.Results, 1)
	assert.Equal(t, "median", results.Results[0].Match)
	assert.Equal(t, matchExact, results.Results[0].Type)
}

func TestSearchMatchCoversFoldedRune(t *testing.T) {
	// Matching "k" against the Kelvin sign must return the original rune,
	// not a byte slice borrowed from the lowered text.
	ranker := NewRanker(0)

	results := ranker.Search([]CorpusEntry{{Text: "measured in K here"}}, "k", false)

	require.Len(t, results.Results, 1)
	assert.Equal(t, "K", results.Results[0].Match)
}

func TestSearchFuzzyWithNonASCIIText(t *testing.T) {
	ranker := NewRanker(0)

	results := ranker.Search([]CorpusEntry{{Text: "Ⱥ möchte a. b. c."}}, "abc", true)

	require.Len(t, results.Results, 1)
	assert.Equal(t, matchFuzzy, results.Results[0].Type)
	assert.Contains(t, results.Results[0].Context, results.Results[0].Match)
}

func TestSearchMatchCarriesSymbol(t *testing.T) {
	ranker := NewRanker(0)

	results := ranker.Search([]CorpusEntry{{Symbol: "median", Text: "the median"}}, "median", false)

	require.Len(t, results.Results, 1)
	assert.Equal(t, "median", results.Results[0].Symbol)
	assert.Equal(t, "median", results.Results[0].Match)
}
