package types

import (
	"fmt"
	"strings"
)

// DocQuery identifies the documentation target: a package, and optionally a
// single symbol within it. Queries are immutable once constructed.
type DocQuery struct {
	Package     string `json:"package"`
	Symbol      string `json:"symbol,omitempty"`
	ProjectPath string `json:"project_path,omitempty"`
}

// Validate checks that the query is well-formed: the package name must be
// non-empty, and Symbol and ProjectPath must not be blank when set.
func (q DocQuery) Validate() error {
	if strings.TrimSpace(q.Package) == "" {
		return fmt.Errorf("package name is required")
	}
	if q.Symbol != "" && strings.TrimSpace(q.Symbol) == "" {
		return fmt.Errorf("symbol must not be blank")
	}
	if q.ProjectPath != "" && strings.TrimSpace(q.ProjectPath) == "" {
		return fmt.Errorf("project_path must not be blank")
	}
	return nil
}

// Topic returns the human-readable name of the documentation target,
// e.g. "stats" or "stats::median".
func (q DocQuery) Topic() string {
	if q.Symbol != "" {
		return q.Package + "::" + q.Symbol
	}
	return q.Package
}

// DocResult is the structured documentation for a package or symbol. When
// Error is set, the other fields are not meaningful. SuggestInstall signals
// that the failure could be resolved by installing the package.
type DocResult struct {
	Description    string `json:"description,omitempty"`
	Usage          string `json:"usage,omitempty"`
	Example        string `json:"example,omitempty"`
	Error          string `json:"error,omitempty"`
	SuggestInstall bool   `json:"suggest_install,omitempty"`
}

// SearchResult is a single match in documentation text.
type SearchResult struct {
	Symbol  string `json:"symbol,omitempty"`
	Match   string `json:"match"`
	Context string `json:"context,omitempty"`
	Score   int    `json:"score"`
	Type    string `json:"type,omitempty"`
}

// SearchResults holds ranked matches, sorted by score descending with ties
// kept in corpus order. TotalResults counts matches before truncation, so
// TotalResults >= len(Results).
type SearchResults struct {
	Results        []SearchResult `json:"results"`
	TotalResults   int            `json:"total_results"`
	Error          string         `json:"error,omitempty"`
	SuggestInstall bool           `json:"suggest_install,omitempty"`
}
