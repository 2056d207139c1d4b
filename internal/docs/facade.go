package docs

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/rdocs/rdocs-mcp/pkg/types"
)

// defaultSearchWorkers bounds how many per-symbol help fetches run at once
// while building a search corpus.
const defaultSearchWorkers = 4

var _ types.DocsService = &Facade{}

// Facade orchestrates the external R runner, the help-text parser, and the
// search ranker. It is the only part of the system that talks to the
// runner; every failure path yields a normal return value.
type Facade struct {
	runner  types.Runner
	ranker  *Ranker
	workers int
}

// NewFacade creates a documentation facade on top of runner. maxResults and
// searchWorkers fall back to defaults when not positive.
func NewFacade(runner types.Runner, maxResults, searchWorkers int) *Facade {
	if searchWorkers <= 0 {
		searchWorkers = defaultSearchWorkers
	}
	return &Facade{
		runner:  runner,
		ranker:  NewRanker(maxResults),
		workers: searchWorkers,
	}
}

// Describe returns the summary documentation for a package or symbol.
func (f *Facade) Describe(ctx context.Context, query types.DocQuery) *types.DocResult {
	if result := f.checkPreconditions(ctx, query); result != nil {
		return result
	}

	text, err := f.runner.HelpText(ctx, query.Package, query.Symbol)
	if err != nil {
		return &types.DocResult{
			Error: fmt.Sprintf("Failed to fetch documentation for %s: %v", query.Topic(), err),
		}
	}

	return Parse(text, query.Package, query.Symbol)
}

// FullDoc returns the complete documentation for a package or symbol. For a
// symbol it adds a separately fetched examples block; for a package it
// assembles the overview, metadata, and export listing.
func (f *Facade) FullDoc(ctx context.Context, query types.DocQuery) *types.DocResult {
	if result := f.checkPreconditions(ctx, query); result != nil {
		return result
	}

	if query.Symbol != "" {
		return f.symbolFullDoc(ctx, query)
	}
	return f.packageFullDoc(ctx, query)
}

func (f *Facade) symbolFullDoc(ctx context.Context, query types.DocQuery) *types.DocResult {
	text, err := f.runner.HelpText(ctx, query.Package, query.Symbol)
	if err != nil {
		return &types.DocResult{
			Error: fmt.Sprintf("Failed to fetch documentation for %s: %v", query.Topic(), err),
		}
	}
	parsed := Parse(text, query.Package, query.Symbol)
	if parsed.Error != "" {
		return parsed
	}

	// The examples fetch is best effort: a failure leaves the parsed
	// example in place and never fails the call.
	examples, err := f.runner.ExamplesText(ctx, query.Package, query.Symbol)
	if err != nil {
		slog.Warn("Examples fetch failed", "topic", query.Topic(), "error", err)
		return parsed
	}
	return AssembleFullDoc(parsed, examples)
}

func (f *Facade) packageFullDoc(ctx context.Context, query types.DocQuery) *types.DocResult {
	var overview, metadata, exports string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		overview, err = f.runner.HelpText(gctx, query.Package, "")
		return err
	})
	g.Go(func() (err error) {
		metadata, err = f.runner.PackageMetadataText(gctx, query.Package)
		return err
	})
	g.Go(func() (err error) {
		exports, err = f.runner.ExportedSymbolsText(gctx, query.Package)
		return err
	})
	if err := g.Wait(); err != nil {
		return &types.DocResult{
			Error: fmt.Sprintf("Failed to fetch documentation for %s: %v", query.Package, err),
		}
	}

	return AssemblePackageDoc(metadata, overview, exports)
}

// Search ranks matches for term inside the documentation of the package
// named by query. The corpus is one entry per exported symbol.
func (f *Facade) Search(ctx context.Context, query types.DocQuery, term string, fuzzy bool) *types.SearchResults {
	if strings.TrimSpace(term) == "" {
		return &types.SearchResults{Results: []types.SearchResult{}, Error: "empty query"}
	}
	if err := query.Validate(); err != nil {
		return &types.SearchResults{Results: []types.SearchResult{}, Error: err.Error()}
	}
	if !f.runner.Available(ctx) {
		return &types.SearchResults{Results: []types.SearchResult{}, Error: errRUnavailable}
	}
	if !f.runner.PackageInstalled(ctx, query.Package) {
		return &types.SearchResults{
			Results:        []types.SearchResult{},
			Error:          notInstalledMessage(query.Package),
			SuggestInstall: true,
		}
	}

	entries, err := f.buildCorpus(ctx, query.Package)
	if err != nil {
		return &types.SearchResults{
			Results: []types.SearchResult{},
			Error:   fmt.Sprintf("Failed to load documentation for %s: %v", query.Package, err),
		}
	}

	return f.ranker.Search(entries, term, fuzzy)
}

// buildCorpus fetches the help text of every exported symbol of pkg, in
// export order, with bounded parallelism. Symbols whose help fetch fails
// are skipped rather than failing the search.
func (f *Facade) buildCorpus(ctx context.Context, pkg string) ([]CorpusEntry, error) {
	symbolsText, err := f.runner.ExportedSymbolsText(ctx, pkg)
	if err != nil {
		return nil, err
	}

	var symbols []string
	for _, line := range strings.Split(symbolsText, "\n") {
		if name := strings.TrimSpace(line); name != "" {
			symbols = append(symbols, name)
		}
	}

	entries := make([]CorpusEntry, len(symbols))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.workers)
	for i, symbol := range symbols {
		g.Go(func() error {
			text, err := f.runner.HelpText(gctx, pkg, symbol)
			if err != nil {
				slog.Debug("Skipping symbol with no help text", "package", pkg, "symbol", symbol, "error", err)
				return nil
			}
			entries[i] = CorpusEntry{Symbol: symbol, Text: text}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	corpus := entries[:0]
	for _, entry := range entries {
		if entry.Text != "" && !containsNotFoundMarker(entry.Text) {
			corpus = append(corpus, entry)
		}
	}
	return corpus, nil
}

const errRUnavailable = "R runtime is not available; install R and ensure Rscript is on the PATH"

func notInstalledMessage(pkg string) string {
	return fmt.Sprintf("Package %s is not installed. Run install.packages(%q) in R to install it.", pkg, pkg)
}

// checkPreconditions validates the query and verifies the runtime and the
// target package before any fetch. A nil return means the call may proceed.
func (f *Facade) checkPreconditions(ctx context.Context, query types.DocQuery) *types.DocResult {
	if err := query.Validate(); err != nil {
		return &types.DocResult{Error: err.Error()}
	}
	if !f.runner.Available(ctx) {
		return &types.DocResult{Error: errRUnavailable}
	}
	if !f.runner.PackageInstalled(ctx, query.Package) {
		return &types.DocResult{
			Error:          notInstalledMessage(query.Package),
			SuggestInstall: true,
		}
	}
	return nil
}
