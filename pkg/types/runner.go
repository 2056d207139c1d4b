package types

import "context"

// Runner defines the interface to the external R runtime. Implementations
// produce raw help text; they never interpret it.
type Runner interface {
	// Available reports whether the R runtime can be invoked at all.
	Available(ctx context.Context) bool

	// PackageInstalled reports whether the named package is installed.
	PackageInstalled(ctx context.Context, pkg string) bool

	// HelpText returns the plain-text help for a symbol, or the package
	// overview when symbol is empty.
	HelpText(ctx context.Context, pkg, symbol string) (string, error)

	// ExamplesText returns the runnable examples for a symbol.
	ExamplesText(ctx context.Context, pkg, symbol string) (string, error)

	// PackageMetadataText returns the package DESCRIPTION fields as
	// "Key: value" lines.
	PackageMetadataText(ctx context.Context, pkg string) (string, error)

	// ExportedSymbolsText returns the package's exported symbols, one
	// per line.
	ExportedSymbolsText(ctx context.Context, pkg string) (string, error)
}

// DocsService defines the documentation operations exposed as MCP tools.
// Domain failures are reported inside the returned values, never as errors.
type DocsService interface {
	Describe(ctx context.Context, query DocQuery) *DocResult
	FullDoc(ctx context.Context, query DocQuery) *DocResult
	Search(ctx context.Context, query DocQuery, term string, fuzzy bool) *SearchResults
}
