package runner

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"regexp"
	"strings"

	"github.com/rdocs/rdocs-mcp/pkg/types"
)

const defaultRscriptPath = "Rscript"

// Names are interpolated into R snippets, so only syntactic R identifiers
// are accepted. Packages and help topics both follow this shape.
var identifierPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9._]*$`)

var _ types.Runner = &RRunner{}

// RRunner produces raw documentation text by invoking Rscript. Each call is
// an independent one-shot process; no state is shared between calls.
type RRunner struct {
	rscriptPath string
}

// New creates a new R runner invoking the given Rscript binary.
func New(rscriptPath string) *RRunner {
	if rscriptPath == "" {
		rscriptPath = defaultRscriptPath
	}

	slog.Debug("Creating new R runner", "rscript_path", rscriptPath)

	return &RRunner{
		rscriptPath: rscriptPath,
	}
}

// Available reports whether the Rscript binary can be found.
func (r *RRunner) Available(ctx context.Context) bool {
	_, err := exec.LookPath(r.rscriptPath)
	return err == nil
}

// Version returns the R runtime version string.
func (r *RRunner) Version(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, r.rscriptPath, "--version")
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("failed to run %s --version: %w", r.rscriptPath, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// PackageInstalled reports whether pkg can be loaded as a namespace.
func (r *RRunner) PackageInstalled(ctx context.Context, pkg string) bool {
	if err := validateName("package", pkg); err != nil {
		return false
	}
	out, err := r.run(ctx, fmt.Sprintf(`cat(requireNamespace("%s", quietly = TRUE))`, pkg))
	return err == nil && strings.Contains(out, "TRUE")
}

// HelpText returns the plain-text help for pkg::symbol, or the package
// overview when symbol is empty.
func (r *RRunner) HelpText(ctx context.Context, pkg, symbol string) (string, error) {
	if err := validateName("package", pkg); err != nil {
		return "", err
	}
	if symbol == "" {
		return r.run(ctx, fmt.Sprintf(
			`h <- library(help = "%s"); cat(paste(c(format(h$info[[1]]), "", format(h$info[[2]])), collapse = "\n"))`,
			pkg))
	}
	if err := validateName("symbol", symbol); err != nil {
		return "", err
	}
	code := fmt.Sprintf(`h <- utils::help("%s", package = "%s", help_type = "text")
if (length(h) == 0) {
  cat("No documentation for '%s'")
} else {
  tools::Rd2txt(utils:::.getHelpFile(h[1]))
}`, symbol, pkg, symbol)
	return r.run(ctx, code)
}

// ExamplesText returns the runnable examples for pkg::symbol.
func (r *RRunner) ExamplesText(ctx context.Context, pkg, symbol string) (string, error) {
	if err := validateName("package", pkg); err != nil {
		return "", err
	}
	if err := validateName("symbol", symbol); err != nil {
		return "", err
	}
	code := fmt.Sprintf(`h <- utils::help("%s", package = "%s")
if (length(h) > 0) {
  tools::Rd2ex(utils:::.getHelpFile(h[1]))
}`, symbol, pkg)
	return r.run(ctx, code)
}

// PackageMetadataText returns the DESCRIPTION fields of pkg as "Key: value"
// lines.
func (r *RRunner) PackageMetadataText(ctx context.Context, pkg string) (string, error) {
	if err := validateName("package", pkg); err != nil {
		return "", err
	}
	code := fmt.Sprintf(
		`d <- utils::packageDescription("%s", fields = c("Package", "Version", "Title", "Description"))
cat(paste(names(d), unlist(d), sep = ": "), sep = "\n")`, pkg)
	return r.run(ctx, code)
}

// ExportedSymbolsText returns the exported symbols of pkg, one per line.
func (r *RRunner) ExportedSymbolsText(ctx context.Context, pkg string) (string, error) {
	if err := validateName("package", pkg); err != nil {
		return "", err
	}
	return r.run(ctx, fmt.Sprintf(`cat(sort(getNamespaceExports("%s")), sep = "\n")`, pkg))
}

// run executes an R snippet and captures its stdout. A non-zero exit wraps
// the trailing stderr output into the returned error.
func (r *RRunner) run(ctx context.Context, code string) (string, error) {
	slog.Debug("Running R snippet", "rscript_path", r.rscriptPath, "code", code)

	cmd := exec.CommandContext(ctx, r.rscriptPath, "--vanilla", "-e", code)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			return "", fmt.Errorf("rscript failed: %w", err)
		}
		return "", fmt.Errorf("rscript failed: %w: %s", err, detail)
	}

	slog.Debug("R snippet finished", "stdout_bytes", stdout.Len())
	return stdout.String(), nil
}

func validateName(kind, name string) error {
	if !identifierPattern.MatchString(name) {
		return fmt.Errorf("invalid %s name: %q", kind, name)
	}
	return nil
}
