// Package report renders duplicate reports in the supported output formats.
package report

import (
	"fmt"
	"slices"
	"strings"

	"github.com/okian/ats/internal/domain/types"
)

// Options controls rendering.
type Options struct {
	NoColor bool // plain text without ANSI colors
	Verbose bool // include per-candidate hotness
	Compact bool // single-line JSON
}

// Formatter renders a report in one output format.
type Formatter interface {
	// Format renders r.
	Format(r types.Report, opts Options) (string, error)

	// Name returns the format name used in configuration (e.g. "json").
	Name() string

	// Description returns a one-line summary of the format.
	Description() string

	// FileExtension returns the recommended file extension.
	FileExtension() string
}

// Registry holds formatters by name.
type Registry struct {
	formatters map[string]Formatter
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{formatters: make(map[string]Formatter)}
}

// NewDefaultRegistry returns a registry holding the text, json and yaml formatters.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(NewTextFormatter())
	r.Register(NewJSONFormatter())
	r.Register(NewYAMLFormatter())
	return r
}

// Register adds f, replacing any formatter with the same name.
func (r *Registry) Register(f Formatter) {
	r.formatters[f.Name()] = f
}

// Get retrieves a formatter by name.
func (r *Registry) Get(name string) (Formatter, bool) {
	f, ok := r.formatters[name]
	return f, ok
}

// List returns the registered names in sorted order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.formatters))
	for name := range r.formatters {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Export renders rep with the named formatter.
func (r *Registry) Export(format string, rep types.Report, opts Options) (string, error) {
	f, ok := r.Get(format)
	if !ok {
		return "", fmt.Errorf("%w: %q (available: %s)", ErrUnsupportedFormat, format, strings.Join(r.List(), ", "))
	}
	return f.Format(rep, opts)
}
