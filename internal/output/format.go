// Package output provides the result emission layer: one JSON object
// per invocation on stdout (the machine contract), an opt-in
// human-readable gauge view, and the structured error shape.
package output

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Format represents the output format type.
type Format int

const (
	// FormatJSON is the machine-readable default for probe results.
	FormatJSON Format = iota
	// FormatText is the human-readable gauge view.
	FormatText
)

// String returns the string representation of the format.
func (f Format) String() string {
	if f == FormatText {
		return "text"
	}
	return "json"
}

// Formatter handles result emission for commands.
type Formatter struct {
	format Format
	writer io.Writer
	pretty bool // for JSON: whether to indent
}

// Option is a functional option for Formatter.
type Option func(*Formatter)

// New creates a Formatter. The default emits compact JSON to stdout:
// probe output is consumed by tooling, so JSON is the contract and text
// is the opt-in.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		format: FormatJSON,
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// WithText switches to the human-readable view.
func WithText(enabled bool) Option {
	return func(f *Formatter) {
		if enabled {
			f.format = FormatText
		}
	}
}

// WithWriter sets the output writer.
func WithWriter(w io.Writer) Option {
	return func(f *Formatter) {
		f.writer = w
	}
}

// WithPretty sets whether JSON should be indented.
func WithPretty(pretty bool) Option {
	return func(f *Formatter) {
		f.pretty = pretty
	}
}

// IsText returns true if the human-readable view is selected.
func (f *Formatter) IsText() bool { return f.format == FormatText }

// Writer returns the output writer.
func (f *Formatter) Writer() io.Writer { return f.writer }

// JSON emits v as JSON to the formatter's writer.
func (f *Formatter) JSON(v interface{}) error {
	return WriteJSON(f.writer, v, f.pretty)
}

// IsTerminal reports whether f is an interactive terminal. Both checks
// are needed: term covers POSIX ttys, isatty covers Cygwin/MSYS pipes
// that present as terminals.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) || isatty.IsCygwinTerminal(f.Fd())
}
