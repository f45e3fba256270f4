package report

import (
	"io"
	"sort"

	"github.com/matzehuels/tetrado/pkg/errors"
	"github.com/matzehuels/tetrado/pkg/quadruplex"
)

// Format names.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
)

// Writer renders an analysis to w.
type Writer func(w io.Writer, a *quadruplex.Analysis) error

var writers = map[string]Writer{
	FormatText: WriteText,
	FormatJSON: WriteJSON,
	FormatDOT:  WriteDOT,
	FormatSVG:  WriteSVG,
}

// Register installs fn for format, replacing any existing writer.
func Register(format string, fn Writer) {
	writers[format] = fn
}

// Formats returns the registered format names, sorted.
func Formats() []string {
	names := make([]string, 0, len(writers))
	for name := range writers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Supported reports whether a writer is registered for format.
func Supported(format string) bool {
	_, ok := writers[format]
	return ok
}

// Validate returns an INVALID_FORMAT error for unknown formats.
func Validate(format string) error {
	if Supported(format) {
		return nil
	}
	return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be one of %v)", format, Formats())
}

// Write renders a in the given format.
func Write(format string, w io.Writer, a *quadruplex.Analysis) error {
	fn, ok := writers[format]
	if !ok {
		return Validate(format)
	}
	return fn(w, a)
}

// ContentType returns the MIME type of a format.
func ContentType(format string) string {
	switch format {
	case FormatJSON:
		return "application/json"
	case FormatSVG:
		return "image/svg+xml"
	case FormatDOT:
		return "text/vnd.graphviz"
	case FormatText:
		return "text/plain; charset=utf-8"
	}
	return "application/octet-stream"
}
