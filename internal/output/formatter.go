// Package output renders enumerated objects for the dump-phdrs command.
package output

import (
	"fmt"
	"io"

	"phdrs"
	"phdrs/internal/procmaps"
)

// Formatter renders a set of enumerated objects.
type Formatter interface {
	Write(objs []phdrs.Object) error
}

// TextFormatter prints one line per object followed by one indented line
// per program header, optionally annotated with the object's entry in the
// process mapping table.
type TextFormatter struct {
	w    io.Writer
	maps []procmaps.Mapping // nil disables annotations
}

// NewTextFormatter creates a text formatter. maps may be nil.
func NewTextFormatter(w io.Writer, maps []procmaps.Mapping) *TextFormatter {
	return &TextFormatter{w: w, maps: maps}
}

// Write renders every object and its program headers.
func (f *TextFormatter) Write(objs []phdrs.Object) error {
	for _, o := range objs {
		if _, err := fmt.Fprintln(f.w, o); err != nil {
			return fmt.Errorf("writing object: %w", err)
		}

		// The main executable's bias can be zero (non-PIE); only
		// biased objects can be looked up by address.
		if m := procmaps.Find(f.maps, o.Addr()); m != nil && o.Addr() != 0 {
			if _, err := fmt.Fprintf(f.w, "   mapped %#x-%#x %s %s\n", m.Start, m.End, m.Perms, m.Path); err != nil {
				return fmt.Errorf("writing mapping: %w", err)
			}
		}

		for p := range o.Phdrs() {
			if _, err := fmt.Fprintf(f.w, "   %s\n", p); err != nil {
				return fmt.Errorf("writing header: %w", err)
			}
		}
	}
	return nil
}
