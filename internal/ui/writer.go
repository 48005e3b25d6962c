package ui

import (
	"fmt"
	"io"

	"github.com/footprint-tools/parsecmd/internal/domain"
)

// Writer implements domain.OutputWriter over any io.Writer.
type Writer struct {
	out io.Writer
}

// NewWriterTo creates a new Writer that writes to the specified writer.
func NewWriterTo(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (n int, err error) {
	return w.out.Write(p)
}

// Printf formats and prints to the output.
func (w *Writer) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(w.out, format, args...)
}

// Println prints a line to the output.
func (w *Writer) Println(args ...any) (int, error) {
	return fmt.Fprintln(w.out, args...)
}

var _ domain.OutputWriter = (*Writer)(nil)
