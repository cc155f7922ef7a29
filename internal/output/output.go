// Package output carries the stdout stream for a command's result through
// the context. Results are what scripts consume, so they must arrive on
// stdout alone: cd "$(phantom where x)" sees the path and nothing else,
// while warnings and verbose chatter go to stderr via the log package.
package output

import (
	"context"
	"fmt"
	"io"
	"os"
)

type ctxKey struct{}

// Printer writes a command's result.
type Printer struct {
	w io.Writer
}

// WithPrinter attaches a Printer writing to w.
func WithPrinter(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, ctxKey{}, &Printer{w: w})
}

// FromContext returns the attached Printer, defaulting to os.Stdout.
func FromContext(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return &Printer{w: os.Stdout}
}

func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}

func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.w, a...)
}
