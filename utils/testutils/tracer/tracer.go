// Package tracer provides a function to dump the current band profile,
// which may be used in debug mode.
package tracer

import (
	"fmt"
	"io"
	"os"

	"github.com/benoitkugler/floatlayout/bands"
)

type Tracer struct {
	out io.Writer
}

// NewTracer panics if an error occurs.
func NewTracer(outFile string) Tracer {
	f, err := os.Create(outFile)
	if err != nil {
		panic(err)
	}

	return Tracer{out: f}
}

// NewTracerWriter dumps to the given writer.
func NewTracerWriter(out io.Writer) Tracer { return Tracer{out: out} }

func (t Tracer) Dump(line string) {
	fmt.Fprintln(t.out, line)
}

// DumpProfile prints one line per band, from the top of the containing
// block downwards.
func (t Tracer) DumpProfile(profile *bands.Profile, context string) {
	fmt.Fprintln(t.out, context)
	for _, b := range profile.Bands() {
		fmt.Fprintf(t.out, "    [%g, %g) left: %g right: %g\n", b.Top, b.Bottom, b.Left, b.Right)
	}
}
