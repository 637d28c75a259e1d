package listing

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora/v4"
)

// WriteOptions controls how a listing is rendered.
type WriteOptions struct {
	ShowBytes  bool
	ShowLabels bool
	Color      bool
}

// Write renders l one bundle per line:
//
//	4000000000000480: [MIB] ld8 r1=[r15]; mov b6=r16; br.few b6;;
//
// Labels get a line of their own before the bundle they name, and
// branches to a label are annotated with it.
func Write(w io.Writer, l *Listing, opts WriteOptions) error {
	au := aurora.New(aurora.WithColors(opts.Color))
	bw := bufio.NewWriter(w)

	for i := range l.Entries {
		e := &l.Entries[i]
		if opts.ShowLabels {
			if name, ok := l.Label(e.Addr); ok {
				if i > 0 {
					fmt.Fprintln(bw)
				}
				fmt.Fprintf(bw, "%s:\n", au.Yellow(name))
			}
		}

		fmt.Fprintf(bw, "%s: ", au.Cyan(fmt.Sprintf("%016x", e.Addr)))
		if opts.ShowBytes {
			fmt.Fprintf(bw, "%-47s  ", fmt.Sprintf("% x", e.Bytes))
		}
		if e.Err != nil {
			fmt.Fprintf(bw, "%s\n", au.Red("<bad bundle: "+e.Err.Error()+">"))
			continue
		}
		bw.WriteString(e.Bundle.String())
		if opts.ShowLabels {
			if refs := l.references(e); refs != "" {
				fmt.Fprintf(bw, "  %s", au.Faint("// "+refs))
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// references names the labels targeted from e.
func (l *Listing) references(e *Entry) string {
	var names []string
	for k := range e.Bundle.Instructions() {
		in := &e.Bundle.Insts[k]
		if in.Reserved() {
			continue
		}
		disp, _, ok := in.Target()
		if !ok {
			continue
		}
		if name, ok := l.Label(e.Addr + uint64(disp)); ok {
			names = append(names, name)
		}
	}
	return strings.Join(names, ", ")
}
