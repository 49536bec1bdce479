package cli

import (
	"fmt"
	"io"
)

// progressPrinter renders pipeline progress. On a TTY it rewrites one status
// line in place; otherwise it prints a line per change so logs stay readable.
type progressPrinter struct {
	w        io.Writer
	tty      bool
	lastPct  int
	lastMsg  string
	rendered bool
}

func newProgressPrinter(w io.Writer, tty bool) *progressPrinter {
	return &progressPrinter{w: w, tty: tty, lastPct: -1}
}

func (p *progressPrinter) update(pct int, msg string) {
	if pct == p.lastPct && msg == p.lastMsg {
		return
	}
	p.lastPct, p.lastMsg = pct, msg
	if p.tty {
		fmt.Fprintf(p.w, "\r[%3d%%] %-48s", pct, msg)
		p.rendered = true
		return
	}
	fmt.Fprintf(p.w, "[%3d%%] %s\n", pct, msg)
}

func (p *progressPrinter) finish() {
	if p.tty && p.rendered {
		fmt.Fprintln(p.w)
	}
}
