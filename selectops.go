package sre

import "fmt"

// cmdPrint implements 'p': emit each selection's bytes to stdout in list
// order. It never mutates the buffer or the selection list (spec's P2).
func cmdPrint(ctx *Context) error {
	for _, sel := range ctx.Sel.ToSlice() {
		if _, err := ctx.Stdout.Write(ctx.Buffer.Slice(sel.From, sel.End())); err != nil {
			return fmt.Errorf("writing output: %w: %w", errWriteFailure, err)
		}
	}
	return nil
}

// cmdDelete implements 'd': rewrite every selection to nothing, then
// reset selections to cover the whole (shrunk) buffer (spec §4.8).
func cmdDelete(ctx *Context) error {
	return rewriteSelectionsAndReset(ctx, nil)
}

// cmdChange implements c/str/: rewrite every selection to str, then reset
// selections to cover the whole buffer (spec §4.8). This happens even if
// no selections were active beforehand — the Open Question decision
// recorded in SPEC_FULL.md.
func cmdChange(ctx *Context, str string) error {
	return rewriteSelectionsAndReset(ctx, []byte(str))
}

// rewriteSelectionsAndReset is the shared body of 'd' and 'c': every
// current selection is replaced by the same literal bytes (empty for d),
// and afterward the selection list is reset to {(0, n)}, per spec §4.2's
// rule for any command that replaces buffer content at the command level.
func rewriteSelectionsAndReset(ctx *Context, repl []byte) error {
	sels := ctx.Sel.ToSlice()
	targets := make([]Target, len(sels))
	for i, sel := range sels {
		targets[i] = Target{From: sel.From, Len: sel.Len, Repl: repl}
	}
	ctx.Buffer.Replace(Rewrite(ctx.Buffer.Bytes(), targets))
	ctx.Sel.Seed(ctx.Buffer.Len())
	return nil
}

// cmdFlip implements '~': replace the selection list with its complement
// against the whole buffer (spec §4.7).
func cmdFlip(ctx *Context) error {
	ctx.Sel.ReplaceAll(Flip(ctx.Sel.ToSlice(), Interval{From: 0, Len: ctx.Buffer.Len()}))
	return nil
}

// cmdUndo implements 'u': clear the selection list and reseed it with a
// single interval covering the whole buffer (spec §4.7).
func cmdUndo(ctx *Context) error {
	ctx.Sel.Seed(ctx.Buffer.Len())
	return nil
}
