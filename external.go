package sre

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
)

/*
 The six external-command variants of spec §4.10 all shell out to
 /bin/sh -c <cmd>, the same interpreter srek's C ancestor invokes via
 execl. Every command requires a non-empty cmd argument; an empty one is
 the same errEmptyArgument case r/R/w/W raise for a missing filename.

 !/cmd/  runs cmd once per selection, inheriting stdout/stderr, and never
         touches the buffer or the selection list.
 </cmd/  runs cmd exactly once, captures its stdout, and replaces every
         selection with it (a change, same as cmd_change in the C source).
 >/cmd/  runs cmd once per selection, feeding the selection as stdin;
         cmd's own stdout/stderr are inherited, and nothing is replaced.
 |/cmd/  runs cmd once per selection, piping the selection in on stdin
         and replacing the selection with whatever cmd writes to stdout.
 t/cmd/  keeps a selection only if cmd (fed the selection on stdin) exits
         zero; T keeps it only if cmd exits non-zero.

 A subprocess is only ever given a single selection's bytes at a time,
 never the whole buffer, matching the per-selection pipe protocol the C
 implementation uses for cmd_extcmd_io/testinternal. os/exec feeds the
 child's stdin and drains its stdout in separate goroutines, so a
 selection larger than the pipe buffer does not deadlock the pipe.
*/

func shellArg(cmd Command) (string, error) {
	s := arg(cmd.Arg1)
	if s == "" {
		return "", fmt.Errorf("%w: %s requires a command", errEmptyArgument, cmd.Kind)
	}
	return s, nil
}

func newShellCmd(script string) *exec.Cmd {
	c := exec.Command("/bin/sh", "-c", script)
	setPdeathsig(c)
	return c
}

// cmdShellVoid implements '!': run script once per selection, with no
// capture and no buffer effect.
func cmdShellVoid(ctx *Context, cmd Command) error {
	script, err := shellArg(cmd)
	if err != nil {
		return err
	}
	for range ctx.Sel.ToSlice() {
		c := newShellCmd(script)
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr
		if err := c.Run(); err != nil {
			if _, ok := err.(*exec.ExitError); !ok {
				return fmt.Errorf("running %q: %w: %w", script, errSubprocess, err)
			}
		}
	}
	return nil
}

// cmdShellCapture implements '<': run script once, then replace every
// selection with its captured stdout, same as a c/.../ over the whole
// list.
func cmdShellCapture(ctx *Context, cmd Command) error {
	script, err := shellArg(cmd)
	if err != nil {
		return err
	}
	c := newShellCmd(script)
	var out bytes.Buffer
	c.Stdout = &out
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		if _, ok := err.(*exec.ExitError); !ok {
			return fmt.Errorf("running %q: %w: %w", script, errSubprocess, err)
		}
	}
	return cmdChange(ctx, out.String())
}

// cmdShellFeed implements '>': run script once per selection, feeding
// the selection's bytes as stdin; script's own stdout/stderr are
// inherited and nothing in the buffer changes.
func cmdShellFeed(ctx *Context, cmd Command) error {
	script, err := shellArg(cmd)
	if err != nil {
		return err
	}
	for _, sel := range ctx.Sel.ToSlice() {
		c := newShellCmd(script)
		c.Stdin = bytes.NewReader(ctx.Buffer.Slice(sel.From, sel.End()))
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr
		if err := c.Run(); err != nil {
			if _, ok := err.(*exec.ExitError); !ok {
				return fmt.Errorf("running %q: %w: %w", script, errSubprocess, err)
			}
		}
	}
	return nil
}

/*
 cmdShellPipe implements '|': for each selection, run script with the
 selection piped in on stdin, and splice script's stdout in its place.
 This is a rewrite-protocol command like s/c/d: every selection is
 replaced in one pass, then the selection list resets to the whole
 buffer (spec §4.10, mirroring cmd_extcmd_io's selection reset).
*/
func cmdShellPipe(ctx *Context, cmd Command) error {
	script, err := shellArg(cmd)
	if err != nil {
		return err
	}
	sels := ctx.Sel.ToSlice()
	targets := make([]Target, len(sels))
	for i, sel := range sels {
		out, err := runCapture(script, ctx.Buffer.Slice(sel.From, sel.End()))
		if err != nil {
			return err
		}
		targets[i] = Target{From: sel.From, Len: sel.Len, Repl: out}
	}
	ctx.Buffer.Replace(Rewrite(ctx.Buffer.Bytes(), targets))
	ctx.Sel.Seed(ctx.Buffer.Len())
	return nil
}

// cmdShellTest implements 't' and 'T': feed each selection to script on
// stdin, discard its stdout, and keep the selection iff script's exit
// status matches the wanted outcome (zero for t, non-zero for T).
func cmdShellTest(ctx *Context, cmd Command, negated bool) error {
	script, err := shellArg(cmd)
	if err != nil {
		return err
	}
	sels := ctx.Sel.ToSlice()
	kept := make([]Interval, 0, len(sels))
	for _, sel := range sels {
		c := newShellCmd(script)
		c.Stdin = bytes.NewReader(ctx.Buffer.Slice(sel.From, sel.End()))
		c.Stdout = io.Discard
		c.Stderr = io.Discard
		runErr := c.Run()
		success := runErr == nil
		if _, ok := runErr.(*exec.ExitError); !ok && runErr != nil {
			return fmt.Errorf("running %q: %w: %w", script, errSubprocess, runErr)
		}
		if success != negated {
			kept = append(kept, sel)
		}
	}
	ctx.Sel.ReplaceAll(kept)
	return nil
}

// runCapture runs script with in on stdin and returns its full stdout.
func runCapture(script string, in []byte) ([]byte, error) {
	c := newShellCmd(script)
	c.Stdin = bytes.NewReader(in)
	var out bytes.Buffer
	c.Stdout = &out
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		if _, ok := err.(*exec.ExitError); !ok {
			return nil, fmt.Errorf("running %q: %w: %w", script, errSubprocess, err)
		}
	}
	return out.Bytes(), nil
}
