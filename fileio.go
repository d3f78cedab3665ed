package sre

import (
	"fmt"
	"os"
)

// cmdReadFile implements r/file/: slurp file fully, then run the
// equivalent of c/<contents>/ (spec §4.9).
func cmdReadFile(ctx *Context, cmd Command) error {
	filename := arg(cmd.Arg1)
	if filename == "" {
		return fmt.Errorf("%w: r requires a filename", errEmptyArgument)
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("reading %s: %w: %w", filename, errReadFailure, err)
	}
	return cmdChange(ctx, string(data))
}

// cmdReadAppend implements R/file/: slurp file fully, then run the
// equivalent of a/<contents>/ (append to each selection) (spec §4.9).
func cmdReadAppend(ctx *Context, cmd Command) error {
	filename := arg(cmd.Arg1)
	if filename == "" {
		return fmt.Errorf("%w: R requires a filename", errEmptyArgument)
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("reading %s: %w: %w", filename, errReadFailure, err)
	}
	return cmdAppend(ctx, string(data))
}

/*
 cmdWriteFile implements w/file/sep/ and W/file/sep/: write every current
 selection's bytes to file, joined by sep, truncating the file first (w)
 or appending to it (W). A missing sep argument counts as empty, per the
 Open Question decision recorded in SPEC_FULL.md. The selection list and
 buffer are left untouched; this command has no rewrite-protocol
 involvement at all.
*/
func cmdWriteFile(ctx *Context, cmd Command, appendMode bool) error {
	filename := arg(cmd.Arg1)
	if filename == "" {
		kind := "w"
		if appendMode {
			kind = "W"
		}
		return fmt.Errorf("%w: %s requires a filename", errEmptyArgument, kind)
	}
	sep := []byte(arg(cmd.Arg2))

	flags := os.O_WRONLY | os.O_CREATE
	if appendMode {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	f, err := os.OpenFile(filename, flags, 0o644)
	if err != nil {
		return fmt.Errorf("opening %s: %w: %w", filename, errWriteFailure, err)
	}
	defer f.Close()

	sels := ctx.Sel.ToSlice()
	for i, sel := range sels {
		if i > 0 {
			if _, err := f.Write(sep); err != nil {
				return fmt.Errorf("writing %s: %w: %w", filename, errWriteFailure, err)
			}
		}
		if _, err := f.Write(ctx.Buffer.Slice(sel.From, sel.End())); err != nil {
			return fmt.Errorf("writing %s: %w: %w", filename, errWriteFailure, err)
		}
	}
	return nil
}
