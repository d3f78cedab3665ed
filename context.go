package sre

import (
	"fmt"
	"io"
)

/*
 Context threads the mutable state a program's commands operate on —
 exactly the "explicit context value" the Design Notes call for in place
 of package-level globals. It replaces the teacher's *State struct, which
 played the same role for the line-buffer editor: one value, passed
 explicitly into every command, rather than reached for as a global.

 RegexFlags is fixed for the lifetime of a Context; nothing in command
 dispatch ever changes it.
*/
type Context struct {
	Buffer *Buffer
	Sel    *Selections
	Flags  RegexFlags
	Stdout io.Writer
}

// NewContext seeds a fresh pass over data: one selection covering the
// whole buffer, as spec §2's data-flow section describes.
func NewContext(data []byte, flags RegexFlags, stdout io.Writer) *Context {
	buf := NewBuffer(data)
	sel := NewSelections()
	sel.Seed(buf.Len())
	return &Context{Buffer: buf, Sel: sel, Flags: flags, Stdout: stdout}
}

// Run applies prog's commands to ctx in order, stopping at the first
// error (spec §5: "commands execute one after the other; no concurrency
// inside the core").
func Run(ctx *Context, prog Program) error {
	for _, cmd := range prog {
		if err := execCommand(ctx, cmd); err != nil {
			return err
		}
	}
	return nil
}

/*
 execCommand dispatches a single command by kind. A tagged-variant struct with a
 switch on Kind is what the Design Notes ask for in place of a table of
 function pointers; the per-kind helpers it calls out to are plain
 functions, grouped by spec section across substitute.go, extract.go,
 filter.go, selectops.go, fileio.go, and external.go.
*/
func execCommand(ctx *Context, cmd Command) error {
	switch cmd.Kind {
	case KindPrint:
		return cmdPrint(ctx)
	case KindDelete:
		return cmdDelete(ctx)
	case KindChange:
		return cmdChange(ctx, arg(cmd.Arg1))
	case KindSubstitute:
		return cmdSubstitute(ctx, cmd)
	case KindFilter:
		return cmdFilter(ctx, cmd, false)
	case KindVFilter:
		return cmdFilter(ctx, cmd, true)
	case KindExtract:
		return cmdExtractCmd(ctx, cmd, false)
	case KindYtract:
		return cmdExtractCmd(ctx, cmd, true)
	case KindInsert:
		return cmdInsert(ctx, arg(cmd.Arg1))
	case KindAppend:
		return cmdAppend(ctx, arg(cmd.Arg1))
	case KindSurround:
		return cmdSurround(ctx, arg(cmd.Arg1), arg(cmd.Arg2))
	case KindFlip:
		return cmdFlip(ctx)
	case KindUndo:
		return cmdUndo(ctx)
	case KindReadFile:
		return cmdReadFile(ctx, cmd)
	case KindReadAppend:
		return cmdReadAppend(ctx, cmd)
	case KindWriteFile:
		return cmdWriteFile(ctx, cmd, false)
	case KindWriteAppend:
		return cmdWriteFile(ctx, cmd, true)
	case KindShellVoid:
		return cmdShellVoid(ctx, cmd)
	case KindShellCapture:
		return cmdShellCapture(ctx, cmd)
	case KindShellFeed:
		return cmdShellFeed(ctx, cmd)
	case KindShellPipe:
		return cmdShellPipe(ctx, cmd)
	case KindShellTest:
		return cmdShellTest(ctx, cmd, false)
	case KindShellTestNeg:
		return cmdShellTest(ctx, cmd, true)
	case KindLines:
		return cmdLines(ctx)
	default:
		return fmt.Errorf("unrecognised command kind: %q", cmd.Kind)
	}
}
