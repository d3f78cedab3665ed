package sre

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCmdReadFileReplacesSelections(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.txt")
	if err := os.WriteFile(path, []byte("injected"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	ctx := newTestContext("foo bar")
	ctx.Sel.ReplaceAll([]Interval{{From: 0, Len: 3}})
	err := cmdReadFile(ctx, Command{Kind: KindReadFile, Arg1: strptr(path)})
	if err != nil {
		t.Fatalf("cmdReadFile: %v", err)
	}
	if string(ctx.Buffer.Bytes()) != "injected bar" {
		t.Fatalf("buffer = %q, want %q", ctx.Buffer.Bytes(), "injected bar")
	}
}

func TestCmdReadFileMissingIsReadFailure(t *testing.T) {
	ctx := newTestContext("foo")
	err := cmdReadFile(ctx, Command{Kind: KindReadFile, Arg1: strptr(filepath.Join(t.TempDir(), "missing"))})
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
	if ExitCode(err) != 3 {
		t.Fatalf("ExitCode = %d, want 3", ExitCode(err))
	}
}

func TestCmdReadFileEmptyFilenameIsEmptyArgument(t *testing.T) {
	ctx := newTestContext("foo")
	err := cmdReadFile(ctx, Command{Kind: KindReadFile, Arg1: nil})
	if err == nil {
		t.Fatalf("expected error for missing filename")
	}
	if ExitCode(err) != 8 {
		t.Fatalf("ExitCode = %d, want 8", ExitCode(err))
	}
}

func TestCmdWriteFileTruncatesAndJoinsWithSeparator(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	ctx := newTestContext("foo bar baz")
	ctx.Sel.ReplaceAll([]Interval{{From: 0, Len: 3}, {From: 4, Len: 3}, {From: 8, Len: 3}})
	err := cmdWriteFile(ctx, Command{Kind: KindWriteFile, Arg1: strptr(path), Arg2: strptr(",")}, false)
	if err != nil {
		t.Fatalf("cmdWriteFile: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "foo,bar,baz" {
		t.Fatalf("file contents = %q, want %q", got, "foo,bar,baz")
	}
}

func TestCmdWriteFileAppendMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	if err := os.WriteFile(path, []byte("prefix-"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	ctx := newTestContext("abc")
	err := cmdWriteFile(ctx, Command{Kind: KindWriteAppend, Arg1: strptr(path)}, true)
	if err != nil {
		t.Fatalf("cmdWriteFile: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "prefix-abc" {
		t.Fatalf("file contents = %q, want %q", got, "prefix-abc")
	}
}
