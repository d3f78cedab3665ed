package sre

/*
 Buffer is the document under edit: a contiguous byte sequence plus its
 length. Exactly one Buffer exists per processed input, and it is replaced
 wholesale (never mutated in place) whenever a command rewrites ranges — the
 same "own the slice outright, swap it in on write" shape the teacher uses
 for its *list.List line buffer in CmdEdit and CmdChange.
*/
type Buffer struct {
	data []byte
}

// NewBuffer takes ownership of data as the initial document contents.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: data}
}

// Bytes returns the buffer's current contents. Callers must not retain a
// reference across a mutating call; the backing array is replaced, not
// edited, on every rewrite.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Len returns the current length of the buffer in bytes.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Slice returns the bytes in [from, to). Callers are trusted to pass
// in-bounds offsets; selection offsets are kept consistent with the
// buffer by the mutation protocol below.
func (b *Buffer) Slice(from, to int) []byte {
	return b.data[from:to]
}

// Replace swaps in a freshly built buffer, as produced by Rewrite.
func (b *Buffer) Replace(data []byte) {
	b.data = data
}

// Target names one byte range to be replaced during a rewrite, and the
// literal bytes to splice in its place.
type Target struct {
	From int
	Len  int
	Repl []byte
}

/*
 Rewrite is the shared buffer-mutation algorithm of spec §4.2. Given data
 and a sorted, disjoint list of targets, it builds a fresh byte slice with
 each target's range replaced by its Repl bytes, copying the untouched
 spans between (and around) the targets unchanged.

 Every rewriting command — c, s, d, r, R, i, a, S, and | — funnels through
 this single function, supplying its own targets and replacement bytes.
*/
func Rewrite(data []byte, targets []Target) []byte {
	if len(targets) == 0 {
		return data
	}
	newLen := len(data)
	for _, t := range targets {
		newLen += len(t.Repl) - t.Len
	}
	out := make([]byte, 0, newLen)
	pos := 0
	for _, t := range targets {
		out = append(out, data[pos:t.From]...)
		out = append(out, t.Repl...)
		pos = t.From + t.Len
	}
	out = append(out, data[pos:]...)
	return out
}
