package sre

// selDelta records, for one selection, how many matches it had and how
// many bytes those matches covered — the two numbers spec §4.2's
// selection-offset update needs.
type selDelta struct {
	count         int
	replacedBytes int
}

/*
 cmdSubstitute implements s/regex/replacement/ (spec §4.4).

 The regex is absent (Command.Pattern == nil) exactly when the raw pattern
 argument was empty, per the parser's contract that empty patterns are
 never compiled. In that case the command is a no-op unless the raw
 pattern text is one of the three anchor-only forms ^, $, ^$, which are
 handled structurally rather than through the regex engine: §4.3's
 zero-length-match policy would otherwise suppress every one of their
 matches, since anchors only ever produce empty matches.
*/
func cmdSubstitute(ctx *Context, cmd Command) error {
	pattern := arg(cmd.Arg1)
	replacement := []byte(arg(cmd.Arg2))
	return substitute(ctx, pattern, cmd.Pattern, replacement)
}

func substitute(ctx *Context, pattern string, compiled *Regex, replacement []byte) error {
	sels := ctx.Sel.ToSlice()
	if compiled == nil && pattern != "^" && pattern != "$" && pattern != "^$" {
		return nil
	}

	targets := make([]Target, 0)
	deltas := make([]selDelta, len(sels))
	total := 0

	for i, sel := range sels {
		matches := matchesForSubstitute(ctx, sel, pattern, compiled)
		var replacedBytes int
		for _, m := range matches {
			targets = append(targets, Target{From: sel.From + m.So, Len: m.Eo - m.So, Repl: replacement})
			replacedBytes += m.Eo - m.So
		}
		deltas[i] = selDelta{count: len(matches), replacedBytes: replacedBytes}
		total += len(matches)
	}

	if total == 0 {
		return nil
	}

	ctx.Buffer.Replace(Rewrite(ctx.Buffer.Bytes(), targets))

	newSels := make([]Interval, len(sels))
	cumulative := 0
	for i, sel := range sels {
		delta := deltas[i].count*len(replacement) - deltas[i].replacedBytes
		newSels[i] = Interval{From: sel.From + cumulative, Len: sel.Len + delta}
		cumulative += delta
	}
	ctx.Sel.ReplaceAll(newSels)
	return nil
}

// matchesForSubstitute computes the matches of pattern within sel,
// honoring the anchor-only special cases of spec §4.4 ahead of the
// general compiled-regex path.
func matchesForSubstitute(ctx *Context, sel Interval, pattern string, compiled *Regex) []Match {
	switch pattern {
	case "^":
		return []Match{{So: 0, Eo: 0}}
	case "$":
		return []Match{{So: sel.Len, Eo: sel.Len}}
	case "^$":
		if sel.Len == 0 {
			return []Match{{So: 0, Eo: 0}}
		}
		return nil
	default:
		data := ctx.Buffer.Slice(sel.From, sel.End())
		return compiled.FindAll(data)
	}
}

// cmdInsert implements i/str/ as s/^/str/ (spec §4.8).
func cmdInsert(ctx *Context, str string) error {
	return substitute(ctx, "^", nil, []byte(str))
}

// cmdAppend implements a/str/ as s/$/str/ (spec §4.8).
func cmdAppend(ctx *Context, str string) error {
	return substitute(ctx, "$", nil, []byte(str))
}

// cmdSurround implements S/pre/suf/ as i/pre/ followed by a/suf/ (spec
// §4.8).
func cmdSurround(ctx *Context, pre, suf string) error {
	if err := cmdInsert(ctx, pre); err != nil {
		return err
	}
	return cmdAppend(ctx, suf)
}
