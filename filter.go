package sre

/*
 cmdFilter implements g/regex/ and v/regex/ (spec §4.6): for each
 selection, test whether the pattern matches anywhere inside it, and keep
 (g) or drop (v) accordingly. An absent pattern is a special case: g drops
 every selection, v retains every selection, without ever calling into the
 regex engine. (The source this was distilled from actually treats a NULL
 regex as a vacuous match, which would invert this; the distillation's
 explicit rule is followed here instead of the original's.)
*/
func cmdFilter(ctx *Context, cmd Command, inverse bool) error {
	if cmd.Pattern == nil {
		if inverse {
			return nil
		}
		ctx.Sel.Clear()
		return nil
	}

	sels := ctx.Sel.ToSlice()
	kept := make([]Interval, 0, len(sels))
	for _, sel := range sels {
		data := ctx.Buffer.Slice(sel.From, sel.End())
		matched := cmd.Pattern.MatchAny(data)
		if matched != inverse {
			kept = append(kept, sel)
		}
	}
	ctx.Sel.ReplaceAll(kept)
	return nil
}
