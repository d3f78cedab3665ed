package sre

// linesPattern is the fixed pattern behind the L shorthand (spec §4.4):
// "extract each line including its trailing newline." Lines with no
// trailing newline are never selected.
const linesPattern = `[^\n]*\n`

/*
 cmdExtractCmd implements x/regex/ and y/regex/ (spec §4.5).

 An absent pattern, or one of the anchor-only forms ^, $, ^$, produces
 zero-length matches only everywhere, so the two commands take their
 documented shortcuts instead of running the general algorithm: x clears
 the selection list outright, while y leaves it untouched (the complement
 of "nothing" within a selection is that selection itself).
*/
func cmdExtractCmd(ctx *Context, cmd Command, inverse bool) error {
	pattern := arg(cmd.Arg1)
	if cmd.Pattern == nil || pattern == "^" || pattern == "$" || pattern == "^$" {
		if inverse {
			return nil
		}
		ctx.Sel.Clear()
		return nil
	}
	return extractWithRegex(ctx, cmd.Pattern, inverse)
}

// cmdLines implements L, the x/[^\n]*\n/ shorthand.
func cmdLines(ctx *Context) error {
	re, err := CompileRegex(linesPattern, ctx.Flags)
	if err != nil {
		return err
	}
	return extractWithRegex(ctx, re, false)
}

/*
 extractWithRegex runs the per-selection extract/ytract algorithm of spec
 §4.5 for an already-compiled, non-anchor pattern: for each selection S in
 order, compute the non-overlapping non-zero-length matches within S (or,
 for y, their complement within S), and splice the result into the
 selection list in S's place — unless the result is exactly {S}, in which
 case S is left unchanged.
*/
func extractWithRegex(ctx *Context, re *Regex, inverse bool) error {
	sels := ctx.Sel.ToSlice()
	result := make([]Interval, 0, len(sels))

	for _, sel := range sels {
		data := ctx.Buffer.Slice(sel.From, sel.End())
		matches := re.FindAll(data)

		var ivs []Interval
		if inverse {
			matchIvs := make([]Interval, len(matches))
			for i, m := range matches {
				matchIvs[i] = Interval{From: sel.From + m.So, Len: m.Eo - m.So}
			}
			ivs = Flip(matchIvs, sel)
		} else {
			ivs = make([]Interval, len(matches))
			for i, m := range matches {
				ivs[i] = Interval{From: sel.From + m.So, Len: m.Eo - m.So}
			}
		}

		if len(ivs) == 1 && ivs[0] == sel {
			result = append(result, sel)
			continue
		}
		result = append(result, ivs...)
	}

	ctx.Sel.ReplaceAll(result)
	return nil
}
