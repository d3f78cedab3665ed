package sre

import (
	"regexp"
	"strings"
)

// RegexFlags is the process-wide triple fixed from CLI flags before any
// pass begins (spec §3, "Regex flags"). It never changes after the program
// starts running.
type RegexFlags struct {
	IgnoreCase bool
	Extended   bool // POSIX extended syntax; false selects basic syntax
	RegNewline bool // "any character" classes do not match newline
}

// Match is one non-overlapping leftmost match, as byte offsets relative to
// whatever slice FindAll was called against.
type Match struct {
	So, Eo int
}

// Regex wraps a compiled pattern. The teacher compiles with plain
// regexp.Compile (Perl/RE2 syntax, leftmost-first); this module also
// compiles with regexp.Compile, since the inline (?i)/(?s) flag syntax
// CompileRegex relies on is only recognized under Perl/RE2 syntax. It then
// calls Longest() on the result, the documented stdlib idiom for getting
// POSIX leftmost-longest match semantics back, which is what the spec's
// -B/-E and ed/sed/grep users expect. coregx/coregex was considered (see
// DESIGN.md) but its v1.0 API has no case-insensitive or newline-sensitive
// flags, which the spec's -i/-N require.
type Regex struct {
	re *regexp.Regexp
}

// CompileRegex compiles pattern under flags. An empty pattern is never
// passed here: callers follow the empty-pattern rules of §4.4/§4.5/§4.6
// before reaching a compile call.
func CompileRegex(pattern string, flags RegexFlags) (*Regex, error) {
	p := pattern
	if !flags.Extended {
		p = translateBRE(p)
	}
	if !flags.RegNewline {
		// Go's regexp already excludes newline from '.' unless (?s) is
		// set; the spec's default (no -N) wants '.' to match it. (?s)'s
		// flag scope runs to the end of the enclosing group, i.e. the
		// whole pattern here, so prepending it is safe even when p's
		// top level is an alternation.
		p = "(?s)" + p
	}
	if flags.IgnoreCase {
		p = "(?i)" + p
	}
	re, err := regexp.Compile(p)
	if err != nil {
		return nil, err
	}
	re.Longest()
	return &Regex{re: re}, nil
}

/*
 translateBRE rewrites a POSIX basic regular expression into the
 ERE-flavored syntax Go's regexp package expects, by swapping the escaped
 and bare forms of the basic-regex metacharacters ( ) { } + ? | : in BRE
 these are literal unless escaped; in ERE (and in Go's regexp) the bare
 forms are the metacharacters. A single left-to-right pass is enough
 because BRE's backslash-escape convention for these characters never
 nests.
*/
func translateBRE(p string) string {
	const swapped = "(){}+?|"
	var b strings.Builder
	b.Grow(len(p))
	for i := 0; i < len(p); i++ {
		c := p[i]
		if c == '\\' && i+1 < len(p) && strings.IndexByte(swapped, p[i+1]) >= 0 {
			b.WriteByte(p[i+1])
			i++
			continue
		}
		if strings.IndexByte(swapped, c) >= 0 {
			b.WriteByte('\\')
			b.WriteByte(c)
			continue
		}
		if c == '\\' && i+1 < len(p) {
			b.WriteByte(c)
			b.WriteByte(p[i+1])
			i++
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

/*
 FindAll returns the non-overlapping leftmost matches in b, applying the
 zero-length policy of spec §4.3: when a match is empty (eo == so), the
 search cursor still advances by one byte to guarantee progress, but the
 empty match itself is not emitted. Substitution's anchor-only special
 cases (^, $, ^$) are handled by the caller before FindAll is ever reached
 for those patterns.
*/
func (r *Regex) FindAll(b []byte) []Match {
	var out []Match
	pos := 0
	for pos <= len(b) {
		loc := r.re.FindIndex(b[pos:])
		if loc == nil {
			break
		}
		so, eo := pos+loc[0], pos+loc[1]
		if so == eo {
			pos = so + 1
			continue
		}
		out = append(out, Match{So: so, Eo: eo})
		pos = eo
	}
	return out
}

// MatchAny reports whether the pattern matches anywhere in b, used by the
// g/v filter test (which does not iterate matches, just checks presence).
func (r *Regex) MatchAny(b []byte) bool {
	return r.re.Match(b)
}
