package sre

import "testing"

func TestCompileRegexExtendedSyntax(t *testing.T) {
	re, err := CompileRegex(`fo+`, RegexFlags{Extended: true})
	if err != nil {
		t.Fatalf("CompileRegex: %v", err)
	}
	if !re.MatchAny([]byte("foo")) {
		t.Fatalf("expected match")
	}
}

func TestCompileRegexBasicSyntaxEscapedMetachars(t *testing.T) {
	// In BRE, '+' is literal and '\+' means one-or-more.
	re, err := CompileRegex(`fo\+`, RegexFlags{Extended: false})
	if err != nil {
		t.Fatalf("CompileRegex: %v", err)
	}
	if !re.MatchAny([]byte("foo")) {
		t.Fatalf("expected \\+ to mean one-or-more in basic syntax")
	}
	reLiteral, err := CompileRegex(`a+b`, RegexFlags{Extended: false})
	if err != nil {
		t.Fatalf("CompileRegex: %v", err)
	}
	if !reLiteral.MatchAny([]byte("a+b")) {
		t.Fatalf("expected bare '+' to be literal in basic syntax")
	}
	if reLiteral.MatchAny([]byte("aaab")) {
		t.Fatalf("bare '+' must not mean one-or-more in basic syntax")
	}
}

func TestCompileRegexIgnoreCase(t *testing.T) {
	re, err := CompileRegex(`foo`, RegexFlags{Extended: true, IgnoreCase: true})
	if err != nil {
		t.Fatalf("CompileRegex: %v", err)
	}
	if !re.MatchAny([]byte("FOO")) {
		t.Fatalf("expected case-insensitive match")
	}
}

func TestCompileRegexRegNewlineDefault(t *testing.T) {
	// Default (no -N): '.' matches newline.
	re, err := CompileRegex(`a.b`, RegexFlags{Extended: true})
	if err != nil {
		t.Fatalf("CompileRegex: %v", err)
	}
	if !re.MatchAny([]byte("a\nb")) {
		t.Fatalf("expected '.' to match newline by default")
	}

	// With -N: '.' does not match newline.
	reN, err := CompileRegex(`a.b`, RegexFlags{Extended: true, RegNewline: true})
	if err != nil {
		t.Fatalf("CompileRegex: %v", err)
	}
	if reN.MatchAny([]byte("a\nb")) {
		t.Fatalf("expected '.' to not match newline with reg-newline set")
	}
}

func TestCompileRegexAlternationAtTopLevelUnderDefaultFlags(t *testing.T) {
	// Regression: CompileRegex prepends (?s) ahead of the pattern, so a
	// top-level alternation must still see the flag apply to the whole
	// expression rather than just its first branch.
	re, err := CompileRegex(`a|b`, RegexFlags{Extended: true})
	if err != nil {
		t.Fatalf("CompileRegex: %v", err)
	}
	if !re.MatchAny([]byte("a")) || !re.MatchAny([]byte("b")) {
		t.Fatalf("expected both alternation branches to match")
	}
	if re.MatchAny([]byte("c")) {
		t.Fatalf("unexpected match of neither alternation branch")
	}
}

func TestFindAllSkipsZeroLengthMatches(t *testing.T) {
	re, err := CompileRegex(`x*`, RegexFlags{Extended: true})
	if err != nil {
		t.Fatalf("CompileRegex: %v", err)
	}
	matches := re.FindAll([]byte("axxb"))
	if len(matches) != 1 || matches[0] != (Match{So: 1, Eo: 3}) {
		t.Fatalf("FindAll = %v, want one match at [1,3)", matches)
	}
}

func TestFindAllNonOverlapping(t *testing.T) {
	re, err := CompileRegex(`foo`, RegexFlags{Extended: true})
	if err != nil {
		t.Fatalf("CompileRegex: %v", err)
	}
	matches := re.FindAll([]byte("foo bar foo"))
	want := []Match{{So: 0, Eo: 3}, {So: 8, Eo: 11}}
	if len(matches) != len(want) {
		t.Fatalf("FindAll = %v, want %v", matches, want)
	}
	for i := range want {
		if matches[i] != want[i] {
			t.Fatalf("FindAll = %v, want %v", matches, want)
		}
	}
}
