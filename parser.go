package sre

import (
	"errors"
	"fmt"
	"strings"
)

var (
	errUnterminatedCommand  = errors.New("unterminated command at end of input")
	errUnterminatedArgument = errors.New("unterminated argument at end of input")
	errUnrecognisedCommand  = errors.New("unrecognised command")
)

// kindLetters lists every recognised command letter, for the idle-state
// dispatch in the lexer below.
var kindLetters = map[byte]string{
	'p': KindPrint, 'd': KindDelete, 'c': KindChange, 's': KindSubstitute,
	'g': KindFilter, 'v': KindVFilter, 'x': KindExtract, 'y': KindYtract,
	'i': KindInsert, 'a': KindAppend, 'S': KindSurround, '~': KindFlip,
	'u': KindUndo, 'r': KindReadFile, 'R': KindReadAppend, 'w': KindWriteFile,
	'W': KindWriteAppend, '!': KindShellVoid, '<': KindShellCapture,
	'>': KindShellFeed, '|': KindShellPipe, 't': KindShellTest,
	'T': KindShellTestNeg, 'L': KindLines,
}

/*
 preEscape rewrites the C-style escapes \n and \t in the raw command line
 to their literal byte values, as a single forward pass over the string
 before any argument extraction happens (spec §4.11). It is intentionally
 naive: a run of "\\n" (escaped backslash, then 'n') is not distinguished
 from "\n", matching the source behavior this is modeled on.
*/
func preEscape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case 'n':
				b.WriteByte('\n')
				i++
				continue
			case 't':
				b.WriteByte('\t')
				i++
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// unescapeArg removes one layer of backslash-escaping from a captured
// argument body: "\c" becomes "c" for any byte c, including another
// backslash. This is the parser's final step, applied once per argument
// after its closing delimiter is found (spec §4.11).
func unescapeArg(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			b.WriteByte(s[i+1])
			i++
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// rawCommand is one command as the lexer produces it, before arguments are
// unescaped and patterns compiled.
type rawCommand struct {
	kind string
	args []*string
}

/*
 lex walks s once, implementing the idle / opened-with-args / in-arg state
 machine of spec §4.11:

   - idle: whitespace separates commands and is skipped; '#' starts a
     comment running to the next newline; any other byte must be a
     recognised command letter, which opens that command.
   - opened-with-args: the very next byte must be '/', opening the first
     argument's body.
   - in-arg: bytes accumulate until an unescaped '/' closes the argument;
     a backslash escapes the following byte's role as a terminator. The
     '/' that closes one argument also opens the next, as in s/re/rep/.

 An argument body of zero bytes ("//" back to back) is recorded as an
 absent (nil) argument.
*/
func lex(s string) ([]rawCommand, error) {
	var cmds []rawCommand
	i := 0
	n := len(s)
	for i < n {
		c := s[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '#':
			for i < n && s[i] != '\n' {
				i++
			}
		default:
			kind, ok := kindLetters[c]
			if !ok {
				return nil, fmt.Errorf("%w: %w: %q", errParse, errUnrecognisedCommand, string(c))
			}
			i++
			nargs := argCounts[kind]
			args := make([]*string, 0, nargs)
			for a := 0; a < nargs; a++ {
				if a == 0 {
					if i >= n || s[i] != '/' {
						return nil, fmt.Errorf("%w: %w: command %q expects '/' to open argument %d", errParse, errUnterminatedCommand, kind, a+1)
					}
					i++ // consume opening '/'
				}
				start := i
				escaped := false
				closed := false
				for i < n {
					if escaped {
						escaped = false
						i++
						continue
					}
					if s[i] == '\\' {
						escaped = true
						i++
						continue
					}
					if s[i] == '/' {
						closed = true
						break
					}
					i++
				}
				if !closed {
					return nil, fmt.Errorf("%w: %w", errParse, errUnterminatedArgument)
				}
				body := s[start:i]
				i++ // consume closing '/', which also opens the next argument
				if body == "" {
					args = append(args, nil)
				} else {
					unescaped := unescapeArg(body)
					args = append(args, &unescaped)
				}
			}
			cmds = append(cmds, rawCommand{kind: kind, args: args})
		}
	}
	return cmds, nil
}

// ParseProgram lexes and compiles raw into a Program, honoring the regex
// flags fixed for this run and appending the implicit print command
// described in spec §4.11 / §9 (decided: appended even for an empty
// program, see SPEC_FULL.md's Open Question decisions).
func ParseProgram(raw string, flags RegexFlags, quiet bool) (Program, error) {
	raws, err := lex(preEscape(raw))
	if err != nil {
		return nil, err
	}

	prog := make(Program, 0, len(raws)+1)
	for _, rc := range raws {
		cmd := Command{Kind: rc.kind}
		if len(rc.args) > 0 {
			cmd.Arg1 = rc.args[0]
		}
		if len(rc.args) > 1 {
			cmd.Arg2 = rc.args[1]
		}
		if patternArg[rc.kind] && cmd.Arg1 != nil {
			re, err := CompileRegex(*cmd.Arg1, flags)
			if err != nil {
				return nil, fmt.Errorf("compiling pattern for %q: %w: %w", rc.kind, errRegexCompile, err)
			}
			cmd.Pattern = re
		}
		prog = append(prog, cmd)
	}

	if !quiet {
		needsPrint := len(prog) == 0 || prog[len(prog)-1].Kind != KindPrint
		if needsPrint {
			prog = append(prog, Command{Kind: KindPrint})
		}
	}
	return prog, nil
}
