// Command sre is a structural regular-expression text editor: it reads
// an input document whole, runs a small command-line language over it
// (extract, filter, substitute, rewrite, pipe through external tools),
// and prints the result.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pborman/getopt/v2"

	"github.com/rjo67/sre"
)

const version = "sre - structural regular-expression text editor\nVersion: v1.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	set := getopt.New()
	basic := set.BoolLong("basic-regexp", 'B', "use POSIX basic regular expressions")
	extended := set.BoolLong("extended-regexp", 'E', "use POSIX extended regular expressions (default)")
	scriptFile := set.StringLong("file", 'f', "", "read COMMAND-LINE from <file>")
	help := set.BoolLong("help", 'h', "display help")
	ignorecase := set.BoolLong("ignorecase", 'i', "ignore case when matching regex")
	quiet := set.BoolLong("quiet", 'n', "do not put an implicit print command at the end")
	regnewline := set.BoolLong("reg-newline", 'N', "match-any-character operators don't match a newline")
	ver := set.BoolLong("version", 'v', "display version information")

	if err := set.Getopt(append([]string{"sre"}, argv...), nil); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	if *help {
		set.PrintUsage(stdout)
		return 0
	}
	if *ver {
		fmt.Fprintln(stdout, version)
		return 0
	}

	args := set.Args()

	flags := sre.RegexFlags{
		IgnoreCase: *ignorecase,
		Extended:   !*basic || *extended,
		RegNewline: *regnewline,
	}

	var cmdline string
	if *scriptFile != "" {
		data, err := os.ReadFile(*scriptFile)
		if err != nil {
			fmt.Fprintf(stderr, "Error: could not read %s: %v\n", *scriptFile, err)
			return 1
		}
		cmdline = string(data)
	} else {
		if len(args) == 0 {
			fmt.Fprintln(stderr, "Error: no command-line given!")
			return 1
		}
		cmdline = args[0]
		args = args[1:]
	}

	prog, err := sre.ParseProgram(cmdline, flags, *quiet)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return sre.ExitCode(err)
	}

	exitCode := 0
	runOne := func(data []byte) {
		ctx := sre.NewContext(data, flags, stdout)
		if err := sre.Run(ctx, prog); err != nil {
			fmt.Fprintln(stderr, "Error:", err)
			if c := sre.ExitCode(err); c != 0 {
				exitCode = c
			}
		}
	}

	if len(args) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			fmt.Fprintln(stderr, "Error: could not read stdin:", err)
			return 3
		}
		runOne(data)
		return exitCode
	}

	for _, name := range args {
		data, err := os.ReadFile(name)
		if err != nil {
			fmt.Fprintf(stderr, "Error: could not read %s: %v\n", name, err)
			exitCode = 3
			continue
		}
		runOne(data)
	}
	return exitCode
}
