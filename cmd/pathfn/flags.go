package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"braces.dev/errtrace"
	"github.com/peterbourgon/ff/v3"
)

var (
	errHelp             = flag.ErrHelp
	errInvalidArguments = errors.New("invalid arguments")
)

const _usage = `USAGE: pathfn [OPTIONS] COMMAND ARGS

Commands:
  basename PATH ...
	print the final path component of each PATH
  under DIR PATH
	report whether PATH is lexically under DIR;
	exits 0 if it is, 1 if it is not

Options:
  -debug[=FILE]
	log debug output to stderr, or to FILE
  -version
	print the version and exit

Flags may also be set through PATHFN_* environment variables.
`

// params holds all arguments for pathfn.
type params struct {
	version bool

	Debug debugSwitch

	Command string
	Args    []string
}

// cliParser parses the command line arguments for pathfn.
type cliParser struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (cmd *cliParser) newFlagSet() (*params, *flag.FlagSet) {
	fset := flag.NewFlagSet("pathfn", flag.ContinueOnError)
	fset.SetOutput(cmd.Stderr)
	fset.Usage = func() {
		fmt.Fprint(cmd.Stderr, _usage)
	}

	var p params
	fset.Var(&p.Debug, "debug", "")
	fset.BoolVar(&p.version, "version", false, "")
	return &p, fset
}

func (cmd *cliParser) Parse(args []string) (*params, error) {
	p, fset := cmd.newFlagSet()
	if err := ff.Parse(fset, args, ff.WithEnvVarPrefix("PATHFN")); err != nil {
		return nil, errtrace.Wrap(err)
	}
	args = fset.Args()

	if p.version {
		fmt.Fprintln(cmd.Stdout, "pathfn", _version)
		return nil, errHelp
	}

	if len(args) == 0 {
		fmt.Fprintln(cmd.Stderr, "Please provide a command.")
		fset.Usage()
		return nil, errInvalidArguments
	}

	p.Command, p.Args = args[0], args[1:]
	switch p.Command {
	case "basename":
		if len(p.Args) == 0 {
			fmt.Fprintln(cmd.Stderr, "basename needs at least one path.")
			fset.Usage()
			return nil, errInvalidArguments
		}
	case "under":
		if len(p.Args) != 2 {
			fmt.Fprintln(cmd.Stderr, "under needs a directory and a path.")
			fset.Usage()
			return nil, errInvalidArguments
		}
	default:
		fmt.Fprintf(cmd.Stderr, "Unknown command %q.\n", p.Command)
		fset.Usage()
		return nil, errInvalidArguments
	}

	return p, nil
}

// debugSwitch is a flag that accepts both "-debug" and "-debug=FILE".
// Without a value it selects stderr;
// with a value it selects the named file.
type debugSwitch string

var _ flag.Value = (*debugSwitch)(nil)

func (ds *debugSwitch) String() string { return string(*ds) }

// IsBoolFlag marks this as a flag
// that doesn't require a value.
func (*debugSwitch) IsBoolFlag() bool { return true }

// Set receives the value for this flag.
func (ds *debugSwitch) Set(v string) error {
	if v == "true" {
		v = "-"
	}
	*ds = debugSwitch(v)
	return nil
}

// Create opens the destination selected for this flag,
// returning a writer to it and a function to close it.
//
// This has three possible behaviors:
//
//   - the flag wasn't passed in: returns an [io.Discard]
//   - the flag was passed without a value: returns the provided fallback
//   - the flag was passed with a value: opens the file and returns it
func (ds debugSwitch) Create(fallback io.Writer) (w io.Writer, close func() error, err error) {
	switch ds {
	case "":
		return io.Discard, nopClose, nil
	case "-":
		return fallback, nopClose, nil
	default:
		f, err := os.Create(string(ds))
		if err != nil {
			return nil, nil, errtrace.Wrap(err)
		}
		return f, f.Close, nil
	}
}

func nopClose() error { return nil }
