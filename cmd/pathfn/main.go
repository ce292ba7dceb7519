// pathfn answers lexical path queries from the command line
// with the same predicates the library exposes to Datalog hosts.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"braces.dev/errtrace"
	"go.abhg.dev/pathfn"
)

func main() {
	cmd := mainCmd{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	os.Exit(cmd.Run(os.Args[1:]))
}

// Exit codes follow the grep convention:
// 1 is a negative answer, not a failure.
const (
	exitMatch   = 0
	exitNoMatch = 1
	exitUsage   = 2
)

// mainCmd is the actual entry point to the program.
type mainCmd struct {
	Stdout io.Writer // == os.Stdout
	Stderr io.Writer // == os.Stderr

	log   *log.Logger
	debug *log.Logger
}

func (cmd *mainCmd) Run(args []string) (exitCode int) {
	cmd.log = log.New(cmd.Stderr, "", 0)

	opts, err := (&cliParser{
		Stdout: cmd.Stdout,
		Stderr: cmd.Stderr,
	}).Parse(args)
	if err != nil {
		// '$cmd -h' and '$cmd -version' should exit with zero.
		if errors.Is(err, errHelp) {
			return 0
		}
		// No need to print anything.
		// Parse prints messages.
		return exitUsage
	}

	debugw, closeDebug, err := opts.Debug.Create(cmd.Stderr)
	if err != nil {
		cmd.log.Printf("pathfn: %v", err)
		return exitUsage
	}
	defer func() {
		if err := closeDebug(); err != nil {
			cmd.log.Printf("pathfn: %v", err)
		}
	}()
	cmd.debug = log.New(debugw, "pathfn: ", 0)

	code, err := cmd.run(opts)
	if err != nil {
		cmd.log.Printf("pathfn: %v", err)
	}
	return code
}

func (cmd *mainCmd) run(opts *params) (int, error) {
	var symbols pathfn.Interner
	functors := pathfn.Builtins()

	switch opts.Command {
	case "basename":
		for _, p := range opts.Args {
			res, err := functors.Call(&symbols, "basename", symbols.Encode(p))
			if err != nil {
				return exitUsage, errtrace.Wrap(err)
			}
			cmd.debug.Printf("basename(%q) = %q", p, symbols.Decode(res))
			fmt.Fprintln(cmd.Stdout, symbols.Decode(res))
		}
		return exitMatch, nil

	case "under":
		dir, file := opts.Args[0], opts.Args[1]
		res, err := functors.Call(&symbols, "isUnderDir",
			symbols.Encode(dir), symbols.Encode(file))
		if err != nil {
			return exitUsage, errtrace.Wrap(err)
		}
		cmd.debug.Printf("isUnderDir(%q, %q) = %d", dir, file, res)
		if res != 0 {
			fmt.Fprintln(cmd.Stdout, "true")
			return exitMatch, nil
		}
		fmt.Fprintln(cmd.Stdout, "false")
		return exitNoMatch, nil

	default:
		// Parse rejects unknown commands already.
		return exitUsage, errtrace.Errorf("unknown command %q", opts.Command)
	}
}
