// Command cleanenv removes all environment variables that match given prefixes before running its arguments as a command.
//
// For example, this is useful in GitHub Actions:
//
//	export AWS_REGION=eu-west-1
//	cleanenv -remove-prefix GITHUB_ RUNNER_ -exec go test -cover ./...
//
// The '-remove-prefix' flag takes one or more prefixes and can be repeated multiple times to remove even more environment variables.
// '-exec' takes everything up to the next cleanenv option, flags included.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/pychamber/chamber/argparse"
	"github.com/pychamber/chamber/environ"
)

func main() {
	app := App{
		Args:   os.Args[1:],
		Env:    os.Environ(),
		StdOut: os.Stdout,
		ErrOut: os.Stderr,
	}
	err := app.Run()
	if err != nil {
		exitCode := 1
		var exitErr *exec.ExitError
		switch {
		case errors.As(err, &exitErr):
			exitCode = exitErr.ExitCode()
		case errors.Is(err, argparse.ErrUsage):
			fmt.Fprintln(app.ErrOut, err)
			fmt.Fprintln(app.ErrOut, "usage: cleanenv [-remove-prefix PREFIX...] -exec COMMAND [ARGS...]")
			exitCode = 2
		default:
			fmt.Fprintln(app.ErrOut, err)
		}
		os.Exit(exitCode)
	}
}

type App struct {
	Args           []string
	Env            []string
	StdOut, ErrOut io.Writer
}

func (a App) Run() error {
	reg, err := newRegistry()
	if err != nil {
		return err
	}
	res, err := reg.Parse(a.Args)
	if err != nil {
		return err
	}

	env := environ.FromList(a.Env)
	env.RemovePrefixes(res.Strings("remove-prefix"))

	arg0, argv, err := splitArgs(res.Strings("exec"))
	if err != nil {
		return err
	}
	cmd := exec.Command(arg0, argv...)
	cmd.Env = env.List()
	cmd.Stdout = a.StdOut
	cmd.Stderr = a.ErrOut
	return cmd.Run()
}

func newRegistry() (*argparse.Registry, error) {
	reg := argparse.NewRegistry()
	err := reg.Register(argparse.OptionSpec{
		Name:       "remove-prefix",
		Aliases:    []string{"-remove-prefix", "--remove-prefix"},
		Arity:      argparse.OneOrMore(),
		Accumulate: true,
		Help:       "Remove environment variables with any of the given prefixes.",
	})
	if err != nil {
		return nil, err
	}
	err = reg.Register(argparse.OptionSpec{
		Name:     "exec",
		Aliases:  []string{"-exec", "--exec"},
		Arity:    argparse.CollectUntilNextKnown(),
		Required: true,
		Help:     "Command and arguments to run.",
	})
	if err != nil {
		return nil, err
	}
	return reg, nil
}

func splitArgs(args []string) (string, []string, error) {
	if len(args) == 0 {
		return "", nil, errors.New("not enough args to run a command")
	}
	return args[0], args[1:], nil
}
