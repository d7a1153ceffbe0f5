// Command chamber exports parameters from AWS Systems Manager Parameter Store
// into the environment of a command and runs it.
//
//	chamber --get_params /app/prod /app/shared --exec ./server -port 8080
//
// --exec takes every token up to the next chamber option, so the wrapped
// command may use any flags it likes. Parameter names become upper-cased
// environment variable names.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/pychamber/chamber/argparse"
	"github.com/pychamber/chamber/config"
	"github.com/pychamber/chamber/environ"
	"github.com/pychamber/chamber/paramstore"
	"github.com/spf13/cobra"
)

func main() {
	app := App{
		Args:   os.Args[1:],
		Env:    os.Environ(),
		Stdin:  os.Stdin,
		StdOut: os.Stdout,
		ErrOut: os.Stderr,
	}
	cmd, err := newRootCommand(&app)
	if err != nil {
		os.Exit(exitCode(err, nil, app.ErrOut))
	}
	cmd.SetArgs(app.Args)
	err = cmd.Execute()
	if err != nil {
		os.Exit(exitCode(err, cmd, app.ErrOut))
	}
}

// exitCode reports err and returns the status chamber exits with: the
// child's own status, 2 for usage errors, 1 otherwise. The usage text is
// printed only when cmd is set.
func exitCode(err error, cmd *cobra.Command, errOut io.Writer) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	fmt.Fprintln(errOut, err)
	if errors.Is(err, argparse.ErrUsage) {
		if cmd != nil {
			fmt.Fprint(errOut, cmd.UsageString())
		}
		return 2
	}
	return 1
}

func newRootCommand(app *App) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   "chamber --get_params <path>... --exec <command> [args...]",
		Short: "Run a command with parameters from AWS Parameter Store in its environment",
		Long: `chamber fetches every parameter under the given Parameter Store paths,
exports them as environment variables (names upper-cased) and runs the command.

--exec collects every following token, including ones that look like flags,
up to the next chamber option. Variables that already exist are overwritten
with a warning unless --priority_env_vars is given.`,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if wantsHelp(args) {
				return cmd.Help()
			}
			app.Args = args
			return app.Run(cmd.Context())
		},
	}
	reg, err := newRegistry("")
	if err != nil {
		return nil, err
	}
	cmd.Flags().AddFlagSet(usageFlags(reg))
	cmd.SetOut(app.StdOut)
	cmd.SetErr(app.ErrOut)
	return cmd, nil
}

// App is one chamber invocation. Env is a copy of the process environment;
// the live environment is never modified.
type App struct {
	Args           []string
	Env            []string
	Stdin          io.Reader
	StdOut, ErrOut io.Writer
	// Store overrides the parameter store built from the settings.
	Store paramstore.Store
}

func (a App) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	env := environ.FromList(a.Env)
	configDefault, _ := env.Lookup(config.EnvVar)

	opts, err := parseArgs(a.Args, configDefault)
	if err != nil {
		return err
	}
	settings, err := resolveSettings(opts, env)
	if err != nil {
		return err
	}
	logger := newLogger(settings.LogLevel, settings.LogFormat, a.ErrOut)
	policy, err := environ.ParsePolicy(settings.OnConflict)
	if err != nil {
		return err
	}

	store, err := a.store(ctx, settings)
	if err != nil {
		return err
	}
	groups, err := paramstore.FetchAll(ctx, store, settings.GetParams)
	if err != nil {
		return err
	}
	for _, group := range groups {
		if len(group.Parameters) == 0 {
			logger.Warn("No parameters discovered", "path", group.Path)
			continue
		}
		for _, p := range group.Parameters {
			env.Apply(paramstore.EnvName(p.Name), p.Value, policy, logger)
		}
		logger.Debug("Exported parameters", "path", group.Path, "count", len(group.Parameters))
	}

	arg0, argv, err := splitArgs(settings.Exec)
	if err != nil {
		return err
	}
	logger.Debug("Running command", "command", arg0, "args", argv)
	cmd := exec.CommandContext(ctx, arg0, argv...)
	cmd.Env = env.List()
	cmd.Stdin = a.Stdin
	cmd.Stdout = a.StdOut
	cmd.Stderr = a.ErrOut
	return cmd.Run()
}

func (a App) store(ctx context.Context, settings config.Settings) (paramstore.Store, error) {
	if a.Store != nil {
		return a.Store, nil
	}
	return paramstore.NewSSMStore(ctx, paramstore.SSMOptions{
		Region:         settings.Region,
		EndpointURL:    settings.EndpointURL,
		Recursive:      settings.Recursive,
		WithDecryption: settings.WithDecryption,
	})
}

func splitArgs(args []string) (string, []string, error) {
	if len(args) == 0 {
		return "", nil, errors.New("not enough args to run a command")
	}
	return args[0], args[1:], nil
}
