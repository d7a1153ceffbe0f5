package main

import (
	"strings"

	"github.com/pychamber/chamber/argparse"
	"github.com/spf13/pflag"
)

// Option names of the chamber command line.
const (
	optGetParams       = "get_params"
	optExec            = "exec"
	optPriorityEnvVars = "priority_env_vars"
	optConfig          = "config"
	optRegion          = "region"
	optLogLevel        = "log_level"
)

// grammar returns the chamber command line. Every option accepts a single
// and a double dash. configDefault, when set, is the default of -config.
func grammar(configDefault string) []argparse.OptionSpec {
	var configDef []string
	if configDefault != "" {
		configDef = []string{configDefault}
	}
	return []argparse.OptionSpec{
		{
			Name:     optGetParams,
			Aliases:  dashed(optGetParams),
			Arity:    argparse.OneOrMore(),
			Required: true,
			Help:     "Parameter store `path`s whose parameters are exported to the command",
		},
		{
			Name:     optExec,
			Aliases:  dashed(optExec),
			Arity:    argparse.CollectUntilNextKnown(),
			Required: true,
			Help:     "`command` and arguments to run; takes everything up to the next chamber option",
		},
		{
			Name:    optPriorityEnvVars,
			Aliases: dashed(optPriorityEnvVars),
			Arity:   argparse.Fixed(0),
			Help:    "Keep existing environment variables instead of overwriting them with parameters",
		},
		{
			Name:    optConfig,
			Aliases: dashed(optConfig),
			Arity:   argparse.Fixed(1),
			Default: configDef,
			Help:    "HCL config `file` (default $CHAMBER_CONFIG)",
		},
		{
			Name:    optRegion,
			Aliases: dashed(optRegion),
			Arity:   argparse.Fixed(1),
			Help:    "AWS `region` of the parameter store",
		},
		{
			Name:    optLogLevel,
			Aliases: dashed(optLogLevel),
			Arity:   argparse.Fixed(1),
			Help:    "Log `level`: debug, info, warn or error",
		},
	}
}

func dashed(name string) []string {
	return []string{"-" + name, "--" + name}
}

func newRegistry(configDefault string) (*argparse.Registry, error) {
	reg := argparse.NewRegistry()
	for _, spec := range grammar(configDefault) {
		if err := reg.Register(spec); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// usageFlags mirrors the registry as a pflag set. It is only used to render
// help; parsing never goes through pflag.
func usageFlags(reg *argparse.Registry) *pflag.FlagSet {
	fs := pflag.NewFlagSet("chamber", pflag.ContinueOnError)
	fs.SortFlags = false
	for _, opt := range reg.Options() {
		help := opt.Help
		if opt.Required {
			help += " (required)"
		}
		switch n := opt.Arity.Count(); {
		case n == 0:
			fs.Bool(opt.Name, false, help)
		case n == 1:
			fs.String(opt.Name, strings.Join(opt.Default, " "), help)
		default:
			fs.StringSlice(opt.Name, opt.Default, help)
		}
	}
	return fs
}
