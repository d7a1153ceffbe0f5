package main

import (
	"fmt"

	"github.com/pychamber/chamber/config"
	"github.com/pychamber/chamber/environ"
)

// options is the chamber command line after parsing.
type options struct {
	getParams       []string
	exec            []string
	priorityEnvVars bool
	configPath      string
	region          string
	logLevel        string
}

// parseArgs runs args through the chamber grammar. Leftover tokens are a
// usage error.
func parseArgs(args []string, configDefault string) (options, error) {
	reg, err := newRegistry(configDefault)
	if err != nil {
		return options{}, err
	}
	res, err := reg.Parse(args)
	if err != nil {
		return options{}, err
	}
	return options{
		getParams:       res.Strings(optGetParams),
		exec:            res.Strings(optExec),
		priorityEnvVars: res.Has(optPriorityEnvVars),
		configPath:      res.String(optConfig),
		region:          res.String(optRegion),
		logLevel:        res.String(optLogLevel),
	}, nil
}

// resolveSettings layers the config file and the command line over the
// defaults and checks the result.
func resolveSettings(opts options, env *environ.Env) (config.Settings, error) {
	settings := config.Default()
	if opts.configPath != "" {
		file, err := config.Load(opts.configPath, envMap(env))
		if err != nil {
			return settings, err
		}
		settings.ApplyFile(file)
	}

	settings.GetParams = opts.getParams
	settings.Exec = opts.exec
	if opts.region != "" {
		settings.Region = opts.region
	}
	if opts.logLevel != "" {
		settings.LogLevel = opts.logLevel
	}
	if opts.priorityEnvVars {
		settings.OnConflict = environ.KeepExisting.String()
	}
	if err := settings.Check(); err != nil {
		return settings, fmt.Errorf("invalid configuration: %w", err)
	}
	return settings, nil
}

func envMap(env *environ.Env) map[string]string {
	m := make(map[string]string, env.Len())
	for _, key := range env.Keys() {
		m[key], _ = env.Lookup(key)
	}
	return m
}

// wantsHelp reports whether args ask for the usage text. Help is only
// recognized on its own so that "--exec ls --help" reaches ls.
func wantsHelp(args []string) bool {
	if len(args) == 0 {
		return true
	}
	return len(args) == 1 && (args[0] == "-h" || args[0] == "--help")
}
