package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/log"

	"github.com/iotaledger/slist/configuration"
	"github.com/iotaledger/slist/ds/slist"
	"github.com/iotaledger/slist/script"
)

const (
	appName   = "slist"
	envPrefix = "SLIST"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if ierrors.Is(err, flag.ErrHelp) {
			return
		}

		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run builds a list from the configured values, executes the configured script on it and writes every result to the
// given output. Log messages go to logOutput.
func run(args []string, output io.Writer, logOutput io.Writer) error {
	flagSet := configuration.NewUnsortedFlagSet(appName, flag.ContinueOnError)
	configFile := flagSet.StringP("config", "c", "", "path to a JSON, YAML or TOML config file")
	flagSet.String("log.level", "info", "the log level (trace, debug, info, warning, error)")
	flagSet.StringSlice("list.values", []string{}, "the initial values of the list")
	flagSet.Int("list.capacity", 0, "the number of nodes to preallocate")
	flagSet.String("script", "", "the commands to execute, separated by ';'")
	flagSet.Bool("printConfig", false, "print the loaded configuration")

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	config, err := loadConfiguration(flagSet, *configFile)
	if err != nil {
		return err
	}

	if config.Bool("printConfig") {
		config.Print(output)
	}

	level, err := log.LevelFromString(config.String("log.level"))
	if err != nil {
		return ierrors.Wrap(err, "invalid log level")
	}

	logger := log.NewLogger(log.WithName(appName), log.WithLevel(level), log.WithOutput(logOutput))

	values, err := script.ParseValues(config.Strings("list.values"))
	if err != nil {
		return ierrors.Wrap(err, "invalid list values")
	}

	list := slist.FromSlice(values, slist.WithLogger[int](logger), slist.WithInitialCapacity[int](config.Int("list.capacity")))
	logger.LogInfo("list created", "list", list.String(), "len", list.Len())

	results, err := script.Run(list, scriptLines(config), logger)
	for _, result := range results {
		fmt.Fprintln(output, result)
	}

	if err != nil {
		return ierrors.Wrap(err, "script failed")
	}

	fmt.Fprintln(output, list)

	return nil
}

// loadConfiguration merges the config file (if any), the environment and the command line flags.
func loadConfiguration(flagSet *flag.FlagSet, configFile string) (*configuration.Configuration, error) {
	config := configuration.New()

	if configFile != "" {
		if err := config.LoadFile(configFile); err != nil {
			return nil, err
		}
	}

	if err := config.LoadFlagSet(flagSet); err != nil {
		return nil, ierrors.Wrap(err, "failed to load flags")
	}

	if err := config.LoadEnvironmentVars(envPrefix); err != nil {
		return nil, ierrors.Wrap(err, "failed to load environment")
	}

	return config, nil
}

// scriptLines returns the configured script. It can be given as a single string or as a list of commands.
func scriptLines(config *configuration.Configuration) []string {
	if rawScript, isString := config.Koanf().Get("script").(string); isString {
		return script.Split(rawScript)
	}

	return config.Strings("script")
}
