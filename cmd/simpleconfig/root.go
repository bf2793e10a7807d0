// Root command and shared flags for the simpleconfig CLI.
package main

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lixenwraith/simpleconfig"
)

// Config keys, also readable from SIMPLECONFIG_* environment variables.
const (
	cfgKeySyntax  = "syntax"
	cfgKeyVerbose = "verbose"
	cfgKeyFormat  = "format"
)

// settings holds flag values merged with the environment.
var settings = viper.New()

var rootCmd = &cobra.Command{
	Use:   "simpleconfig",
	Short: "Inspect and edit key=value config files",
	Long: `simpleconfig reads config files made of key=<literal> lines with
"# " comments and section banners, as written by applications using the
simpleconfig library. Values are handled untyped.

Flags can also be set through SIMPLECONFIG_SYNTAX, SIMPLECONFIG_VERBOSE and
SIMPLECONFIG_FORMAT.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String(cfgKeySyntax, "json", "value literal syntax: json, yaml or hcl")
	rootCmd.PersistentFlags().BoolP(cfgKeyVerbose, "v", false, "log every applied line")

	settings.SetEnvPrefix("SIMPLECONFIG")
	settings.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	settings.AutomaticEnv()
	_ = settings.BindPFlag(cfgKeySyntax, rootCmd.PersistentFlags().Lookup(cfgKeySyntax))
	_ = settings.BindPFlag(cfgKeyVerbose, rootCmd.PersistentFlags().Lookup(cfgKeyVerbose))

	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(checkCmd)
}

// newLogger returns the diagnostics sink for the current verbosity.
func newLogger() *countingLogger {
	level := log.WarnLevel
	if settings.GetBool(cfgKeyVerbose) {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: false,
		Prefix:          "simpleconfig",
	})
	return &countingLogger{Logger: simpleconfig.NewCharmLogger(logger)}
}

// countingLogger counts warnings and errors so commands can report them.
type countingLogger struct {
	simpleconfig.Logger
	problems int
}

func (l *countingLogger) Warn(msg string) {
	l.problems++
	l.Logger.Warn(msg)
}

func (l *countingLogger) Error(msg string) {
	l.problems++
	l.Logger.Error(msg)
}
