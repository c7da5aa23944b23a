// Package cli implements the mockvars command-line interface.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"code.cloudfoundry.org/clock"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/getmockd/mockvars/pkg/config"
	"github.com/getmockd/mockvars/pkg/i18n"
	"github.com/getmockd/mockvars/pkg/logging"
	"github.com/getmockd/mockvars/pkg/random"
	"github.com/getmockd/mockvars/pkg/vars"
)

var (
	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// app carries the state shared by all commands of one invocation.
type app struct {
	// Persistent flags
	configFile string
	seed       uint64
	jsonOutput bool
	logLevel   string
	logFormat  string
	lang       string

	clock clock.Clock

	cfg    *config.Config
	logger *slog.Logger
	loc    *i18n.Localizer
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// NewRootCmd builds the mockvars command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{clock: clock.NewClock()})
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mockvars",
		Short: "mockvars generates values for predefined request variables",
		Long: `mockvars resolves predefined variables such as $guid, $today and
$randomFullName to generated values, and substitutes {{variable}}
placeholders in request templates.

Configuration can be provided via flags, environment variables (MOCKVARS_*),
a .mockvarsrc.yaml in the current directory, or a global config file.`,
		SilenceUsage:  true,
		SilenceErrors: true, // Execute prints the error
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "Config file (default: .mockvarsrc.yaml or the global config)")
	flags.Uint64Var(&a.seed, "seed", 0, "Seed for reproducible output")
	flags.BoolVar(&a.jsonOutput, "json", false, "Output command results in JSON format")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.StringVar(&a.logFormat, "log-format", "", "Log format: text, json")
	flags.StringVar(&a.lang, "lang", "", "Language for descriptions, e.g. en, pt-BR")

	rootCmd.AddCommand(
		newResolveCmd(a),
		newRenderCmd(a),
		newListCmd(a),
		newVersionCmd(a),
	)
	return rootCmd
}

// setup loads the configuration and applies flag overrides.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		seed := a.seed
		cfg.Seed = &seed
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = a.logFormat
	}
	if flags.Changed("lang") {
		cfg.Language = a.lang
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	logCfg := cfg.Logging()
	logCfg.Output = cmd.ErrOrStderr()
	a.logger = logging.New(logCfg)

	tag, _ := i18n.Parse(cfg.Language)
	if a.loc, err = i18n.New(tag); err != nil {
		return err
	}

	a.logger.Debug("configuration loaded",
		"file", cfg.File,
		"seeded", cfg.Seed != nil,
		"language", a.loc.Language().String())
	return nil
}

// source returns the entropy source for this invocation.
func (a *app) source() random.Source {
	if a.cfg != nil && a.cfg.Seed != nil {
		return random.NewSeeded(*a.cfg.Seed)
	}
	return random.Global()
}

func (a *app) resolver() *vars.Resolver {
	return vars.New(
		vars.WithSource(a.source()),
		vars.WithClock(a.clock),
		vars.WithLogger(a.logger),
	)
}

func (a *app) language() language.Tag {
	return a.loc.Language()
}
