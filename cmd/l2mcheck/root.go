package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	v   *viper.Viper
	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: zerolog.Nop()}

	root := &cobra.Command{
		Use:           "l2mcheck",
		Short:         "Inspect and verify the l2math kernels",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "Config file (YAML or TOML)")
	pf.String("log-level", "warn", "Log level (debug, info, warn, error)")
	pf.Bool("no-color", false, "Disable colored output")
	pf.Int("workers", 0, "Worker count for sweeps (0 = GOMAXPROCS)")
	for _, name := range []string{"config", "log-level", "no-color", "workers"} {
		_ = a.v.BindPFlag(name, pf.Lookup(name))
	}

	a.v.SetEnvPrefix("L2MCHECK")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root.AddCommand(
		newListCmd(a),
		newEvalCmd(a),
		newSweepCmd(a),
		newInfoCmd(a),
	)
	return root
}

// setup reads the config file and configures logging and color. Flags win
// over the environment, which wins over the config file.
func (a *app) setup(stderr io.Writer) error {
	if path := a.v.GetString("config"); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", path, err)
		}
	} else {
		a.v.SetConfigName("l2mcheck")
		a.v.AddConfigPath(".")
		if err := a.v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return fmt.Errorf("reading config: %w", err)
			}
		}
	}

	if a.v.GetBool("no-color") || os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}

	level, err := zerolog.ParseLevel(a.v.GetString("log-level"))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", a.v.GetString("log-level"), err)
	}
	a.log = zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: color.NoColor}).
		Level(level).
		With().Timestamp().Logger()
	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.Debug().Str("file", used).Msg("loaded config")
	}
	return nil
}
