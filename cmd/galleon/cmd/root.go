package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/galleon/foundation/core/error"
	mdwlog "github.com/msto63/galleon/foundation/core/log"
	"github.com/msto63/galleon/internal/measure/service"
	"github.com/msto63/galleon/pkg/core/config"
	"github.com/msto63/galleon/pkg/core/logging"
)

// app holds flag values and the components built from them
type app struct {
	cfgFile  string
	verbose  bool
	output   string
	logLevel string

	cfg    *config.Config
	logger *mdwlog.Logger
	svc    *service.Service

	// isTerminal reports whether r is an interactive terminal
	isTerminal func(r io.Reader) bool
}

func newRootCmd() *cobra.Command {
	return (&app{isTerminal: isTerminal}).rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "galleon",
		Short: "galleon - Längenangaben parsen und umrechnen",
		Long: `galleon liest frei formulierte Längenangaben wie 2' 4 1/64", 5 ft 7 in
oder 1.70 m und rechnet sie in Meter, Millimeter und Fuß/Zoll um.

Befehle:
  convert  - Längenangaben umrechnen (Argumente, Eingabe oder Pipe)
  tui      - Interaktiver Umrechner
  units    - Bekannte Einheiten anzeigen
  version  - Version anzeigen`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "Config-Datei (default: $GALLEON_CONFIG oder ./configs/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Verbose Output (Log-Level debug)")
	rootCmd.PersistentFlags().StringVarP(&a.output, "output", "o", "", "Ausgabeformat: text, json, yaml")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log-Level: trace, debug, info, warn, error")

	rootCmd.AddCommand(
		newConvertCmd(a),
		newTUICmd(a),
		newUnitsCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}

// setup loads the configuration, applies flag overrides and builds the
// logger and conversion service
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	if a.output != "" {
		cfg.Output.Format = a.output
	}
	if a.logLevel != "" {
		cfg.General.LogLevel = a.logLevel
	}
	if a.verbose {
		cfg.General.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logging.NewLogger(logging.LoggerConfig{
		ServiceName: "galleon",
		Level:       cfg.General.LogLevel,
		Format:      cfg.General.LogFormat,
		Output:      cmd.ErrOrStderr(),
	})

	a.svc, err = service.NewService(service.Config{Logger: a.logger.WithName("converter")})
	if err != nil {
		return err
	}

	a.logger.Debug("Configuration loaded",
		mdwlog.String("output_format", cfg.Output.Format),
		mdwlog.Strings("fields", cfg.Output.Fields))
	return nil
}

// loadConfig reads --config if given, otherwise the default locations.
// Without any config file the built-in defaults apply.
func (a *app) loadConfig() (*config.Config, error) {
	if a.cfgFile != "" {
		return config.Load(a.cfgFile)
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		if os.Getenv(config.EnvConfigPath) == "" && mdwerror.HasCode(err, mdwerror.CodeMissingConfig) {
			return config.Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func printError(w io.Writer, msg string, err error) {
	fmt.Fprintf(w, "Fehler: %s: %v\n", msg, err)
}
