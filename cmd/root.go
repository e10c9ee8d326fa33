package cmd

import (
	"encoding/json"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"chemcalc/calculator"
)

var (
	configFile string
	cfg        calculator.Config
	calc       calculator.Calculator
)

// Root is the top-level command.
var Root = &cobra.Command{
	Use:   "chemcalc",
	Short: "Pump hydraulics and acetanilide yield calculators.",
	Long: `chemcalc sizes transfer pumps for the acetanilide plant (Darcy-Weisbach with
Swamee-Jain friction factor and fitting losses) and computes the yield of the
aniline acetylation batch. Run 'serve' to expose both calculators over a
websocket, or use the 'pump' and 'yield' subcommands for one-off calculations.`,
	SilenceUsage:      true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

func init() {
	Root.PersistentFlags().StringVar(&configFile, "config", "conf/config.ini", "configuration file location")
	Root.AddCommand(serveCmd, pumpCmd, yieldCmd, presetsCmd)
}

func setConfig() error {
	var err error
	cfg, err = calculator.LoadConfig(configFile)
	if err != nil {
		return err
	}
	setLogger(cfg)
	presets, err := calculator.LoadPresetLibrary(cfg.PresetFile)
	if err != nil {
		return err
	}
	calc = calculator.NewCalculator(presets)
	return nil
}

func setLogger(cfg calculator.Config) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithField("level", cfg.LogLevel).Warn("日志级别无效，使用 info")
		level = log.InfoLevel
	}
	log.SetLevel(level)
	if cfg.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := Root.Execute(); err != nil {
		os.Exit(1)
	}
}
