package cmd

import (
	"fmt"
	"os"

	cfgpkg "github.com/KaramelBytes/missflux/internal/config"
	"github.com/KaramelBytes/missflux/internal/dataset"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Global
	// logger is a no-op unless --debug is set.
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "missflux",
	Short: "missflux: missing-data pattern and flux statistics for tabular files",
	Long: `missflux reads CSV, TSV and XLSX files and reports how missing values are
arranged across columns: pair counts, missing-data patterns, inbound and
outbound statistics, and influx/outflux coefficients.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.missflux/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

func loadConfig() {
	logger = zap.NewNop()
	if debug {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "⚠ Warning: failed to init logger: %v\n", err)
		} else {
			logger = l
		}
	}
	// A .env file in the working directory may supply MISSFLUX_* variables.
	if err := godotenv.Load(); err == nil {
		logger.Debug("loaded .env")
	}
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to built-in defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		cfg = nil
		return
	}
	cfg = c
	logger.Debug("config loaded", zap.String("file", cfgFile), zap.String("format", cfg.Format))
}

// settings returns the loaded configuration or built-in defaults.
func settings() *cfgpkg.Global {
	if cfg != nil {
		return cfg
	}
	return &cfgpkg.Global{
		MissingTokens: dataset.DefaultMissingTokens,
		Delimiter:     "auto",
		Format:        "markdown",
		Precision:     4,
		MaxRows:       100000,
		SheetIndex:    1,
	}
}
