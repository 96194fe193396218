package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/KaramelBytes/missflux/internal/dataset"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DirName is the per-user configuration directory under $HOME.
const DirName = ".missflux"

// Global configuration structure.
type Global struct {
	// Cell values treated as missing in addition to empty cells.
	MissingTokens []string `mapstructure:"missing_tokens" yaml:"missing_tokens"`
	// Delimiter is "," | ";" | "tab" | "auto" (auto sniffs .tsv as tab).
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	Format    string `mapstructure:"format" yaml:"format"`
	Precision int    `mapstructure:"precision" yaml:"precision"`
	// MaxRows caps processed rows; 0 means unlimited.
	MaxRows int `mapstructure:"max_rows" yaml:"max_rows"`
	// XLSX sheet used when no --sheet-name is given, 1-based.
	SheetIndex int `mapstructure:"sheet_index" yaml:"sheet_index"`
	// Sections rendered by analyze when --sections is omitted.
	Sections []string `mapstructure:"sections" yaml:"sections"`
}

// Path resolves the config file location. An explicit cfgFile wins;
// otherwise ~/.missflux/config.yaml.
func Path(cfgFile string) (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, DirName, "config.yaml"), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.missflux/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	path, err := Path(cfgFile)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("MISSFLUX")
	v.AutomaticEnv()

	v.SetDefault("missing_tokens", dataset.DefaultMissingTokens)
	v.SetDefault("delimiter", "auto")
	v.SetDefault("format", "markdown")
	v.SetDefault("precision", 4)
	v.SetDefault("max_rows", 100000)
	v.SetDefault("sheet_index", 1)
	v.SetDefault("sections", []string{})

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		v.AddConfigPath(filepath.Join(home, DirName))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read; a missing file falls back to defaults, a malformed one fails
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.SheetIndex < 1 {
		c.SheetIndex = 1
	}
	if c.MaxRows < 0 {
		c.MaxRows = 100000
	}
	if c.Precision < 0 {
		c.Precision = 4
	}
	return &c, nil
}
