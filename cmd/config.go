package cmd

import (
	"fmt"
	"strconv"
	"strings"

	cfgpkg "github.com/KaramelBytes/missflux/internal/config"
	"github.com/KaramelBytes/missflux/internal/report"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set missflux configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := settings()
		out := cmd.OutOrStdout()
		if cfg == nil {
			fmt.Fprintln(out, "No config loaded, showing defaults")
		}
		fmt.Fprintf(out, "missing_tokens: %s\n", strings.Join(s.MissingTokens, ","))
		fmt.Fprintf(out, "delimiter: %s\n", s.Delimiter)
		fmt.Fprintf(out, "format: %s\n", s.Format)
		fmt.Fprintf(out, "precision: %d\n", s.Precision)
		fmt.Fprintf(out, "max_rows: %d\n", s.MaxRows)
		fmt.Fprintf(out, "sheet_index: %d\n", s.SheetIndex)
		if len(s.Sections) > 0 {
			fmt.Fprintf(out, "sections: %s\n", strings.Join(s.Sections, ","))
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "missing_tokens":
			cfg.MissingTokens = splitList(val)
		case "delimiter":
			if _, err := parseDelimiter(val); err != nil {
				return fmt.Errorf("invalid delimiter: %s (use ',' | ';' | '|' | 'tab' | 'auto')", val)
			}
			if val == "\t" {
				val = "tab"
			}
			cfg.Delimiter = val
		case "format":
			if !report.ValidFormat(val) {
				return fmt.Errorf("invalid format: %s (use markdown, json, yaml or html)", val)
			}
			cfg.Format = strings.ToLower(val)
		case "precision":
			i, err := strconv.Atoi(val)
			if err != nil || i < 0 || i > 17 {
				return fmt.Errorf("invalid int for precision: %v (0-17)", val)
			}
			cfg.Precision = i
		case "max_rows":
			i, err := strconv.Atoi(val)
			if err != nil || i < 0 {
				return fmt.Errorf("invalid int for max_rows: %v (0 = unlimited)", val)
			}
			cfg.MaxRows = i
		case "sheet_index":
			i, err := strconv.Atoi(val)
			if err != nil || i < 1 {
				return fmt.Errorf("invalid int for sheet_index: %v (1-based)", val)
			}
			cfg.SheetIndex = i
		case "sections":
			secs, err := report.ParseSections(splitList(val))
			if err != nil {
				return err
			}
			if len(secs) == len(report.AllSections) {
				secs = nil
			}
			cfg.Sections = secs
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
