package cmd

import (
	"github.com/KaramelBytes/missflux/internal/report"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	anaFlags    readFlags
	anaSections []string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a CSV/TSV/XLSX file and produce a full missingness report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opt, err := anaFlags.options()
		if err != nil {
			return err
		}
		format, precision, err := anaFlags.rendering()
		if err != nil {
			return err
		}
		sections, err := resolveSections(anaSections)
		if err != nil {
			return err
		}
		frame, err := loadFrame(args[0], opt)
		if err != nil {
			return err
		}
		rep, err := report.Analyze(frame, sections, uuid.NewString())
		if err != nil {
			return err
		}
		out, err := rep.Render(format, precision)
		if err != nil {
			return err
		}
		return writeOutput(cmd, anaFlags.output, out)
	},
}

// resolveSections prefers the flag, then the configured default.
func resolveSections(flag []string) ([]string, error) {
	if len(flag) == 0 {
		flag = settings().Sections
	}
	return report.ParseSections(flag)
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	addReadFlags(analyzeCmd, &anaFlags)
	addOutputFlag(analyzeCmd, &anaFlags)
	analyzeCmd.Flags().StringSliceVar(&anaSections, "sections", nil, "comma-separated sections: pairs,pattern,inbound,outbound,influx,outflux,flux (default all)")
}
