package cmd

import (
	"github.com/KaramelBytes/missflux/internal/report"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// statCommands describes the single-statistic subcommands.
var statCommands = []struct {
	section string
	short   string
}{
	{report.SectionPairs, "Pair counts rr, rm, mr and mm for every column pair"},
	{report.SectionPattern, "Distinct missing-data patterns with frequencies"},
	{report.SectionInbound, "Inbound statistic: how well column k is observed where column j is missing"},
	{report.SectionOutbound, "Outbound statistic: how well column j is observed where column k is missing"},
	{report.SectionInflux, "Influx coefficient per column"},
	{report.SectionOutflux, "Outflux coefficient per column"},
	{report.SectionFlux, "Flux report: pobs, influx, outflux, average inbound and outbound"},
}

func newStatCmd(section, short string) *cobra.Command {
	var f readFlags
	c := &cobra.Command{
		Use:   section + " <file>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opt, err := f.options()
			if err != nil {
				return err
			}
			format, precision, err := f.rendering()
			if err != nil {
				return err
			}
			frame, err := loadFrame(args[0], opt)
			if err != nil {
				return err
			}
			rep, err := report.Single(frame, section, uuid.NewString())
			if err != nil {
				return err
			}
			out, err := rep.Render(format, precision)
			if err != nil {
				return err
			}
			return writeOutput(cmd, f.output, out)
		},
	}
	addReadFlags(c, &f)
	addOutputFlag(c, &f)
	return c
}

func init() {
	for _, s := range statCommands {
		rootCmd.AddCommand(newStatCmd(s.section, s.short))
	}
}
