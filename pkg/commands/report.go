package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/tabi/pkg/commands/options"
	"tableflip.dev/tabi/pkg/report"
)

func addReport(topLevel *cobra.Command) {
	since := &options.DateOptions{}
	until := &options.DateOptions{}
	ro := report.Options{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Display the trip day by day with weather, lodging and budget",
		Long: `Report renders the trip as markdown, styled for the terminal.

Examples:
  tabi report
  tabi report --since 2026-02-05 --until 2026-02-06
  tabi report --raw > trip.md`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := contextFor(cmd)
			s, err := openStore(ctx)
			if err != nil {
				return err
			}
			from, err := dateKeyFor(s, since)
			if err != nil {
				return err
			}
			to, err := dateKeyFor(s, until)
			if err != nil {
				return err
			}
			result := s.Report(ctx, forecasts(), from, to)
			return report.Render(cmd.OutOrStdout(), result, ro)
		},
	}

	cmd.Flags().StringVar(&since.Date, "since", "", "first day to include")
	cmd.Flags().StringVar(&until.Date, "until", "", "last day to include")
	cmd.Flags().StringVar(&ro.Style, "style", "dark", "glamour style: dark, light, notty or ascii")
	cmd.Flags().BoolVar(&ro.Raw, "raw", false, "print the markdown without styling")
	cmd.Flags().IntVar(&ro.Width, "width", 80, "word wrap width")
	topLevel.AddCommand(cmd)
}
