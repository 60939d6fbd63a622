package commands

import (
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/tabi/pkg/runner/get"
	"tableflip.dev/tabi/pkg/runner/rate"
)

func addRate(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "rate [value]",
		Short: "Show or set the exchange rate",
		Long: `Show the exchange rate from the source to the target currency, or set it
when a value is given. Converted totals are rounded to whole units.`,
		Example: `
tabi rate
tabi rate 0.22
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runGet(cmd, get.Rate, nil, false)
			}
			cmd.SilenceUsage = true
			ctx := contextFor(cmd)
			s, err := openStore(ctx)
			if err != nil {
				return err
			}
			r := rate.Rate{
				Rate:  args[0],
				Store: s,
				Out:   cmd.OutOrStdout(),
			}
			err = r.Do(ctx)
			return oo.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
