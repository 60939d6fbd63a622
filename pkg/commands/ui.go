package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/tabi/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
tabi ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := contextFor(cmd)
			s, err := openStore(ctx)
			if err != nil {
				return err
			}
			i := ui.UI{Store: s, Weather: forecasts()}
			return i.Do(ctx)
		},
	}

	topLevel.AddCommand(cmd)
}
