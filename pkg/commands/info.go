package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/tabi/pkg/runner/info"
	"tableflip.dev/tabi/pkg/store"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the trip and where it is stored.",
		Example: `
tabi info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := contextFor(cmd)
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			s, err := openStore(ctx)
			if err != nil {
				return err
			}
			i := info.Info{
				Config: cfg,
				Store:  s,
				Out:    cmd.OutOrStdout(),
			}
			err = i.Do(ctx)
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
