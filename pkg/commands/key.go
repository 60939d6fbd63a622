package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/tabi/pkg/runner/key"
)

func addKey(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Print the itinerary item types",
		Example: `
tabi key
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			k := key.Key{Out: cmd.OutOrStdout()}
			err := k.Do(contextFor(cmd))
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
