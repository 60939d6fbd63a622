package commands

import (
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/tabi/pkg/commands/options"
	"tableflip.dev/tabi/pkg/runner/maps"
)

func addMap(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "map [place]",
		Short: "Print a map search link for a place or an item",
		Example: `
tabi map 岐阜県高山市上三之町105
tabi map --date 2026-02-06 --id 9
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := contextFor(cmd)
			m := maps.Map{
				Query: strings.Join(args, " "),
				ID:    io.ID,
				Out:   cmd.OutOrStdout(),
			}
			if m.Query == "" {
				if io.ID == 0 {
					return oo.HandleError(errors.New("requires a place or --id"))
				}
				s, err := openStore(ctx)
				if err != nil {
					return err
				}
				if m.DateKey, err = dateKeyFor(s, do); err != nil {
					return oo.HandleError(err)
				}
				m.Store = s
			}
			err := m.Do(ctx)
			return oo.HandleError(err)
		},
	}

	options.AddDateArgs(cmd, do)
	registerDateCompletion(cmd)
	options.AddIDArgs(cmd, io)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
