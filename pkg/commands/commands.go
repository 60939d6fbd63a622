package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/tabi/pkg/app"
	"tableflip.dev/tabi/pkg/store"
	"tableflip.dev/tabi/pkg/weather"
)

var (
	oo = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "tabi",
		Short: base.Wrap80("Plan a trip on the command line: days, lodging, shopping and expenses."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addKey(topLevel)
	addGet(topLevel)
	addAdd(topLevel)
	addEdit(topLevel)
	addDelete(topLevel)
	addRate(topLevel)
	addMap(topLevel)
	addReport(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addInfo(topLevel)
	addMCP(topLevel)
	addCompletions(topLevel)
	addUpgrade(topLevel)
	addVersion(topLevel)
}

// openStore loads the saved trip from the configured location.
func openStore(ctx context.Context) (*app.Store, error) {
	p, err := store.Open(nil)
	if err != nil {
		return nil, err
	}
	return app.New(ctx, p)
}

func forecasts() weather.Provider {
	return weather.Default()
}

func contextFor(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
