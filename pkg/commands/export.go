package commands

import (
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/tabi/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	var format string

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Write the trip to a JSON or YAML file, or the ledger to a workbook",
		Example: `
tabi export trip.yaml
tabi export ledger.xlsx
tabi export backup --format json
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := contextFor(cmd)
			s, err := openStore(ctx)
			if err != nil {
				return err
			}
			e := export.Export{
				Path:   args[0],
				Format: format,
				Store:  s,
				Out:    cmd.OutOrStdout(),
			}
			err = e.Do(ctx)
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "json, yaml or xlsx; guessed from the file extension when empty")
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addImport(topLevel *cobra.Command) {
	var format string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the trip with the contents of a JSON or YAML file",
		Example: `
tabi import trip.yaml
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := contextFor(cmd)
			s, err := openStore(ctx)
			if err != nil {
				return err
			}
			i := export.Import{
				Path:   args[0],
				Format: format,
				Store:  s,
				Out:    cmd.OutOrStdout(),
			}
			err = i.Do(ctx)
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "json or yaml; guessed from the file extension when empty")
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
