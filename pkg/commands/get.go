package commands

import (
	"fmt"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/tabi/pkg/commands/options"
	"tableflip.dev/tabi/pkg/runner/export"
	"tableflip.dev/tabi/pkg/runner/get"
	"tableflip.dev/tabi/pkg/runner/toggle"
)

func addGet(topLevel *cobra.Command) {
	topLevel.AddCommand(
		newListCmd(get.Days, "days", "List the days of the trip", nil),
		newDayCmd(get.Itinerary, "itinerary [date]", "Show the schedule of a day", []string{"day", "it"}),
		newDayCmd(get.Weather, "weather [date]", "Show the forecast of a day", nil),
		newListCmd(get.Lodging, "lodging", "List where you stay", []string{"stays"}),
		newShoppingCmd(),
		newExpensesCmd(),
	)
}

func newListCmd(what get.What, use, short string, aliases []string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     use,
		Aliases: aliases,
		Short:   short,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGet(cmd, what, nil, false)
		},
	}
	base.AddOutputArg(cmd, oo)
	return cmd
}

func newDayCmd(what get.What, use, short string, aliases []string) *cobra.Command {
	do := &options.DateOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     use,
		Aliases: aliases,
		Short:   short,
		Example: fmt.Sprintf(`
tabi %[1]s
tabi %[1]s 2026-02-05
tabi %[1]s 2/5
`, strings.Fields(use)[0]),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return fmt.Errorf("expected at most one date, got %d", len(args))
			}
			if len(args) == 1 {
				if do.Date != "" {
					return fmt.Errorf("date given twice: %q and --date=%q", args[0], do.Date)
				}
				do.Date = args[0]
			}
			return nil
		},
		ValidArgsFunction: func(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return dateCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGet(cmd, what, do, io.ShowID)
		},
	}

	options.AddDateArgs(cmd, do)
	registerDateCompletion(cmd)
	if what == get.Itinerary {
		options.AddShowIDArgs(cmd, io)
	}
	base.AddOutputArg(cmd, oo)
	return cmd
}

func newShoppingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "shopping",
		Aliases: []string{"shop"},
		Short:   "Show the shopping checklist",
		Example: `
tabi shopping
tabi shopping toggle 清酒
tabi shopping toggle 0
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGet(cmd, get.Shopping, nil, false)
		},
	}
	base.AddOutputArg(cmd, oo)

	toggleCmd := &cobra.Command{
		Use:   "toggle <index|name>",
		Short: "Check or uncheck a shopping item",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return fmt.Errorf("requires a shopping item index or name")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := contextFor(cmd)
			s, err := openStore(ctx)
			if err != nil {
				return err
			}
			t := toggle.Toggle{
				Item:  strings.Join(args, " "),
				Store: s,
				Out:   cmd.OutOrStdout(),
			}
			err = t.Do(ctx)
			return oo.HandleError(err)
		},
	}
	base.AddOutputArg(toggleCmd, oo)
	cmd.AddCommand(toggleCmd)
	return cmd
}

func newExpensesCmd() *cobra.Command {
	var (
		byCategory bool
		exportTo   string
	)

	cmd := &cobra.Command{
		Use:     "expenses",
		Aliases: []string{"ledger"},
		Short:   "Show the expense ledger with totals",
		Example: `
tabi expenses
tabi expenses --by-category
tabi expenses --export ledger.xlsx
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			if exportTo != "" {
				ctx := contextFor(cmd)
				s, err := openStore(ctx)
				if err != nil {
					return err
				}
				e := export.Export{
					Path:   exportTo,
					Format: string(export.FormatXLSX),
					Store:  s,
					Out:    cmd.OutOrStdout(),
				}
				return oo.HandleError(e.Do(ctx))
			}
			what := get.Expenses
			if byCategory {
				what = get.Categories
			}
			return runGet(cmd, what, nil, false)
		},
	}

	cmd.Flags().BoolVar(&byCategory, "by-category", false, "Sum the expenses per category.")
	cmd.Flags().StringVar(&exportTo, "export", "", "Write the ledger to an .xlsx workbook.")
	base.AddOutputArg(cmd, oo)
	return cmd
}

func runGet(cmd *cobra.Command, what get.What, do *options.DateOptions, showID bool) error {
	cmd.SilenceUsage = true
	ctx := contextFor(cmd)
	s, err := openStore(ctx)
	if err != nil {
		return err
	}
	key, err := dateKeyFor(s, do)
	if err != nil {
		return oo.HandleError(err)
	}
	g := get.Get{
		What:    what,
		DateKey: key,
		ShowID:  showID,
		JSON:    oo.JSON,
		Store:   s,
		Weather: forecasts(),
		Out:     cmd.OutOrStdout(),
	}
	err = g.Do(ctx)
	return oo.HandleError(err)
}
