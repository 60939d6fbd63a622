package commands

import (
	"errors"
	"fmt"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"tableflip.dev/tabi/pkg/commands/options"
	"tableflip.dev/tabi/pkg/prompt"
	"tableflip.dev/tabi/pkg/runner/add"
	"tableflip.dev/tabi/pkg/trip"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add something",
		Example: `
tabi add item 宮川朝市 --date 2026-02-05 --time 9:30 --type attraction
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addItem(cmd)
	addExpense(cmd)
	addShopping(cmd)
	addLodging(cmd)
	addDay(cmd)

	topLevel.AddCommand(cmd)
}

func addItem(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	io := &options.ItemOptions{}
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "item [name]",
		Short: "Add an itinerary item to a day",
		Long: `Add an itinerary item to a day. The day is created when it is not part of
the trip yet. Ids are unique within a day.`,
		Example: `
tabi add item 宮川朝市 --date 2026-02-05 --time 9:30 --type attraction
tabi add item -i --date 2/5
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if i.Interactive {
				io.Name = strings.Join(args, " ")
				return nil
			}
			if len(args) < 1 {
				return errors.New("requires an item name")
			}
			io.Name = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
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
			if key == "" {
				return oo.HandleError(errors.New("requires --date"))
			}

			draft, err := io.Draft()
			if err != nil {
				return oo.HandleError(err)
			}
			if i.Interactive {
				p := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
				if draft, err = p.Draft(draft); err != nil {
					return err
				}
			}

			a := add.Item{
				DateKey: key,
				Draft:   draft,
				Store:   s,
				Out:     cmd.OutOrStdout(),
			}
			err = a.Do(ctx)
			return oo.HandleError(err)
		},
	}

	options.AddDateArgs(cmd, do)
	registerDateCompletion(cmd)
	options.AddItemArgs(cmd, io)
	options.InteractiveArgs(cmd, i)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addExpense(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	e := trip.ExpenseItem{}
	var amount string

	cmd := &cobra.Command{
		Use:     "expense <name>",
		Aliases: []string{"spent"},
		Short:   "Add a line to the expense ledger",
		Example: `
tabi add expense 午餐 --amount 2000 --category 餐飲 --date 2026-02-04 --method 現金
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires an expense name")
			}
			e.Name = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := contextFor(cmd)
			a, err := decimal.NewFromString(amount)
			if err != nil {
				return oo.HandleError(fmt.Errorf("invalid amount %q: %w", amount, err))
			}
			e.Amount = a

			s, err := openStore(ctx)
			if err != nil {
				return err
			}
			if e.Date, err = dateKeyFor(s, do); err != nil {
				return oo.HandleError(err)
			}

			r := add.Expense{
				Expense: e,
				Store:   s,
				Out:     cmd.OutOrStdout(),
			}
			err = r.Do(ctx)
			return oo.HandleError(err)
		},
	}

	options.AddDateArgs(cmd, do)
	registerDateCompletion(cmd)
	cmd.Flags().StringVar(&amount, "amount", "", "Amount in the source currency.")
	cmd.Flags().StringVarP(&e.Category, "category", "c", "其他", "Ledger category.")
	cmd.Flags().StringVar(&e.Method, "method", "現金", "How it was paid.")
	cmd.Flags().StringVarP(&e.Note, "note", "n", "", "Free-form note.")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("date")
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addShopping(topLevel *cobra.Command) {
	r := &add.Shopping{}

	cmd := &cobra.Command{
		Use:   "shopping <name>",
		Short: "Add an item to the shopping checklist",
		Example: `
tabi add shopping 清酒 --location 高山老街
tabi add shopping "Moflin (シルバー)" --price 39800
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires an item name")
			}
			r.Name = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := contextFor(cmd)
			s, err := openStore(ctx)
			if err != nil {
				return err
			}
			r.Store = s
			r.Out = cmd.OutOrStdout()
			err = r.Do(ctx)
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&r.Location, "location", "l", "", "Where to buy it.")
	cmd.Flags().StringVar(&r.Price, "price", "", "Price in the source currency. Leave empty for a custom price.")
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addLodging(topLevel *cobra.Command) {
	a := trip.Accommodation{}

	cmd := &cobra.Command{
		Use:     "lodging <name>",
		Aliases: []string{"stay"},
		Short:   "Add a place to stay",
		Example: `
tabi add lodging ホテル穂高 --when "2/5" --address 岐阜県高山市奥飛騨温泉郷新穂高温泉
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a name")
			}
			a.Name = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := contextFor(cmd)
			s, err := openStore(ctx)
			if err != nil {
				return err
			}
			r := add.Lodging{
				Accommodation: a,
				Store:         s,
				Out:           cmd.OutOrStdout(),
			}
			err = r.Do(ctx)
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&a.Date, "when", "", `Nights as shown, example: --when="2/7 ~ 2/8".`)
	cmd.Flags().StringVar(&a.Address, "address", "", "Address.")
	cmd.Flags().StringVar(&a.Tel, "tel", "", "Phone number.")
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addDay(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "day <date>",
		Short: "Add an empty day to the trip",
		Example: `
tabi add day 2026-02-10
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := contextFor(cmd)
			s, err := openStore(ctx)
			if err != nil {
				return err
			}
			key, err := dateKeyFor(s, &options.DateOptions{Date: args[0]})
			if err != nil {
				return oo.HandleError(err)
			}
			r := add.Day{
				DateKey: key,
				Store:   s,
				Out:     cmd.OutOrStdout(),
			}
			err = r.Do(ctx)
			return oo.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
