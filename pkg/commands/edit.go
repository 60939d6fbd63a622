package commands

import (
	"errors"
	"fmt"
	"strconv"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/tabi/pkg/commands/options"
	"tableflip.dev/tabi/pkg/itinerary"
	"tableflip.dev/tabi/pkg/prompt"
	"tableflip.dev/tabi/pkg/runner/edit"
	"tableflip.dev/tabi/pkg/runner/remove"
	"tableflip.dev/tabi/pkg/trip"
)

func addEdit(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit something",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	do := &options.DateOptions{}
	io := &options.ItemOptions{}
	i := &options.InteractiveOptions{}
	var id int

	itemCmd := &cobra.Command{
		Use:   "item <id>",
		Short: "Change fields of an itinerary item",
		Long: `Change fields of an itinerary item. Only the flags you set are changed; the
id never changes.`,
		Example: `
tabi edit item 8 --date 2026-02-06 --time 14:30
tabi edit item 8 --date 2026-02-06 -i
`,
		Args: func(cmd *cobra.Command, args []string) error {
			var err error
			id, err = parseID(args)
			return err
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

			var patch itinerary.Patch
			if i.Interactive {
				it, _ := trip.Day(s.Itinerary(key)).Find(id)
				if it == nil {
					return oo.HandleError(&itinerary.NotFoundError{ID: id})
				}
				p := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
				if patch, err = p.Patch(it); err != nil {
					return err
				}
			} else if patch, err = io.Patch(cmd); err != nil {
				return oo.HandleError(err)
			}

			e := edit.Edit{
				DateKey: key,
				ID:      id,
				Patch:   patch,
				Store:   s,
				Out:     cmd.OutOrStdout(),
			}
			err = e.Do(ctx)
			return oo.HandleError(err)
		},
	}

	options.AddDateArgs(itemCmd, do)
	registerDateCompletion(itemCmd)
	options.AddItemArgs(itemCmd, io)
	options.AddNameArg(itemCmd, io)
	options.InteractiveArgs(itemCmd, i)
	base.AddOutputArg(itemCmd, oo)
	cmd.AddCommand(itemCmd)

	topLevel.AddCommand(cmd)
}

func addDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "delete",
		Aliases: []string{"rm"},
		Short:   "Delete something",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	do := &options.DateOptions{}
	var id int

	itemCmd := &cobra.Command{
		Use:   "item <id>",
		Short: "Delete an itinerary item",
		Example: `
tabi delete item 8 --date 2026-02-06
`,
		Args: func(cmd *cobra.Command, args []string) error {
			var err error
			id, err = parseID(args)
			return err
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
			r := remove.Remove{
				DateKey: key,
				ID:      id,
				Store:   s,
				Out:     cmd.OutOrStdout(),
			}
			err = r.Do(ctx)
			return oo.HandleError(err)
		},
	}

	options.AddDateArgs(itemCmd, do)
	registerDateCompletion(itemCmd)
	base.AddOutputArg(itemCmd, oo)
	cmd.AddCommand(itemCmd)

	topLevel.AddCommand(cmd)
}

func parseID(args []string) (int, error) {
	if len(args) != 1 {
		return 0, errors.New("requires an item id")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid item id %q", args[0])
	}
	return id, nil
}
