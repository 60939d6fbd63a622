package commands

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/tabi/pkg/app"
	"tableflip.dev/tabi/pkg/commands/options"
	"tableflip.dev/tabi/pkg/view"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(tabi completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(tabi completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

func dateCompletions(toComplete string) []string {
	s, err := openStore(context.Background())
	if err != nil {
		return nil
	}
	var keys []string
	for _, o := range view.DateOptions(s.Snapshot()) {
		if strings.HasPrefix(o.DateKey, toComplete) {
			keys = append(keys, o.DateKey)
		}
	}
	return keys
}

func registerDateCompletion(cmd *cobra.Command) {
	flagName := "date"
	_ = cmd.RegisterFlagCompletionFunc(flagName, func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return dateCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
}

// dateKeyFor resolves the date flag against the trip. Short dates take the
// year of the first day; nil or unset options give "".
func dateKeyFor(s *app.Store, do *options.DateOptions) (string, error) {
	if do == nil {
		return "", nil
	}
	ref := ""
	if opts := view.DateOptions(s.Snapshot()); len(opts) > 0 {
		ref = opts[0].DateKey
	}
	return do.DateKey(ref)
}
