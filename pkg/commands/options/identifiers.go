package options

import (
	"github.com/spf13/cobra"
)

// IDOptions
type IDOptions struct {
	ShowID bool
	ID     int
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show the id of each item.")
}

func AddIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().IntVar(&o.ID, "id", 0,
		"Specify the id of an item within its day.")
}
