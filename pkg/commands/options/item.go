package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/tabi/pkg/itinerary"
	"tableflip.dev/tabi/pkg/trip"
)

// ItemOptions carries the fields of an itinerary item.
type ItemOptions struct {
	Type     string
	Name     string
	Time     string
	Location string
	Note     string
}

func AddItemArgs(cmd *cobra.Command, o *ItemOptions) {
	cmd.Flags().StringVarP(&o.Type, "type", "t", "",
		"Item type: flight, transport, attraction, meal or other.")
	cmd.Flags().StringVar(&o.Time, "time", "",
		`Time of day, example: --time="9:30".`)
	cmd.Flags().StringVarP(&o.Location, "location", "l", "",
		"Address or place name.")
	cmd.Flags().StringVarP(&o.Note, "note", "n", "",
		"Free-form note.")
}

// AddNameArg registers --name for commands that do not take the name as args.
func AddNameArg(cmd *cobra.Command, o *ItemOptions) {
	cmd.Flags().StringVar(&o.Name, "name", "",
		"Item name.")
}

// Draft builds a draft from the flags. An empty type is left for the editor
// to default.
func (o *ItemOptions) Draft() (itinerary.Draft, error) {
	d := itinerary.Draft{Name: o.Name, Time: o.Time, Location: o.Location, Note: o.Note}
	if o.Type != "" {
		t, err := trip.ParseItemType(o.Type)
		if err != nil {
			return d, err
		}
		d.Type = t
	}
	return d, nil
}

// Patch includes only the flags that were set on cmd.
func (o *ItemOptions) Patch(cmd *cobra.Command) (itinerary.Patch, error) {
	var p itinerary.Patch
	changed := cmd.Flags().Changed
	if changed("type") {
		t, err := trip.ParseItemType(o.Type)
		if err != nil {
			return p, err
		}
		p.Type = &t
	}
	if changed("name") {
		p.Name = &o.Name
	}
	if changed("time") {
		p.Time = &o.Time
	}
	if changed("location") {
		p.Location = &o.Location
	}
	if changed("note") {
		p.Note = &o.Note
	}
	return p, nil
}
