package ui

import (
	"context"
	"errors"

	"tableflip.dev/tabi/pkg/app"
	"tableflip.dev/tabi/pkg/tui"
	"tableflip.dev/tabi/pkg/weather"
)

type UI struct {
	Store   *app.Store
	Weather weather.Provider
}

func (u *UI) Do(ctx context.Context) error {
	if u.Store == nil {
		return errors.New("ui: no trip store")
	}
	ctx, cancel := context.WithCancel(ctx)
	// Stops the store watcher when the program exits.
	defer cancel()

	return tui.Run(ctx, u.Store, u.Weather)
}
