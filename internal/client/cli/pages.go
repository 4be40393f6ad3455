package cli

import (
	"context"

	"github.com/egiraffe/egiraffe-cli/internal/client/viewstate"
)

// runPage is the per-page fetch-and-render skeleton: it binds a loader to a
// resource and renders the three mutually exclusive states: a loading
// placeholder, the error message, or the data view. The resource's error is
// returned so callers can distinguish a failed page from a rendered one.
func runPage[T any](ctx context.Context, loader func(context.Context) (T, error), render func(T)) error {
	res := viewstate.NewResource(loader)

	unsubscribe := res.Subscribe(func() {
		switch res.State() {
		case viewstate.StateLoading:
			printlnFn("Loading...")
		case viewstate.StateError:
			printlnFn("Error:", res.Err().Error())
		case viewstate.StateReady:
			if v, ok := res.Value(); ok {
				render(v)
			}
		}
	})
	defer unsubscribe()

	res.Fetch(ctx)
	return res.Err()
}
