// Package cli defines the cobra commands for htscan. Interactive
// workflows read scan input line-by-line: a barcode gun acts as a
// keyboard, terminating each read with a newline.
package cli

import (
	"context"

	"github.com/example/htscan/internal/ctxutil"
	"github.com/example/htscan/internal/wire"
)

// NewContext returns a base context carrying the device identity, so
// audit entries written anywhere below can attribute the terminal.
func NewContext() context.Context {
	return ctxutil.WithDeviceID(context.Background(), wire.Cfg().Device.ID)
}
