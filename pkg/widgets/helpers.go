package widgets

import (
	stderrors "errors"

	"github.com/go-veneer/veneer/pkg/errors"
	"github.com/go-veneer/veneer/pkg/host"
)

// ErrPaintBeforeBuild is returned when a composite widget is painted before
// its build pass has run.
var ErrPaintBeforeBuild = stderrors.New("paint before build")

// toolkit resolves the registered host toolkit for a paint operation.
func toolkit(op string) (host.Toolkit, error) {
	tk, err := host.Current()
	if err != nil {
		return nil, &errors.VeneerError{Op: op, Kind: errors.KindHost, Err: err}
	}
	return tk, nil
}

// usageError wraps an API-misuse condition in a structured error.
func usageError(op string, err error) error {
	return &errors.VeneerError{Op: op, Kind: errors.KindUsage, Err: err}
}
