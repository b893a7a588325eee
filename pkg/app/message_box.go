package app

import (
	"github.com/go-veneer/veneer/pkg/errors"
	"github.com/go-veneer/veneer/pkg/host"
)

// ShowMessageBox displays a one-shot modal dialog and blocks until it is
// dismissed. The onTap callback, when non-nil, receives the logical id of
// the button that dismissed the dialog. The helper is stateless and
// independent of any widget tree.
func ShowMessageBox(title, text string, icon host.MessageBoxIcon, buttons host.MessageBoxButtons, onTap func(host.MessageBoxResult)) error {
	tk, err := host.Current()
	if err != nil {
		return &errors.VeneerError{Op: "app.ShowMessageBox", Kind: errors.KindHost, Err: err}
	}
	result, err := tk.ShowMessageBox(title, text, icon, buttons)
	if err != nil {
		return err
	}
	if onTap != nil {
		onTap(result)
	}
	return nil
}
