package host

import (
	"errors"
	"sync"
)

// ErrNoToolkit is returned when no toolkit binding has been registered.
var ErrNoToolkit = errors.New("no host toolkit registered")

var (
	currentToolkit Toolkit
	registryMu     sync.RWMutex
)

// Register installs the toolkit binding used by the widget layer.
// Later registrations replace earlier ones.
func Register(tk Toolkit) {
	registryMu.Lock()
	currentToolkit = tk
	registryMu.Unlock()
}

// Current returns the registered toolkit, or ErrNoToolkit when none is
// registered.
func Current() (Toolkit, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	if currentToolkit == nil {
		return nil, ErrNoToolkit
	}
	return currentToolkit, nil
}

// ResetForTest removes the registered toolkit. Tests that register a fake
// binding should defer this to restore the clean state.
func ResetForTest() {
	registryMu.Lock()
	currentToolkit = nil
	registryMu.Unlock()
}
