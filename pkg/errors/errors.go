// Package errors provides structured error handling for the Veneer framework.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates a configuration file error.
	KindConfig
	// KindHost indicates a host toolkit error.
	KindHost
	// KindBuild indicates a failure during a build pass.
	KindBuild
	// KindPaint indicates a failure during a paint pass.
	KindPaint
	// KindUsage indicates an API misuse, such as calling SetState on a
	// widget that was never built.
	KindUsage
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindHost:
		return "host"
	case KindBuild:
		return "build"
	case KindPaint:
		return "paint"
	case KindUsage:
		return "usage"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// VeneerError represents a structured error in the Veneer framework.
type VeneerError struct {
	// Op is the operation that failed (e.g., "app.Run").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Widget is the widget type name, if applicable.
	Widget string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *VeneerError) Error() string {
	if e.Widget != "" {
		return fmt.Sprintf("%s [%s] widget=%s: %v", e.Op, e.Kind, e.Widget, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *VeneerError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "app.Repaint").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the Veneer framework.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *VeneerError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
