package target

import (
	"errors"
	"fmt"
)

var (
	ErrNilTarget = errors.New("nil target")
	ErrEmptyName = errors.New("empty target name")
	ErrDuplicate = errors.New("target already registered")
	ErrRebind    = errors.New("target already registered with different attributes")
	ErrNotFound  = errors.New("no registered target")
)

// RegistryError describes a failed registry operation.
type RegistryError struct {
	Op   string // "register" or "lookup"
	Name string
	Err  error // one of the Err* sentinels
}

func (e *RegistryError) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch {
	case e.Err == ErrNotFound:
		return fmt.Sprintf("no registered target for triple %q", e.Name)
	case e.Name == "":
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("%s %q: %v", e.Op, e.Name, e.Err)
	}
}

func (e *RegistryError) Unwrap() error {
	return e.Err
}
