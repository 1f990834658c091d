// Package sparc registers the SPARC target family.
package sparc

import (
	"targetinfo/internal/target"
	"targetinfo/internal/triple"
)

var (
	// TheSparcTarget is the 32-bit SPARC descriptor.
	TheSparcTarget = &target.Target{}
	// TheSparcV9Target is the 64-bit SPARC V9 descriptor.
	TheSparcV9Target = &target.Target{}
)

// InitializeTargetInfo registers both SPARC descriptors in r.
func InitializeTargetInfo(r *target.Registry) error {
	if err := r.Register(TheSparcTarget, "sparc", "Sparc", triple.Sparc, true); err != nil {
		return err
	}
	return r.Register(TheSparcV9Target, "sparcv9", "Sparc V9", triple.Sparcv9, true)
}
