// Package all lists every target family linked into the binary and builds a
// registry from them.
package all

import (
	"context"
	"fmt"
	"strings"

	"targetinfo/internal/observ"
	"targetinfo/internal/target"
	"targetinfo/internal/target/sparc"
	"targetinfo/internal/trace"
)

// Initializer is the registration hook of one target family.
type Initializer struct {
	Family string
	Init   func(*target.Registry) error
}

var initializers = []Initializer{
	{Family: "sparc", Init: sparc.InitializeTargetInfo},
}

// Initializers returns the static registration table in run order.
func Initializers() []Initializer {
	out := make([]Initializer, len(initializers))
	copy(out, initializers)
	return out
}

// Families returns the family names of the registration table.
func Families() []string {
	out := make([]string, 0, len(initializers))
	for _, in := range initializers {
		out = append(out, in.Family)
	}
	return out
}

// Build creates a registry and runs the initializers for families, or for
// every family when families is empty. Unknown family names are an error.
func Build(ctx context.Context, families []string) (*target.Registry, error) {
	tracer := trace.FromContext(ctx)
	r := target.NewRegistry(target.WithTracer(tracer))
	if err := Initialize(ctx, r, families); err != nil {
		return nil, err
	}
	return r, nil
}

// Initialize runs the selected initializers against r in table order.
func Initialize(ctx context.Context, r *target.Registry, families []string) error {
	selected, err := selectInitializers(families)
	if err != nil {
		return err
	}
	tracer := trace.FromContext(ctx)
	timer := observ.TimerFrom(ctx)
	for _, in := range selected {
		phase := timer.Begin("init " + in.Family)
		span := trace.Begin(tracer, trace.ScopePass, "targetinfo.init", 0).WithExtra("family", in.Family)
		before := r.Len()
		r.SetParentSpan(span.ID())
		err := in.Init(r)
		r.SetParentSpan(0)
		if err != nil {
			span.End("failed")
			timer.End(phase, "failed")
			return fmt.Errorf("initialize %s targets: %w", in.Family, err)
		}
		span.End("")
		timer.End(phase, fmt.Sprintf("%d targets", r.Len()-before))
	}
	return nil
}

func selectInitializers(families []string) ([]Initializer, error) {
	if len(families) == 0 {
		return Initializers(), nil
	}
	want := make(map[string]bool, len(families))
	for _, f := range families {
		f = strings.TrimSpace(f)
		found := false
		for _, in := range initializers {
			if in.Family == f {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown target family %q (available: %s)", f, strings.Join(Families(), ", "))
		}
		want[f] = true
	}
	out := make([]Initializer, 0, len(want))
	for _, in := range initializers {
		if want[in.Family] {
			out = append(out, in)
		}
	}
	return out, nil
}
