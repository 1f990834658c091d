package sparc

import (
	"errors"
	"testing"

	"targetinfo/internal/target"
	"targetinfo/internal/triple"
)

func TestInitializeTargetInfo(t *testing.T) {
	r := target.NewRegistry()
	if err := InitializeTargetInfo(r); err != nil {
		t.Fatalf("InitializeTargetInfo: %v", err)
	}

	cases := []struct {
		triple string
		want   *target.Target
		desc   string
		arch   triple.ArchType
	}{
		{"sparc", TheSparcTarget, "Sparc", triple.Sparc},
		{"sparcv9", TheSparcV9Target, "Sparc V9", triple.Sparcv9},
	}
	for _, tc := range cases {
		got, ok := r.Lookup(tc.triple)
		if !ok {
			t.Fatalf("Lookup(%q): not found", tc.triple)
		}
		if got != tc.want {
			t.Fatalf("Lookup(%q) returned %p, want %p", tc.triple, got, tc.want)
		}
		if got.ShortDesc() != tc.desc {
			t.Fatalf("Lookup(%q).ShortDesc = %q, want %q", tc.triple, got.ShortDesc(), tc.desc)
		}
		if got.Arch() != tc.arch {
			t.Fatalf("Lookup(%q).Arch = %v, want %v", tc.triple, got.Arch(), tc.arch)
		}
		if !got.HasJIT() {
			t.Fatalf("Lookup(%q).HasJIT = false, want true", tc.triple)
		}
	}

	for _, other := range []string{"sparc64", "sparcel", "x86_64", "", "Sparc"} {
		if _, ok := r.Lookup(other); ok {
			t.Fatalf("Lookup(%q) should report not found", other)
		}
	}
	if r.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", r.Len())
	}
}

func TestDescriptorsAreDistinct(t *testing.T) {
	if TheSparcTarget == TheSparcV9Target {
		t.Fatalf("SPARC descriptors share identity")
	}
	r := target.NewRegistry()
	if err := InitializeTargetInfo(r); err != nil {
		t.Fatalf("InitializeTargetInfo: %v", err)
	}
	if TheSparcTarget.Name() != "sparc" || TheSparcTarget.ShortDesc() != "Sparc" {
		t.Fatalf("sparc descriptor clobbered: %v", TheSparcTarget)
	}
	if TheSparcV9Target.Name() != "sparcv9" || TheSparcV9Target.ShortDesc() != "Sparc V9" {
		t.Fatalf("sparcv9 descriptor clobbered: %v", TheSparcV9Target)
	}
}

func TestInitializeKeepsUnrelatedEntries(t *testing.T) {
	r := target.NewRegistry()
	other := &target.Target{}
	if err := r.Register(other, "aarch64", "AArch64", triple.AArch64, false); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := InitializeTargetInfo(r); err != nil {
		t.Fatalf("InitializeTargetInfo: %v", err)
	}
	got, ok := r.Lookup("aarch64")
	if !ok || got != other || got.ShortDesc() != "AArch64" || got.HasJIT() {
		t.Fatalf("unrelated entry altered: %v", got)
	}
	if r.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", r.Len())
	}
}

func TestInitializeTwiceReportsDuplicate(t *testing.T) {
	r := target.NewRegistry()
	if err := InitializeTargetInfo(r); err != nil {
		t.Fatalf("InitializeTargetInfo: %v", err)
	}
	err := InitializeTargetInfo(r)
	if !errors.Is(err, target.ErrDuplicate) {
		t.Fatalf("second InitializeTargetInfo err = %v, want ErrDuplicate", err)
	}
	if r.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", r.Len())
	}
}
