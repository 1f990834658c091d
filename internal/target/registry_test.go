package target

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"targetinfo/internal/trace"
	"targetinfo/internal/triple"
)

func TestRegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	var tgt Target
	if err := r.Register(&tgt, "sparc", "Sparc", triple.Sparc, true); err != nil {
		t.Fatalf("Register: %v", err)
	}
	got, ok := r.Lookup("sparc")
	if !ok {
		t.Fatalf("sparc not found")
	}
	if got != &tgt {
		t.Fatalf("Lookup returned a different descriptor")
	}
	if got.ShortDesc() != "Sparc" || !got.HasJIT() || got.Arch() != triple.Sparc {
		t.Fatalf("unexpected descriptor: %v", got)
	}
	if _, ok := r.Lookup("mips"); ok {
		t.Fatalf("mips should not be registered")
	}
}

func TestRegisterErrors(t *testing.T) {
	r := NewRegistry()
	var a, b Target
	if err := r.Register(&a, "sparc", "Sparc", triple.Sparc, true); err != nil {
		t.Fatalf("Register: %v", err)
	}

	cases := []struct {
		name string
		tgt  *Target
		key  string
		desc string
		want error
	}{
		{"nil target", nil, "x", "X", ErrNilTarget},
		{"empty name", &b, "", "X", ErrEmptyName},
		{"duplicate", &b, "sparc", "Other", ErrDuplicate},
		{"rebind", &a, "sparcv9", "Sparc V9", ErrRebind},
	}
	for _, tc := range cases {
		err := r.Register(tc.tgt, tc.key, tc.desc, triple.Sparcv9, true)
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s: err = %v, want %v", tc.name, err, tc.want)
		}
		var regErr *RegistryError
		if !errors.As(err, &regErr) || regErr.Op != "register" {
			t.Fatalf("%s: expected *RegistryError, got %T", tc.name, err)
		}
	}

	if got, _ := r.Lookup("sparc"); got != &a || got.ShortDesc() != "Sparc" {
		t.Fatalf("failed registration altered existing entry: %v", got)
	}
	if r.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", r.Len())
	}
}

func TestSharedDescriptorAcrossRegistries(t *testing.T) {
	var tgt Target
	first, second := NewRegistry(), NewRegistry()
	if err := first.Register(&tgt, "sparc", "Sparc", triple.Sparc, true); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if err := second.Register(&tgt, "sparc", "Sparc", triple.Sparc, true); err != nil {
		t.Fatalf("second Register: %v", err)
	}
	if second.Len() != 1 {
		t.Fatalf("second registry Len() = %d", second.Len())
	}
}

func TestLookupTriple(t *testing.T) {
	r := NewRegistry()
	var v8, v9 Target
	_ = r.Register(&v8, "sparc", "Sparc", triple.Sparc, true)
	_ = r.Register(&v9, "sparcv9", "Sparc V9", triple.Sparcv9, true)

	cases := []struct {
		input string
		want  *Target
	}{
		{"sparc", &v8},
		{"sparc-sun-solaris", &v8},
		{"sparcv9", &v9},
		{"sparc64-unknown-linux-gnu", &v9},
	}
	for _, tc := range cases {
		got, err := r.LookupTriple(tc.input)
		if err != nil {
			t.Fatalf("LookupTriple(%q) error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("LookupTriple(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}

	_, err := r.LookupTriple("x86_64-pc-linux-gnu")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err.Error() != `no registered target for triple "x86_64-pc-linux-gnu"` {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestTargetsSorted(t *testing.T) {
	r := NewRegistry()
	var a, b, c Target
	_ = r.Register(&c, "sparcv9", "Sparc V9", triple.Sparcv9, true)
	_ = r.Register(&a, "aarch64", "AArch64", triple.AArch64, false)
	_ = r.Register(&b, "sparc", "Sparc", triple.Sparc, true)

	got := r.Targets()
	want := []string{"aarch64", "sparc", "sparcv9"}
	if len(got) != len(want) {
		t.Fatalf("got %d targets, want %d", len(got), len(want))
	}
	for i, name := range want {
		if got[i].Name() != name {
			t.Fatalf("Targets()[%d] = %q, want %q", i, got[i].Name(), name)
		}
	}
}

func TestRegisterEmitsTrace(t *testing.T) {
	ring := trace.NewRingTracer(16, trace.LevelDetail)
	r := NewRegistry(WithTracer(ring))
	r.SetParentSpan(7)
	var tgt Target
	if err := r.Register(&tgt, "sparc", "Sparc", triple.Sparc, true); err != nil {
		t.Fatalf("Register: %v", err)
	}
	events := ring.Snapshot()
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	ev := events[0]
	if ev.Name != "target.register" || ev.ParentID != 7 {
		t.Fatalf("unexpected event: %+v", ev)
	}
	if ev.Extra["name"] != "sparc" || ev.Extra["jit"] != "true" {
		t.Fatalf("unexpected extras: %v", ev.Extra)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	r := NewRegistry()
	var v8, v9 Target
	_ = r.Register(&v9, "sparcv9", "Sparc V9", triple.Sparcv9, true)
	_ = r.Register(&v8, "sparc", "Sparc", triple.Sparc, true)

	var buf bytes.Buffer
	if err := EncodeSnapshot(&buf, r.Snapshot()); err != nil {
		t.Fatalf("EncodeSnapshot: %v", err)
	}
	got, err := DecodeSnapshot(&buf)
	if err != nil {
		t.Fatalf("DecodeSnapshot: %v", err)
	}
	if len(got.Targets) != 2 {
		t.Fatalf("got %d entries, want 2", len(got.Targets))
	}
	if got.Targets[1] != (SnapshotEntry{Name: "sparcv9", ShortDesc: "Sparc V9", Arch: "sparcv9", HasJIT: true}) {
		t.Fatalf("unexpected entry: %+v", got.Targets[1])
	}
}

func TestDecodeSnapshotRejectsUnknownVersion(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeSnapshot(&buf, Snapshot{Version: 99}); err != nil {
		t.Fatalf("EncodeSnapshot: %v", err)
	}
	if _, err := DecodeSnapshot(&buf); err == nil {
		t.Fatalf("expected version error")
	}
}

func TestFreshDescriptorIsUnregistered(t *testing.T) {
	var tgt Target
	if tgt.Registered() || tgt.Name() != "" {
		t.Fatalf("zero Target reports registered: %v", &tgt)
	}
	r := NewRegistry()
	if err := r.Register(&tgt, "sparc", "Sparc", triple.Sparc, true); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if !tgt.Registered() {
		t.Fatalf("Registered() = false after Register")
	}
}

func TestRebindKeepsFirstAttributes(t *testing.T) {
	var tgt Target
	first, second := NewRegistry(), NewRegistry()
	if err := first.Register(&tgt, "sparc", "Sparc", triple.Sparc, true); err != nil {
		t.Fatalf("Register: %v", err)
	}

	cases := []struct {
		name, desc string
		arch       triple.ArchType
		jit        bool
	}{
		{"sparcel", "Sparc", triple.Sparc, true},
		{"sparc", "Sparc LE", triple.Sparc, true},
		{"sparc", "Sparc", triple.Sparcv9, true},
		{"sparc", "Sparc", triple.Sparc, false},
	}
	for _, tc := range cases {
		err := second.Register(&tgt, tc.name, tc.desc, tc.arch, tc.jit)
		if !errors.Is(err, ErrRebind) {
			t.Fatalf("Register(%q, %q, %v, %v) err = %v, want ErrRebind", tc.name, tc.desc, tc.arch, tc.jit, err)
		}
		if !strings.Contains(err.Error(), "different attributes") {
			t.Fatalf("unexpected message: %q", err.Error())
		}
	}
	if second.Len() != 0 {
		t.Fatalf("rejected registrations were stored: Len() = %d", second.Len())
	}
	if tgt.String() != "sparc - Sparc" || tgt.Arch() != triple.Sparc || !tgt.HasJIT() {
		t.Fatalf("descriptor changed after rejected rebind: %v", &tgt)
	}
	if got, _ := first.Lookup("sparc"); got.String() != "sparc - Sparc" {
		t.Fatalf("stored entry changed: %v", got)
	}
}

func TestConcurrentLookups(t *testing.T) {
	r := NewRegistry()
	var v8, v9 Target
	_ = r.Register(&v8, "sparc", "Sparc", triple.Sparc, true)
	_ = r.Register(&v9, "sparcv9", "Sparc V9", triple.Sparcv9, true)

	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got, ok := r.Lookup("sparc"); !ok || got != &v8 {
					errs <- fmt.Errorf("Lookup(sparc) = %v, %v", got, ok)
					return
				}
				got, err := r.LookupTriple("sparc64-sun-solaris")
				if err != nil || got != &v9 || got.Name() != "sparcv9" {
					errs <- fmt.Errorf("LookupTriple(sparc64-sun-solaris) = %v, %v", got, err)
					return
				}
				if len(r.Targets()) != 2 {
					errs <- fmt.Errorf("Targets() changed size")
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}
}
