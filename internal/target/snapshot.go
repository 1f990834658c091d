package target

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// snapshotVersion is bumped whenever SnapshotEntry changes shape.
const snapshotVersion = 1

// SnapshotEntry is the serialized form of one registered target.
type SnapshotEntry struct {
	Name      string `msgpack:"name" json:"name"`
	ShortDesc string `msgpack:"desc" json:"desc"`
	Arch      string `msgpack:"arch" json:"arch"`
	HasJIT    bool   `msgpack:"jit" json:"jit"`
}

// Snapshot is a point-in-time listing of a registry.
type Snapshot struct {
	Version int             `msgpack:"v" json:"version"`
	Targets []SnapshotEntry `msgpack:"targets" json:"targets"`
}

// Snapshot lists the registered targets sorted by name.
func (r *Registry) Snapshot() Snapshot {
	targets := r.Targets()
	s := Snapshot{
		Version: snapshotVersion,
		Targets: make([]SnapshotEntry, 0, len(targets)),
	}
	for _, t := range targets {
		s.Targets = append(s.Targets, SnapshotEntry{
			Name:      t.Name(),
			ShortDesc: t.ShortDesc(),
			Arch:      t.Arch().String(),
			HasJIT:    t.HasJIT(),
		})
	}
	return s
}

// EncodeSnapshot writes s to w in msgpack form.
func EncodeSnapshot(w io.Writer, s Snapshot) error {
	if err := msgpack.NewEncoder(w).Encode(&s); err != nil {
		return fmt.Errorf("encode target snapshot: %w", err)
	}
	return nil
}

// DecodeSnapshot reads a snapshot written by EncodeSnapshot.
func DecodeSnapshot(r io.Reader) (Snapshot, error) {
	var s Snapshot
	if err := msgpack.NewDecoder(r).Decode(&s); err != nil {
		return Snapshot{}, fmt.Errorf("decode target snapshot: %w", err)
	}
	if s.Version != snapshotVersion {
		return Snapshot{}, fmt.Errorf("decode target snapshot: unsupported version %d", s.Version)
	}
	return s, nil
}
