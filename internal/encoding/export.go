// Package encoding writes collected snapshots to disk in JSON and CBOR.
package encoding

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fxamacker/cbor/v2"

	"sysdash/internal/snapshot"
)

// WriteJSON writes the snapshot to path as 2-space indented JSON with
// field order preserved.
func WriteJSON(path string, snap snapshot.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// WriteCBOR writes the snapshot to path as compact CBOR. Field order is
// not preserved; CBOR export is meant for machine consumers.
func WriteCBOR(path string, snap snapshot.Snapshot) error {
	data, err := MarshalCBOR(snap.Plain())
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// MarshalCBOR encodes any value with canonical map ordering.
func MarshalCBOR(v any) ([]byte, error) {
	opts := cbor.CanonicalEncOptions()
	mode, err := opts.EncMode()
	if err != nil {
		return nil, err
	}
	return mode.Marshal(v)
}

// UnmarshalCBOR decodes CBOR data produced by MarshalCBOR.
func UnmarshalCBOR(data []byte, v any) error {
	return cbor.Unmarshal(data, v)
}
