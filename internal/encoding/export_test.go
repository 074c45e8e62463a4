package encoding

import (
	"os"
	"path/filepath"
	"testing"

	"sysdash/internal/snapshot"
)

func TestWriteJSONErrorSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")
	snap := snapshot.ErrorSnapshot("boom")

	if err := WriteJSON(path, snap); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	// The file holds exactly the indented object, nothing after it.
	want := "{\n  \"error\": \"boom\"\n}"
	if string(data) != want {
		t.Errorf("got %q, want %q", data, want)
	}
}

func TestWriteJSONPreservesOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")
	snap := snapshot.Snapshot{
		{Key: "CPU Stats", Value: snapshot.Mapping{{Key: "Overall", Value: 42.5}}},
		{Key: "Memory Stats", Value: snapshot.Mapping{{Key: "Percent", Value: 50.0}}},
	}

	if err := WriteJSON(path, snap); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	want := `{
  "CPU Stats": {
    "Overall": 42.5
  },
  "Memory Stats": {
    "Percent": 50
  }
}`
	if string(data) != want {
		t.Errorf("got %q, want %q", data, want)
	}
}

func TestWriteCBORRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.cbor")
	snap := snapshot.Snapshot{
		{Key: "CPU Stats", Value: snapshot.Mapping{{Key: "Overall", Value: 42.5}}},
		{Key: "Messages", Value: snapshot.List{"a", "b"}},
	}

	if err := WriteCBOR(path, snap); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}

	var decoded map[string]any
	if err := UnmarshalCBOR(data, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	cpu, ok := decoded["CPU Stats"].(map[any]any)
	if !ok {
		t.Fatalf("CPU Stats decoded as %T", decoded["CPU Stats"])
	}
	if cpu["Overall"] != 42.5 {
		t.Errorf("got %v, want 42.5", cpu["Overall"])
	}
}
