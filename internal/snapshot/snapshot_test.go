package snapshot

import (
	"encoding/json"
	"testing"
)

func TestMarshalJSONPreservesOrder(t *testing.T) {
	snap := Snapshot{
		{Key: "Zebra", Value: 1},
		{Key: "Alpha", Value: 2},
		{Key: "Mango", Value: 3},
	}

	data, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"Zebra":1,"Alpha":2,"Mango":3}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}
}

func TestMarshalJSONNested(t *testing.T) {
	snap := Snapshot{
		{Key: "CPU Stats", Value: Mapping{
			{Key: "Overall", Value: 42.5},
			{Key: "Per CPU", Value: List{10.0, 20.0}},
		}},
	}

	data, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"CPU Stats":{"Overall":42.5,"Per CPU":[10,20]}}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}
}

func TestSetReplacesInPlace(t *testing.T) {
	m := Mapping{
		{Key: "a", Value: 1},
		{Key: "b", Value: 2},
		{Key: "c", Value: 3},
	}
	m.Set("b", 20)

	if v, _ := m.Get("b"); v != 20 {
		t.Errorf("got %v, want 20", v)
	}
	if got := m.Keys(); got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Errorf("key order changed: %v", got)
	}
}

func TestSetAppendsNewKey(t *testing.T) {
	m := Mapping{{Key: "a", Value: 1}}
	m.Set("Network Scan", List{})

	keys := m.Keys()
	if len(keys) != 2 || keys[1] != "Network Scan" {
		t.Errorf("got keys %v", keys)
	}
}

func TestLookup(t *testing.T) {
	snap := Snapshot{
		{Key: "CPU Stats", Value: Mapping{
			{Key: "CPU Usage", Value: Mapping{
				{Key: "Overall", Value: 92.3},
			}},
		}},
	}

	v, ok := snap.Lookup("CPU Stats", "CPU Usage", "Overall")
	if !ok || v != 92.3 {
		t.Errorf("got %v %v, want 92.3 true", v, ok)
	}

	if _, ok := snap.Lookup("CPU Stats", "Missing"); ok {
		t.Error("expected miss for absent key")
	}
	if _, ok := snap.Lookup("CPU Stats", "CPU Usage", "Overall", "Deeper"); ok {
		t.Error("expected miss when path descends into a scalar")
	}
}

func TestMappingString(t *testing.T) {
	m := Mapping{
		{Key: "ip", Value: "192.168.1.5"},
		{Key: "mac", Value: "aa:bb:cc:dd:ee:ff"},
	}
	want := "ip: 192.168.1.5, mac: aa:bb:cc:dd:ee:ff"
	if got := m.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestErrorSnapshot(t *testing.T) {
	snap := ErrorSnapshot("boom")
	data, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"error":"boom"}` {
		t.Errorf("got %s", data)
	}
}
