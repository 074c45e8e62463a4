package collector

import (
	"testing"

	"sysdash/internal/snapshot"
)

func TestCategoriesOrder(t *testing.T) {
	want := []string{
		"CPU Stats",
		"Memory Stats",
		"Disk Stats",
		"Network Stats",
		"Sensor Stats",
		"GPU Stats",
		"CPU Info",
		"Other Stats",
	}
	got := Categories()
	if len(got) != len(want) {
		t.Fatalf("got %d categories, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("category %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCollectShape(t *testing.T) {
	var done []string
	snap := Collect(func(category string) { done = append(done, category) })

	if _, ok := snap.Get("error"); ok {
		t.Skip("collection unavailable in this environment")
	}

	keys := snap.Keys()
	want := Categories()
	if len(keys) != len(want) {
		t.Fatalf("got keys %v", keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("key %d: got %q, want %q", i, keys[i], want[i])
		}
	}
	if len(done) != len(want) {
		t.Errorf("done callback fired %d times, want %d", len(done), len(want))
	}
}

func TestCollectCPUCategory(t *testing.T) {
	snap := Collect(nil)
	if _, ok := snap.Get("error"); ok {
		t.Skip("collection unavailable in this environment")
	}

	cpuStats, ok := snap.Get("CPU Stats")
	if !ok {
		t.Fatal("CPU Stats missing")
	}
	m, ok := cpuStats.(snapshot.Mapping)
	if !ok {
		t.Fatalf("CPU Stats is %T, want Mapping", cpuStats)
	}
	usage, ok := m.Get("CPU Usage")
	if !ok {
		t.Fatal("CPU Usage missing")
	}
	um, ok := usage.(snapshot.Mapping)
	if !ok {
		t.Fatalf("CPU Usage is %T", usage)
	}
	if _, ok := um.Get("Overall"); !ok {
		t.Error("Overall missing from CPU Usage")
	}
}

func TestParseNvidiaSMI(t *testing.T) {
	out := "0, NVIDIA GeForce RTX 3080, 45, 10240, 2048, 8192, 61\n"
	got, err := parseNvidiaSMI(out)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("got %d entries", len(got))
	}
	entry, ok := got[0].(snapshot.Mapping)
	if !ok {
		t.Fatalf("entry is %T", got[0])
	}
	if v, _ := entry.Get("name"); v != "NVIDIA GeForce RTX 3080" {
		t.Errorf("name = %v", v)
	}
	if v, _ := entry.Get("id"); v != int64(0) {
		t.Errorf("id = %v (%T)", v, v)
	}
	if v, _ := entry.Get("memory_total"); v != float64(10240) {
		t.Errorf("memory_total = %v (%T)", v, v)
	}
}

func TestParseNvidiaSMIEmpty(t *testing.T) {
	got, err := parseNvidiaSMI("")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}

func TestParseNvidiaSMIMalformed(t *testing.T) {
	if _, err := parseNvidiaSMI("garbage line without commas"); err == nil {
		t.Error("expected error for malformed output")
	}
}

func TestFamilyName(t *testing.T) {
	tests := []struct {
		family uint32
		want   string
	}{
		{2, "AF_INET"},
		{10, "AF_INET6"},
		{30, "AF_INET6"},
		{99, "AF_99"},
	}
	for _, tt := range tests {
		if got := familyName(tt.family); got != tt.want {
			t.Errorf("familyName(%d) = %q, want %q", tt.family, got, tt.want)
		}
	}
}

func TestAddressRecord(t *testing.T) {
	rec := addressRecord("192.168.1.5/24")
	if v, _ := rec.Get("Family"); v != "AF_INET" {
		t.Errorf("Family = %v", v)
	}
	if v, _ := rec.Get("Address"); v != "192.168.1.5" {
		t.Errorf("Address = %v", v)
	}
	if v, _ := rec.Get("Netmask"); v != "255.255.255.0" {
		t.Errorf("Netmask = %v", v)
	}
}
