// Package insights derives human-readable warnings from a collected
// snapshot by checking a fixed set of metrics against thresholds.
package insights

import (
	"fmt"
	"strconv"

	constants "sysdash/config"
	"sysdash/internal/snapshot"
)

// Thresholds are the percentage levels above which each rule fires.
type Thresholds struct {
	CPU    float64
	Memory float64
	Disk   float64
}

// DefaultThresholds returns the stock levels used when no configuration
// overrides them.
func DefaultThresholds() Thresholds {
	return Thresholds{
		CPU:    constants.DEFAULT_CPU_THRESHOLD,
		Memory: constants.DEFAULT_MEMORY_THRESHOLD,
		Disk:   constants.DEFAULT_DISK_THRESHOLD,
	}
}

type rule struct {
	paths   [][]string
	exceeds func(t Thresholds) float64
	message string
}

// Each rule lists the paths it will accept, most specific first. A
// snapshot that nests CPU usage under an intermediate mapping and one
// that stores it flat both resolve.
var rules = []rule{
	{
		paths: [][]string{
			{"CPU Stats", "CPU Usage", "Overall"},
			{"CPU Stats", "Overall"},
		},
		exceeds: func(t Thresholds) float64 { return t.CPU },
		message: "High CPU usage detected: %s%%",
	},
	{
		paths: [][]string{
			{"Memory Stats", "Virtual Memory", "Percent"},
			{"Memory Stats", "Percent"},
		},
		exceeds: func(t Thresholds) float64 { return t.Memory },
		message: "Memory usage is high at %s%%",
	},
	{
		paths: [][]string{
			{"Disk Stats", "Disk Usage", "Percent"},
			{"Disk Stats", "Percent"},
		},
		exceeds: func(t Thresholds) float64 { return t.Disk },
		message: "Disk almost full: %s%% used",
	},
}

// Derive evaluates every rule against the snapshot and returns the
// messages of those that fire, in rule order. Missing paths and
// non-numeric values are skipped silently; derivation never fails.
func Derive(snap snapshot.Snapshot, t Thresholds) []string {
	var out []string
	for _, r := range rules {
		value, ok := resolve(snap, r.paths)
		if !ok {
			continue
		}
		if value > r.exceeds(t) {
			out = append(out, fmt.Sprintf(r.message, formatPercent(value)))
		}
	}
	return out
}

func resolve(snap snapshot.Snapshot, paths [][]string) (float64, bool) {
	for _, path := range paths {
		raw, ok := snap.Lookup(path...)
		if !ok {
			continue
		}
		if v, ok := asFloat(raw); ok {
			return v, true
		}
	}
	return 0, false
}

// formatPercent prints the value the shortest way that round-trips, so
// 92.3 reads "92.3" and 90.0 reads "90".
func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func asFloat(v snapshot.Value) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case uint64:
		return float64(val), true
	}
	return 0, false
}
