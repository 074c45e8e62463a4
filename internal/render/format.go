package render

import (
	"fmt"
	"strconv"
	"strings"

	"sysdash/internal/snapshot"
)

// leafListLimit is the number of elements shown before a long list is
// truncated to a summary at leaf display positions.
const leafListLimit = 5

// FormatValue converts a scalar (or a structure landing in a leaf
// position) into display text.
//
// Integers above 1024 deliberately go through the byte-size formatter
// even when they are not byte counts (PIDs, totals); the ambiguity is a
// documented property of the display format.
func FormatValue(v snapshot.Value) string {
	switch val := v.(type) {
	case float64:
		return strconv.FormatFloat(val, 'f', 2, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', 2, 32)
	case int:
		return formatInt(int64(val))
	case int32:
		return formatInt(int64(val))
	case int64:
		return formatInt(val)
	case uint:
		return formatUint(uint64(val))
	case uint32:
		return formatUint(uint64(val))
	case uint64:
		return formatUint(val)
	case snapshot.List:
		return formatList(val)
	case snapshot.Mapping:
		return flattenMapping(val)
	default:
		return fmt.Sprint(val)
	}
}

func formatInt(v int64) string {
	if v > 1024 {
		return FormatBytes(float64(v))
	}
	return strconv.FormatInt(v, 10)
}

func formatUint(v uint64) string {
	if v > 1024 {
		return FormatBytes(float64(v))
	}
	return strconv.FormatUint(v, 10)
}

// FormatBytes renders a quantity as a binary-prefixed byte size with
// two decimals, dividing by 1024 per step.
func FormatBytes(v float64) string {
	for _, unit := range []string{"B", "KB", "MB", "GB", "TB"} {
		if v < 1024 {
			return fmt.Sprintf("%.2f %s", v, unit)
		}
		v /= 1024
	}
	return fmt.Sprintf("%.2f PB", v)
}

// formatList joins a list's elements. Lists longer than leafListLimit
// show the first five elements and a total count suffix.
func formatList(l snapshot.List) string {
	if len(l) > leafListLimit {
		parts := make([]string, leafListLimit)
		for i := 0; i < leafListLimit; i++ {
			parts[i] = fmt.Sprint(l[i])
		}
		return strings.Join(parts, ", ") + fmt.Sprintf(" ... (%d items)", len(l))
	}
	parts := make([]string, len(l))
	for i, v := range l {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ", ")
}

// flattenMapping renders a mapping that landed in a leaf position as
// "key: value" pairs instead of a further sub-structure.
func flattenMapping(m snapshot.Mapping) string {
	parts := make([]string, len(m))
	for i, f := range m {
		parts[i] = f.Key + ": " + FormatValue(f.Value)
	}
	return strings.Join(parts, ", ")
}
