package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/lipgloss/tree"

	"sysdash/internal/snapshot"
	"sysdash/internal/ui"
)

// variant is the closed set of display shapes a field can take. The
// shape is decided once per field, before any rendering happens.
type variant int

const (
	variantScalar variant = iota
	variantMapping
	variantTable      // non-empty list of mappings, columns from first entry
	variantStringList // list of plain strings, one per row
	variantEmptyList
	variantMixedList // anything else; summarized, never rendered structurally
	variantGauge     // bounded 0-100 indicator
	variantTree      // hierarchical branch/leaf display
)

// overrideKey addresses one named special case in the dispatch table.
type overrideKey struct {
	category string
	field    string
}

// overrides lists the named special cases that win over the generic
// type-based rules. Each entry is validated against the actual runtime
// shape before use; a mismatch falls back to the generic rules.
var overrides = map[overrideKey]variant{
	{"CPU Stats", "Overall"}:                variantGauge,
	{"Disk Stats", "Disk Partitions"}:       variantTree,
	{"Network Stats", "Network Interfaces"}: variantTree,
}

const gaugeWidth = 30

// criticalPercent is where percentage displays switch to the alert color.
const criticalPercent = 80.0

// Render converts one category's data into a titled terminal panel. It
// performs no I/O and does not modify its input; malformed shapes
// degrade to textual summaries instead of failing.
func Render(categoryName string, value snapshot.Value) string {
	var body string
	switch v := value.(type) {
	case snapshot.Mapping:
		body = renderCategoryMapping(categoryName, v)
	default:
		// Top-level lists (GPU Stats, Network Scan) and the scalar
		// payload of an {"error": ...} snapshot.
		body = renderField(categoryName, "", value)
	}
	return ui.TitledPanel(categoryName, body)
}

func renderCategoryMapping(category string, m snapshot.Mapping) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(ui.TableBorderStyle).
		BorderRow(true).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return ui.CellStyle.Inherit(ui.FieldStyle)
			}
			return ui.CellStyle
		})
	for _, f := range m {
		t.Row(f.Key, renderField(category, f.Key, f.Value))
	}
	return t.Render()
}

// renderField picks a variant for one field and renders it.
func renderField(category, field string, value snapshot.Value) string {
	switch classify(category, field, value) {
	case variantGauge:
		return renderGauge(toFloat(value))
	case variantTree:
		return renderTree(value)
	case variantMapping:
		return renderSubMapping(category, value.(snapshot.Mapping))
	case variantTable:
		return renderListTable(value.(snapshot.List))
	case variantStringList:
		return renderStringList(value.(snapshot.List))
	case variantEmptyList:
		return "No data available."
	case variantMixedList:
		return summarizeList(value.(snapshot.List))
	default:
		return FormatValue(value)
	}
}

func classify(category, field string, value snapshot.Value) variant {
	if kind, ok := overrides[overrideKey{category, field}]; ok && overrideApplies(kind, value) {
		return kind
	}
	switch v := value.(type) {
	case snapshot.Mapping:
		return variantMapping
	case snapshot.List:
		return classifyList(v)
	default:
		return variantScalar
	}
}

func classifyList(l snapshot.List) variant {
	if len(l) == 0 {
		return variantEmptyList
	}
	allMappings, allStrings := true, true
	for _, el := range l {
		if _, ok := el.(snapshot.Mapping); !ok {
			allMappings = false
		}
		if _, ok := el.(string); !ok {
			allStrings = false
		}
	}
	switch {
	case allMappings:
		return variantTable
	case allStrings:
		return variantStringList
	default:
		return variantMixedList
	}
}

func overrideApplies(kind variant, value snapshot.Value) bool {
	switch kind {
	case variantGauge:
		_, ok := asFloat(value)
		return ok
	case variantTree:
		switch v := value.(type) {
		case snapshot.Mapping:
			return true
		case snapshot.List:
			return classifyList(v) == variantTable
		}
		return false
	}
	return false
}

// renderGauge draws a bounded 0-100 bar, switching to the alert color
// above the critical threshold.
func renderGauge(percent float64) string {
	ratio := percent / 100
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(math.Round(ratio * gaugeWidth))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", gaugeWidth-filled)

	style := ui.GaugeOKStyle
	if percent > criticalPercent {
		style = ui.GaugeHotStyle
	}
	return style.Render(bar) + " " + FormatValue(percent) + "%"
}

// renderTree handles both tree-eligible shapes: a list of mappings
// (one branch per entry, labelled by the first value, remaining pairs
// as leaves) and a mapping of name to record list (one branch per name,
// one leaf per record).
func renderTree(value snapshot.Value) string {
	root := tree.New()
	switch v := value.(type) {
	case snapshot.List:
		for _, el := range v {
			entry, ok := el.(snapshot.Mapping)
			if !ok || len(entry) == 0 {
				continue
			}
			branch := tree.Root(FormatValue(entry[0].Value))
			for _, f := range entry[1:] {
				branch.Child(f.Key + ": " + FormatValue(f.Value))
			}
			root.Child(branch)
		}
	case snapshot.Mapping:
		for _, f := range v {
			branch := tree.Root(f.Key)
			records, ok := f.Value.(snapshot.List)
			if !ok {
				branch.Child(FormatValue(f.Value))
			} else {
				for _, record := range records {
					branch.Child(FormatValue(record))
				}
			}
			root.Child(branch)
		}
	}
	return root.String()
}

// renderSubMapping renders one nested level as an aligned two-column
// block. Mappings nested deeper than this flatten to strings via
// FormatValue; recursion stops here. Named overrides still apply to
// nested fields, so "Overall" gets its gauge wherever it sits.
func renderSubMapping(category string, m snapshot.Mapping) string {
	width := 0
	for _, f := range m {
		if len(f.Key) > width {
			width = len(f.Key)
		}
	}
	lines := make([]string, len(m))
	for i, f := range m {
		key := fmt.Sprintf("%-*s", width, f.Key)
		rendered := FormatValue(f.Value)
		if classify(category, f.Key, f.Value) == variantGauge {
			rendered = renderGauge(toFloat(f.Value))
		}
		lines[i] = ui.SubKeyStyle.Render(key) + "  " + rendered
	}
	return strings.Join(lines, "\n")
}

// renderListTable renders a homogeneous list of mappings as a table.
// Columns come from the first entry only; entries with extra keys lose
// them and entries with missing keys get blank cells.
func renderListTable(l snapshot.List) string {
	first := l[0].(snapshot.Mapping)
	keys := first.Keys()

	headers := make([]string, len(keys))
	for i, k := range keys {
		headers[i] = capitalize(k)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(ui.TableBorderStyle).
		StyleFunc(func(row, col int) lipgloss.Style { return ui.CellStyle }).
		Headers(headers...)
	for _, el := range l {
		entry, _ := el.(snapshot.Mapping)
		cells := make([]string, len(keys))
		for i, k := range keys {
			if v, ok := entry.Get(k); ok {
				cells[i] = FormatValue(v)
			}
		}
		t.Row(cells...)
	}
	return t.Render()
}

func renderStringList(l snapshot.List) string {
	lines := make([]string, len(l))
	for i, el := range l {
		lines[i] = el.(string)
	}
	return strings.Join(lines, "\n")
}

// summarizeList is the guard against malformed mixed-type sequences: a
// truncated textual summary instead of a structural render.
func summarizeList(l snapshot.List) string {
	text := l.String()
	// Character count, not bytes, so a multibyte rune never gets split.
	if runes := []rune(text); len(runes) > 100 {
		text = string(runes[:100])
	}
	return "List: " + text
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

func toFloat(v snapshot.Value) float64 {
	f, _ := asFloat(v)
	return f
}

func asFloat(v snapshot.Value) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case uint:
		return float64(val), true
	case uint32:
		return float64(val), true
	case uint64:
		return float64(val), true
	}
	return 0, false
}
