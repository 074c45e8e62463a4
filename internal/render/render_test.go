package render

import (
	"strings"
	"testing"
	"unicode/utf8"

	"sysdash/internal/snapshot"
)

func TestRenderPreservesFieldOrder(t *testing.T) {
	m := snapshot.Mapping{
		{Key: "Zulu", Value: 1},
		{Key: "Alpha", Value: 2},
		{Key: "Mike", Value: 3},
	}
	out := Render("Other Stats", m)

	zulu := strings.Index(out, "Zulu")
	alpha := strings.Index(out, "Alpha")
	mike := strings.Index(out, "Mike")
	if zulu < 0 || alpha < 0 || mike < 0 {
		t.Fatalf("missing keys in output:\n%s", out)
	}
	if !(zulu < alpha && alpha < mike) {
		t.Errorf("insertion order not preserved: Zulu@%d Alpha@%d Mike@%d", zulu, alpha, mike)
	}
}

func TestRenderGaugeOverride(t *testing.T) {
	m := snapshot.Mapping{{Key: "Overall", Value: 92.3}}
	out := Render("CPU Stats", m)

	if !strings.Contains(out, "█") {
		t.Errorf("expected gauge bar in output:\n%s", out)
	}
	if !strings.Contains(out, "92.30%") {
		t.Errorf("expected formatted percentage in output:\n%s", out)
	}
}

func TestRenderGaugeInsideSubMapping(t *testing.T) {
	m := snapshot.Mapping{
		{Key: "CPU Usage", Value: snapshot.Mapping{
			{Key: "Overall", Value: 45.0},
			{Key: "Per CPU", Value: snapshot.List{40.0, 50.0}},
		}},
	}
	out := Render("CPU Stats", m)

	if !strings.Contains(out, "█") {
		t.Errorf("expected gauge bar for nested Overall:\n%s", out)
	}
	if !strings.Contains(out, "40, 50") {
		t.Errorf("per-cpu list missing:\n%s", out)
	}
}

func TestRenderGaugeOverrideFallsBackForWrongType(t *testing.T) {
	m := snapshot.Mapping{{Key: "Overall", Value: "not a number"}}
	out := Render("CPU Stats", m)

	if strings.Contains(out, "█") {
		t.Errorf("gauge rendered for non-numeric value:\n%s", out)
	}
	if !strings.Contains(out, "not a number") {
		t.Errorf("scalar fallback missing:\n%s", out)
	}
}

func TestRenderPartitionTree(t *testing.T) {
	m := snapshot.Mapping{
		{Key: "Disk Partitions", Value: snapshot.List{
			snapshot.Mapping{
				{Key: "Device", Value: "/dev/sda1"},
				{Key: "Mountpoint", Value: "/"},
				{Key: "FSType", Value: "ext4"},
				{Key: "Opts", Value: "rw,relatime"},
			},
		}},
	}
	out := Render("Disk Stats", m)

	if !strings.Contains(out, "/dev/sda1") {
		t.Errorf("branch label missing:\n%s", out)
	}
	for _, leaf := range []string{"Mountpoint: /", "FSType: ext4", "Opts: rw,relatime"} {
		if !strings.Contains(out, leaf) {
			t.Errorf("leaf %q missing:\n%s", leaf, out)
		}
	}
}

func TestRenderInterfaceTree(t *testing.T) {
	m := snapshot.Mapping{
		{Key: "Network Interfaces", Value: snapshot.Mapping{
			{Key: "eth0", Value: snapshot.List{
				snapshot.Mapping{
					{Key: "Family", Value: "AF_INET"},
					{Key: "Address", Value: "10.0.0.2"},
					{Key: "Netmask", Value: "255.255.255.0"},
				},
			}},
		}},
	}
	out := Render("Network Stats", m)

	if !strings.Contains(out, "eth0") {
		t.Errorf("interface branch missing:\n%s", out)
	}
	if !strings.Contains(out, "Address: 10.0.0.2") {
		t.Errorf("address leaf missing:\n%s", out)
	}
}

func TestRenderEmptyList(t *testing.T) {
	m := snapshot.Mapping{{Key: "Fans", Value: snapshot.List{}}}
	out := Render("Sensor Stats", m)

	if !strings.Contains(out, "No data available.") {
		t.Errorf("empty list placeholder missing:\n%s", out)
	}
}

func TestRenderListTableHeadersFromFirstEntry(t *testing.T) {
	m := snapshot.Mapping{
		{Key: "Details", Value: snapshot.List{
			snapshot.Mapping{
				{Key: "PID", Value: 1},
				{Key: "Name", Value: "init"},
			},
			snapshot.Mapping{
				{Key: "PID", Value: 2},
				{Key: "Extra", Value: "ignored"},
			},
		}},
	}
	out := Render("Other Stats", m)

	if !strings.Contains(out, "Pid") || !strings.Contains(out, "Name") {
		t.Errorf("headers missing:\n%s", out)
	}
	if strings.Contains(out, "Extra") || strings.Contains(out, "ignored") {
		t.Errorf("keys outside the first entry leaked into the table:\n%s", out)
	}
	if !strings.Contains(out, "init") {
		t.Errorf("row value missing:\n%s", out)
	}
}

func TestRenderMixedListSummary(t *testing.T) {
	long := strings.Repeat("x", 200)
	m := snapshot.Mapping{{Key: "Junk", Value: snapshot.List{1, long}}}
	out := Render("Other Stats", m)

	if !strings.Contains(out, "List: ") {
		t.Errorf("mixed list summary missing:\n%s", out)
	}
	if strings.Contains(out, long) {
		t.Errorf("summary not truncated:\n%s", out)
	}
}

func TestRenderMixedListTruncatesOnRuneBoundary(t *testing.T) {
	long := strings.Repeat("日", 120)
	m := snapshot.Mapping{{Key: "Junk", Value: snapshot.List{1, long}}}
	out := Render("Other Stats", m)

	if !utf8.ValidString(out) {
		t.Errorf("summary contains invalid UTF-8:\n%s", out)
	}
	if !strings.Contains(out, "日") {
		t.Errorf("truncated text missing:\n%s", out)
	}
}

func TestRenderStringList(t *testing.T) {
	m := snapshot.Mapping{{Key: "Messages", Value: snapshot.List{"one", "two"}}}
	out := Render("Other Stats", m)

	if !strings.Contains(out, "one") || !strings.Contains(out, "two") {
		t.Errorf("string rows missing:\n%s", out)
	}
}

func TestRenderTopLevelScalarDoesNotPanic(t *testing.T) {
	out := Render("error", "Error gathering system stats: boom")
	if !strings.Contains(out, "boom") {
		t.Errorf("scalar payload missing:\n%s", out)
	}
}

func TestRenderTitleInPanel(t *testing.T) {
	out := Render("Memory Stats", snapshot.Mapping{{Key: "Percent", Value: 40.0}})
	if !strings.Contains(out, "Memory Stats") {
		t.Errorf("panel title missing:\n%s", out)
	}
}
