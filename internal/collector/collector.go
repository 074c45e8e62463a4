package collector

import (
	"fmt"
	stdnet "net"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/net"
	"github.com/shirou/gopsutil/v4/process"
	"github.com/shirou/gopsutil/v4/sensors"

	"sysdash/internal/snapshot"
)

// Categories lists the snapshot categories in collection (and display) order.
func Categories() []string {
	return []string{
		"CPU Stats",
		"Memory Stats",
		"Disk Stats",
		"Network Stats",
		"Sensor Stats",
		"GPU Stats",
		"CPU Info",
		"Other Stats",
	}
}

// Collect gathers one point-in-time snapshot. Each category gatherer is
// independently guarded: a failing probe degrades that category to "N/A"
// or an empty structure instead of aborting the run. A panic escaping the
// guards collapses the whole snapshot to {"error": message}. done, if
// non-nil, is called after each category completes.
func Collect(done func(category string)) (snap snapshot.Snapshot) {
	defer func() {
		if r := recover(); r != nil {
			snap = snapshot.ErrorSnapshot(fmt.Sprintf("Error gathering system stats: %v", r))
		}
	}()

	gatherers := []struct {
		name   string
		gather func() snapshot.Value
	}{
		{"CPU Stats", gatherCPUStats},
		{"Memory Stats", gatherMemoryStats},
		{"Disk Stats", gatherDiskStats},
		{"Network Stats", gatherNetworkStats},
		{"Sensor Stats", gatherSensorStats},
		{"GPU Stats", gatherGPUStats},
		{"CPU Info", gatherCPUInfo},
		{"Other Stats", gatherOtherStats},
	}

	snap = make(snapshot.Snapshot, 0, len(gatherers))
	for _, g := range gatherers {
		snap.Set(g.name, g.gather())
		if done != nil {
			done(g.name)
		}
	}
	return snap
}

func gatherCPUStats() snapshot.Value {
	stats := snapshot.Mapping{}

	// Overall usage takes a 1-second blocking sample; the per-CPU read
	// reuses the interval established by it.
	usage := snapshot.Mapping{}
	if overall, err := cpu.Percent(time.Second, false); err == nil && len(overall) > 0 {
		usage.Set("Overall", overall[0])
	} else {
		usage.Set("Overall", snapshot.NA)
	}
	if per, err := cpu.Percent(0, true); err == nil {
		perList := make(snapshot.List, len(per))
		for i, p := range per {
			perList[i] = p
		}
		usage.Set("Per CPU", perList)
	} else {
		usage.Set("Per CPU", snapshot.List{})
	}
	stats.Set("CPU Usage", usage)

	if times, err := cpu.Times(false); err == nil && len(times) > 0 {
		stats.Set("CPU Times", snapshot.Mapping{
			{Key: "User", Value: times[0].User},
			{Key: "System", Value: times[0].System},
			{Key: "Idle", Value: times[0].Idle},
		})
	} else {
		stats.Set("CPU Times", snapshot.NA)
	}

	freq := snapshot.Mapping{
		{Key: "Current", Value: snapshot.Value(snapshot.NA)},
		{Key: "Min", Value: snapshot.Value(snapshot.NA)},
		{Key: "Max", Value: snapshot.Value(snapshot.NA)},
	}
	if info, err := cpu.Info(); err == nil && len(info) > 0 && info[0].Mhz > 0 {
		freq.Set("Current", info[0].Mhz)
	}
	stats.Set("CPU Frequency", freq)

	counts := snapshot.Mapping{}
	if physical, err := cpu.Counts(false); err == nil {
		counts.Set("Physical", int64(physical))
	} else {
		counts.Set("Physical", snapshot.NA)
	}
	if logical, err := cpu.Counts(true); err == nil {
		counts.Set("Logical", int64(logical))
	} else {
		counts.Set("Logical", snapshot.NA)
	}
	stats.Set("CPU Counts", counts)

	if avg, err := load.Avg(); err == nil {
		stats.Set("CPU Load Average", snapshot.Mapping{
			{Key: "1 min", Value: avg.Load1},
			{Key: "5 min", Value: avg.Load5},
			{Key: "15 min", Value: avg.Load15},
		})
	} else {
		stats.Set("CPU Load Average", snapshot.NA)
	}

	return stats
}

func gatherMemoryStats() snapshot.Value {
	stats := snapshot.Mapping{}

	if vm, err := mem.VirtualMemory(); err == nil {
		stats.Set("Virtual Memory", snapshot.Mapping{
			{Key: "Total", Value: vm.Total},
			{Key: "Available", Value: vm.Available},
			{Key: "Used", Value: vm.Used},
			{Key: "Free", Value: vm.Free},
			{Key: "Percent", Value: vm.UsedPercent},
			{Key: "Active", Value: vm.Active},
			{Key: "Inactive", Value: vm.Inactive},
			{Key: "Buffers", Value: vm.Buffers},
			{Key: "Cached", Value: vm.Cached},
		})
	} else {
		stats.Set("Virtual Memory", snapshot.NA)
	}

	if swap, err := mem.SwapMemory(); err == nil {
		stats.Set("Swap Memory", snapshot.Mapping{
			{Key: "Total", Value: swap.Total},
			{Key: "Used", Value: swap.Used},
			{Key: "Free", Value: swap.Free},
			{Key: "Percent", Value: swap.UsedPercent},
			{Key: "Sin", Value: swap.Sin},
			{Key: "Sout", Value: swap.Sout},
		})
	} else {
		stats.Set("Swap Memory", snapshot.NA)
	}

	return stats
}

func gatherDiskStats() snapshot.Value {
	stats := snapshot.Mapping{}

	if usage, err := disk.Usage("/"); err == nil {
		stats.Set("Disk Usage", snapshot.Mapping{
			{Key: "Total", Value: usage.Total},
			{Key: "Used", Value: usage.Used},
			{Key: "Free", Value: usage.Free},
			{Key: "Percent", Value: usage.UsedPercent},
		})
	} else {
		stats.Set("Disk Usage", snapshot.NA)
	}

	// Aggregate counters across devices, matching a whole-system view.
	if counters, err := disk.IOCounters(); err == nil && len(counters) > 0 {
		var readCount, writeCount, readBytes, writeBytes, readTime, writeTime uint64
		for _, c := range counters {
			readCount += c.ReadCount
			writeCount += c.WriteCount
			readBytes += c.ReadBytes
			writeBytes += c.WriteBytes
			readTime += c.ReadTime
			writeTime += c.WriteTime
		}
		stats.Set("Disk IO", snapshot.Mapping{
			{Key: "Read Count", Value: readCount},
			{Key: "Write Count", Value: writeCount},
			{Key: "Read Bytes", Value: readBytes},
			{Key: "Write Bytes", Value: writeBytes},
			{Key: "Read Time", Value: readTime},
			{Key: "Write Time", Value: writeTime},
		})
	} else {
		stats.Set("Disk IO", snapshot.NA)
	}

	partitions := snapshot.List{}
	if parts, err := disk.Partitions(false); err == nil {
		for _, p := range parts {
			partitions = append(partitions, snapshot.Mapping{
				{Key: "Device", Value: p.Device},
				{Key: "Mountpoint", Value: p.Mountpoint},
				{Key: "FSType", Value: p.Fstype},
				{Key: "Opts", Value: strings.Join(p.Opts, ",")},
			})
		}
	}
	stats.Set("Disk Partitions", partitions)

	return stats
}

func gatherNetworkStats() snapshot.Value {
	stats := snapshot.Mapping{}

	ioStats := snapshot.Mapping{}
	if counters, err := net.IOCounters(true); err == nil {
		for _, c := range counters {
			ioStats.Set(c.Name, snapshot.Mapping{
				{Key: "Bytes Sent", Value: c.BytesSent},
				{Key: "Bytes Received", Value: c.BytesRecv},
				{Key: "Packets Sent", Value: c.PacketsSent},
				{Key: "Packets Received", Value: c.PacketsRecv},
				{Key: "Errors In", Value: c.Errin},
				{Key: "Errors Out", Value: c.Errout},
				{Key: "Drop In", Value: c.Dropin},
				{Key: "Drop Out", Value: c.Dropout},
			})
		}
	}
	stats.Set("Network IO", ioStats)

	ifaces := snapshot.Mapping{}
	if list, err := net.Interfaces(); err == nil {
		for _, iface := range list {
			addrs := snapshot.List{}
			for _, addr := range iface.Addrs {
				addrs = append(addrs, addressRecord(addr.Addr))
			}
			ifaces.Set(iface.Name, addrs)
		}
	}
	stats.Set("Network Interfaces", ifaces)

	conns := snapshot.List{}
	if list, err := net.Connections("inet"); err == nil {
		for _, c := range list {
			remote := snapshot.Value(snapshot.NA)
			if c.Raddr.IP != "" {
				remote = fmt.Sprintf("%s:%d", c.Raddr.IP, c.Raddr.Port)
			}
			conns = append(conns, snapshot.Mapping{
				{Key: "FD", Value: int64(c.Fd)},
				{Key: "Family", Value: familyName(c.Family)},
				{Key: "Type", Value: socketTypeName(c.Type)},
				{Key: "Local Address", Value: fmt.Sprintf("%s:%d", c.Laddr.IP, c.Laddr.Port)},
				{Key: "Remote Address", Value: remote},
				{Key: "Status", Value: c.Status},
				{Key: "PID", Value: int64(c.Pid)},
			})
		}
	}
	stats.Set("Network Connections", conns)

	return stats
}

func gatherSensorStats() snapshot.Value {
	stats := snapshot.Mapping{}

	if temps, err := sensors.SensorsTemperatures(); err == nil && len(temps) > 0 {
		grouped := snapshot.Mapping{}
		for _, t := range temps {
			readings, _ := grouped.Get(t.SensorKey)
			list, _ := readings.(snapshot.List)
			grouped.Set(t.SensorKey, append(list, t.Temperature))
		}
		stats.Set("temperatures", grouped)
	} else {
		stats.Set("temperatures", snapshot.NA)
	}

	// gopsutil has no fan support; keep the slot so the category shape
	// is stable across hosts.
	stats.Set("fans", snapshot.NA)

	return stats
}

func gatherOtherStats() snapshot.Value {
	stats := snapshot.Mapping{}

	details := snapshot.List{}
	procs, err := process.Processes()
	if err == nil {
		for _, p := range procs {
			name, err := p.Name()
			if err != nil {
				name = snapshot.NA
			}
			username, err := p.Username()
			if err != nil {
				username = snapshot.NA
			}
			status := snapshot.NA
			if st, err := p.Status(); err == nil && len(st) > 0 {
				status = st[0]
			}
			details = append(details, snapshot.Mapping{
				{Key: "PID", Value: int64(p.Pid)},
				{Key: "Name", Value: name},
				{Key: "Username", Value: username},
				{Key: "Status", Value: status},
			})
		}
	}
	stats.Set("Processes", snapshot.Mapping{
		{Key: "Total", Value: int64(len(details))},
		{Key: "Details", Value: details},
	})

	stats.Set("Battery", gatherBattery())

	// Stored as float64 so the display falls through to the numeric
	// formatter rather than the large-integer byte rule.
	if boot, err := host.BootTime(); err == nil {
		stats.Set("Boot Time", float64(boot))
	} else {
		stats.Set("Boot Time", snapshot.NA)
	}

	users := snapshot.List{}
	if list, err := host.Users(); err == nil {
		for _, u := range list {
			users = append(users, snapshot.Mapping{
				{Key: "Name", Value: u.User},
				{Key: "Terminal", Value: u.Terminal},
				{Key: "Host", Value: u.Host},
				{Key: "Started", Value: int64(u.Started)},
				{Key: "PID", Value: snapshot.NA},
			})
		}
	}
	stats.Set("Users", users)

	return stats
}

func addressRecord(cidr string) snapshot.Mapping {
	family := "AF_INET"
	if strings.Contains(cidr, ":") {
		family = "AF_INET6"
	}
	address := cidr
	netmask := snapshot.Value(snapshot.NA)
	if ip, ipNet, err := stdnet.ParseCIDR(cidr); err == nil {
		address = ip.String()
		netmask = stdnet.IP(ipNet.Mask).String()
	}
	return snapshot.Mapping{
		{Key: "Family", Value: family},
		{Key: "Address", Value: address},
		{Key: "Netmask", Value: netmask},
	}
}

func familyName(family uint32) string {
	switch family {
	case 2:
		return "AF_INET"
	case 10, 30:
		return "AF_INET6"
	default:
		return fmt.Sprintf("AF_%d", family)
	}
}

func socketTypeName(socketType uint32) string {
	switch socketType {
	case 1:
		return "SOCK_STREAM"
	case 2:
		return "SOCK_DGRAM"
	default:
		return fmt.Sprintf("SOCK_%d", socketType)
	}
}
