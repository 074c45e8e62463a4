// Package scanner sweeps a local subnet with ARP requests and reports
// the hosts that answered.
package scanner

import (
	"fmt"
	"net"
	"net/netip"
	"time"

	"github.com/mdlayher/arp"

	"sysdash/internal/snapshot"
)

// sweepTimeout bounds how long the sweep waits for replies after the
// requests go out. Hosts that have not answered by then are simply
// absent from the result.
const sweepTimeout = 2 * time.Second

// Scan probes every address in the given CIDR subnet and returns one
// {ip, mac} mapping per responding host. Any failure, from a malformed
// subnet to a missing interface, degrades to a single-entry list
// carrying the error text; Scan never returns an error.
func Scan(subnet string) snapshot.List {
	results, err := sweep(subnet)
	if err != nil {
		return snapshot.List{fmt.Sprintf("Network scan failed: %v", err)}
	}
	return results
}

// sweep sends a request to every host up front, then collects replies
// until the deadline. The deadline bounds waiting, not coverage: every
// address is asked regardless of subnet size.
func sweep(subnet string) (snapshot.List, error) {
	prefix, err := netip.ParsePrefix(subnet)
	if err != nil {
		return nil, err
	}

	ifi, err := interfaceFor(prefix)
	if err != nil {
		return nil, err
	}

	client, err := arp.Dial(ifi)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	if err := client.SetDeadline(time.Now().Add(sweepTimeout)); err != nil {
		return nil, err
	}

	for _, addr := range hostsInPrefix(prefix) {
		// A single send failure does not abort the sweep.
		if err := client.Request(addr); err != nil {
			continue
		}
	}

	results := snapshot.List{}
	seen := make(map[netip.Addr]bool)
	for {
		pkt, _, err := client.Read()
		if err != nil {
			// Deadline reached (or the socket died); either way the
			// collected replies stand.
			break
		}
		results = recordReply(results, seen, prefix, pkt)
	}
	return results, nil
}

// recordReply appends one {ip, mac} entry for a reply from inside the
// swept prefix, ignoring duplicates and unrelated traffic on the wire.
func recordReply(results snapshot.List, seen map[netip.Addr]bool, prefix netip.Prefix, pkt *arp.Packet) snapshot.List {
	if pkt.Operation != arp.OperationReply {
		return results
	}
	ip := pkt.SenderIP
	if seen[ip] || !prefix.Contains(ip) {
		return results
	}
	seen[ip] = true
	return append(results, snapshot.Mapping{
		{Key: "ip", Value: ip.String()},
		{Key: "mac", Value: pkt.SenderHardwareAddr.String()},
	})
}

// interfaceFor finds the up, non-loopback interface holding an address
// inside the prefix.
func interfaceFor(prefix netip.Prefix) (*net.Interface, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}
	for i := range ifaces {
		ifi := &ifaces[i]
		if ifi.Flags&net.FlagUp == 0 || ifi.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := ifi.Addrs()
		if err != nil {
			continue
		}
		for _, a := range addrs {
			ipNet, ok := a.(*net.IPNet)
			if !ok {
				continue
			}
			ip, ok := netip.AddrFromSlice(ipNet.IP)
			if !ok {
				continue
			}
			if prefix.Contains(ip.Unmap()) {
				return ifi, nil
			}
		}
	}
	return nil, fmt.Errorf("no interface with an address in %s", prefix)
}

// hostsInPrefix enumerates the usable host addresses of an IPv4 prefix,
// skipping the network and broadcast addresses for prefixes shorter
// than /31.
func hostsInPrefix(prefix netip.Prefix) []netip.Addr {
	prefix = prefix.Masked()
	var hosts []netip.Addr
	skipEdges := prefix.Addr().Is4() && prefix.Bits() < 31

	first := prefix.Addr()
	last := lastAddr(prefix)
	for addr := first; prefix.Contains(addr); addr = addr.Next() {
		if skipEdges && (addr == first || addr == last) {
			continue
		}
		hosts = append(hosts, addr)
	}
	return hosts
}

func lastAddr(prefix netip.Prefix) netip.Addr {
	addr := prefix.Addr()
	for next := addr.Next(); prefix.Contains(next); next = next.Next() {
		addr = next
	}
	return addr
}
