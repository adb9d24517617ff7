package httpapi

import "net"

// InterfaceSignal implements secondary.NetworkSignal by inspecting the
// device's network interfaces: any up, non-loopback interface with an
// address counts as online. This is the coarse check that gates the HTTP
// probe, equivalent to a platform online flag.
type InterfaceSignal struct{}

// Online reports whether any usable interface is up.
func (InterfaceSignal) Online() bool {
	ifaces, err := net.Interfaces()
	if err != nil {
		return false
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil || len(addrs) == 0 {
			continue
		}
		return true
	}
	return false
}
