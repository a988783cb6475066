package tlsprobe

import (
	nmap "github.com/lair-framework/go-nmap"
)

// BuildTargets turns every open, ssl-tunnelled port in an nmap run into a
// probe target. Hosts are addressed by their first address; the first
// hostname, when nmap resolved one, is used as the server name.
func BuildTargets(run *nmap.NmapRun) []Target {
	targets := []Target{}

	for _, host := range run.Hosts {
		if len(host.Addresses) == 0 {
			continue
		}

		address := host.Addresses[0].Addr

		var hostname string
		if len(host.Hostnames) > 0 {
			hostname = host.Hostnames[0].Name
		}

		for _, port := range host.Ports {
			if port.Service.Tunnel != "ssl" {
				continue
			}

			if port.State.State != "" && port.State.State != "open" {
				continue
			}

			name := address
			if hostname != "" {
				name = hostname
			}

			targets = append(targets, Target{
				Name: name,
				Endpoint: Endpoint{
					Host:       address,
					Port:       port.PortId,
					ServerName: hostname,
				},
			})
		}
	}

	return targets
}
