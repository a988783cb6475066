package tlsprobe_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	nmap "github.com/lair-framework/go-nmap"

	"github.com/pivotal-cf/tlsprobe"
)

var _ = Describe("Nmap", func() {
	Describe("converting an nmap.NmapRun into probe targets", func() {
		It("keeps only open ssl-tunnelled ports", func() {
			run := &nmap.NmapRun{
				Hosts: []nmap.Host{
					{
						Addresses: []nmap.Address{
							{Addr: "10.0.0.1"},
							{Addr: "10.0.0.2"},
						},
						Hostnames: []nmap.Hostname{
							{Name: "api.example.com"},
						},
						Ports: []nmap.Port{
							{
								PortId:  443,
								State:   nmap.State{State: "open"},
								Service: nmap.Service{Tunnel: "ssl"},
							},
							{
								PortId: 80,
								State:  nmap.State{State: "open"},
							},
							{
								PortId:  8443,
								State:   nmap.State{State: "filtered"},
								Service: nmap.Service{Tunnel: "ssl"},
							},
						},
					},
					{
						Addresses: []nmap.Address{
							{Addr: "10.0.0.3"},
						},
						Ports: []nmap.Port{
							{
								PortId:  993,
								Service: nmap.Service{Tunnel: "ssl"},
							},
						},
					},
					{
						Ports: []nmap.Port{
							{
								PortId:  443,
								Service: nmap.Service{Tunnel: "ssl"},
							},
						},
					},
				},
			}

			targets := tlsprobe.BuildTargets(run)

			Expect(targets).To(Equal([]tlsprobe.Target{
				{
					Name: "api.example.com",
					Endpoint: tlsprobe.Endpoint{
						Host:       "10.0.0.1",
						Port:       443,
						ServerName: "api.example.com",
					},
				},
				{
					Name: "10.0.0.3",
					Endpoint: tlsprobe.Endpoint{
						Host: "10.0.0.3",
						Port: 993,
					},
				},
			}))
		})
	})
})
