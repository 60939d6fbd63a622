package mcp

import (
	"net"
	"testing"
)

func TestParseTransport(t *testing.T) {
	tests := map[string]struct {
		in      string
		want    Transport
		wantErr bool
	}{
		"default": {in: "", want: TransportStdio},
		"stdio":   {in: "stdio", want: TransportStdio},
		"http":    {in: " HTTP ", want: TransportHTTP},
		"sse":     {in: "sse", wantErr: true},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseTransport(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil || got != tc.want {
				t.Fatalf("want %q, got %q (%v)", tc.want, got, err)
			}
		})
	}
}

func TestEndpointPath(t *testing.T) {
	for in, want := range map[string]string{"": "/mcp", "trip": "/trip", "/tabi": "/tabi"} {
		if got := endpointPath(in); got != want {
			t.Fatalf("endpointPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEndpointURL(t *testing.T) {
	tests := []struct {
		addr *net.TCPAddr
		want string
	}{
		{addr: &net.TCPAddr{IP: net.IPv4zero, Port: 8080}, want: "http://127.0.0.1:8080/mcp"},
		{addr: &net.TCPAddr{IP: net.ParseIP("192.168.1.5"), Port: 9000}, want: "http://192.168.1.5:9000/mcp"},
		{addr: &net.TCPAddr{IP: net.IPv6loopback, Port: 80}, want: "http://[::1]:80/mcp"},
	}
	for _, tc := range tests {
		if got := endpointURL(tc.addr, "/mcp"); got != tc.want {
			t.Fatalf("endpointURL(%v) = %q, want %q", tc.addr, got, tc.want)
		}
	}
}
