package mcp

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/tabi/pkg/app"
	"tableflip.dev/tabi/pkg/weather"
)

// Transport selects the mechanism used to expose the MCP server.
type Transport string

const (
	// TransportStdio serves MCP over stdio, as launched by a local client.
	TransportStdio Transport = "stdio"
	// TransportHTTP serves MCP via the streamable HTTP transport.
	TransportHTTP Transport = "http"
)

const (
	defaultAddr = "127.0.0.1:8080"
	defaultPath = "/mcp"
)

// Runner serves the trip store over MCP. While it runs, saves made by the
// CLI or the UI are picked up from the store's watch.
type Runner struct {
	Store   *app.Store
	Weather weather.Provider
	Name    string
	Version string

	Transport Transport
	Addr      string
	Path      string

	// Listening is called with the endpoint URL once the HTTP listener is up.
	Listening func(url string)
}

// ParseTransport accepts "stdio" or "http"; empty is stdio.
func ParseTransport(v string) (Transport, error) {
	switch t := Transport(strings.ToLower(strings.TrimSpace(v))); t {
	case "", TransportStdio:
		return TransportStdio, nil
	case TransportHTTP:
		return TransportHTTP, nil
	default:
		return "", fmt.Errorf("unsupported transport %q (expected stdio or http)", v)
	}
}

// Do executes the runner until ctx ends or the transport closes.
func (r Runner) Do(ctx context.Context) error {
	if r.Store == nil {
		return errors.New("mcp runner requires a trip store")
	}
	name := r.Name
	if name == "" {
		name = "tabi"
	}
	version := r.Version
	if version == "" {
		version = "dev"
	}

	srv := server.NewMCPServer(
		fmt.Sprintf("%s MCP", name),
		version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithInstructions("Read and edit a travel itinerary: days, items, shopping list, expenses and weather."),
		server.WithResourceRecovery(),
		server.WithRecovery(),
	)

	svc := NewService(r.Store, r.Weather)
	registerResources(srv, svc)
	registerTools(srv, svc)

	r.followStore(ctx)

	switch r.Transport {
	case "", TransportStdio:
		return server.ServeStdio(srv)
	case TransportHTTP:
		return r.serveHTTP(ctx, srv)
	default:
		return fmt.Errorf("unknown MCP transport %q", r.Transport)
	}
}

// followStore reloads the trip whenever another process saves it.
func (r Runner) followStore(ctx context.Context) {
	events, err := r.Store.Watch(ctx)
	if err != nil || events == nil {
		return
	}
	go func() {
		for range events {
			r.Store.Reload(ctx)
		}
	}()
}

func (r Runner) serveHTTP(ctx context.Context, srv *server.MCPServer) error {
	path := endpointPath(r.Path)
	mux := http.NewServeMux()
	mux.Handle(path, server.NewStreamableHTTPServer(srv))
	httpSrv := &http.Server{Handler: mux}

	addr := r.Addr
	if addr == "" {
		addr = defaultAddr
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	if r.Listening != nil {
		r.Listening(endpointURL(ln.Addr(), path))
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	if err := httpSrv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func endpointPath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return defaultPath
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

// endpointURL names a reachable host for wildcard listeners.
func endpointURL(a net.Addr, path string) string {
	tcp, ok := a.(*net.TCPAddr)
	if !ok {
		return "http://" + a.String() + path
	}
	host := "127.0.0.1"
	if tcp.IP != nil && !tcp.IP.IsUnspecified() {
		host = tcp.IP.String()
	}
	return fmt.Sprintf("http://%s%s", net.JoinHostPort(host, fmt.Sprint(tcp.Port)), path)
}
