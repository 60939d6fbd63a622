package commands

import (
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/tabi/pkg/runner/mcp"
)

func addMCP(topLevel *cobra.Command) {
	var (
		transport string
		host      string
		port      int
		path      string
	)

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the trip over the Model Context Protocol",
		Long: `Serve the trip days, itinerary items, shopping list, expenses and forecasts
to an MCP client. Clients that launch tabi themselves use the default stdio
transport; --transport=http listens on the loopback interface instead.`,
		Example: `
tabi mcp
tabi mcp --transport http --port 0
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := mcp.ParseTransport(transport)
			if err != nil {
				return err
			}
			if port < 0 || port > 65535 {
				return fmt.Errorf("invalid port %d", port)
			}
			cmd.SilenceUsage = true

			ctx := contextFor(cmd)
			s, err := openStore(ctx)
			if err != nil {
				return err
			}
			r := mcp.Runner{
				Store:     s,
				Weather:   forecasts(),
				Name:      "tabi",
				Version:   version,
				Transport: t,
				Addr:      net.JoinHostPort(host, strconv.Itoa(port)),
				Path:      path,
				Listening: func(url string) {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on %s\n", url)
				},
			}
			return r.Do(ctx)
		},
	}

	cmd.Flags().StringVar(&transport, "transport", string(mcp.TransportStdio), "stdio or http")
	cmd.Flags().StringVar(&host, "host", "127.0.0.1", "interface for the http transport")
	cmd.Flags().IntVar(&port, "port", 8080, "port for the http transport, 0 picks a free one")
	cmd.Flags().StringVar(&path, "path", "/mcp", "endpoint path for the http transport")

	topLevel.AddCommand(cmd)
}
