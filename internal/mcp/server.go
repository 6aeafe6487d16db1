// ABOUTME: MCP server setup for the fitness warehouse.
// ABOUTME: Wraps the MCP server with a Store and the athlete profile.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/peteebot/pete/internal/storage"
)

// Server wraps the MCP server with warehouse access.
type Server struct {
	mcpServer *mcp.Server
	store     storage.Store
	chronoAge int
}

// NewServer creates a new MCP server over the given store. chronoAge
// anchors body-age derivations requested through the server.
func NewServer(store storage.Store, chronoAge int) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "pete",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		store:     store,
		chronoAge: chronoAge,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
