// Package mcp implements a Model Context Protocol server exposing barrel
// generation as an MCP tool over stdio transport.
package mcp

import (
	"context"
	"fmt"
	"sort"
	"sync"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/componentry/barrelgen/pkg/version"
)

// serverName is the MCP server implementation name.
const serverName = "barrelgen"

// Server wraps the MCP SDK server with barrelgen tool registrations.
type Server struct {
	inner *mcpsdk.Server
	mu    sync.RWMutex
	tools []string
}

// NewServer creates a new MCP server with all barrelgen tools registered.
func NewServer() *Server {
	inner := mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    serverName,
			Version: version.Version,
		},
		nil,
	)

	srv := &Server{inner: inner}
	srv.registerTools()

	return srv
}

// ListToolNames returns the sorted names of all registered tools.
func (s *Server) ListToolNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, len(s.tools))
	copy(names, s.tools)
	sort.Strings(names)

	return names
}

// Run starts the MCP server on stdio transport. It blocks until the context
// is canceled or the connection closes.
func (s *Server) Run(ctx context.Context) error {
	err := s.inner.Run(ctx, &mcpsdk.StdioTransport{})
	if err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}

	return nil
}

// RunWithTransport starts the MCP server on the given transport. It blocks
// until the context is canceled or the connection closes.
func (s *Server) RunWithTransport(ctx context.Context, transport mcpsdk.Transport) error {
	err := s.inner.Run(ctx, transport)
	if err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}

	return nil
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.inner, &mcpsdk.Tool{
		Name:        ToolNameGenerate,
		Description: generateToolDescription,
	}, handleGenerate)

	s.trackTool(ToolNameGenerate)
}

func (s *Server) trackTool(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tools = append(s.tools, name)
}
