// Package mcptools exposes formula parsing, molar mass, and amount conversion
// as MCP tools.
package mcptools

import (
	"context"
	"io"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/zephyrtronium/formula"
)

const (
	// ServerName is the MCP server name
	ServerName = "molar"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
)

// Server wraps the MCP server with the mass table its tools use.
type Server struct {
	mcp   *server.MCPServer
	table formula.Table
	opts  []formula.ParseOption
}

// NewServer creates a server whose tools look up masses in table.
func NewServer(table formula.Table, opts ...formula.ParseOption) *Server {
	s := &Server{
		mcp:   server.NewMCPServer(ServerName, ServerVersion),
		table: table,
		opts:  opts,
	}
	s.registerTools()
	return s
}

// Serve serves the tools on stdio. It blocks until the client disconnects or
// ctx is canceled.
func (s *Server) Serve(ctx context.Context) error {
	return s.serve(ctx, os.Stdin, os.Stdout)
}

func (s *Server) serve(ctx context.Context, in io.Reader, out io.Writer) error {
	return server.NewStdioServer(s.mcp).Listen(ctx, in, out)
}

func (s *Server) registerTools() {
	s.mcp.AddTool(parseFormulaTool(), s.handleParseFormula)
	s.mcp.AddTool(molarMassTool(), s.handleMolarMass)
	s.mcp.AddTool(convertTool(), s.handleConvert)
}
