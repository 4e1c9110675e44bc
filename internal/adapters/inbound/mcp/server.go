package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewServer creates an MCP server with all cemlint tools and resources
// registered. The projectPath is the directory holding package.json and the
// manifest.
func NewServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"cemlint",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath)
	registerResources(s, projectPath)

	return s
}
