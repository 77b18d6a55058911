// Package mcp exposes the Polish engine as an MCP server.
package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/polish"
	"github.com/aretw0/polish/internal/presentation/treeview"
	"github.com/aretw0/polish/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"
)

// AnalyzeResponse aligns with the HTTP adapter payload and gives MCP clients
// a structured result.
type AnalyzeResponse struct {
	Expression string          `json:"expression" jsonschema_description:"The normalized expression"`
	Notation   domain.Notation `json:"notation" jsonschema_description:"Detected notation: infix, prefix or postfix"`
	Postfix    string          `json:"postfix" jsonschema_description:"Postfix (reverse Polish) rendering"`
	Prefix     string          `json:"prefix" jsonschema_description:"Prefix (Polish) rendering"`
	Infix      string          `json:"infix" jsonschema_description:"Fully parenthesized infix rendering"`
}

// analyzeArgs is the decoded argument set shared by both tools.
type analyzeArgs struct {
	Expression string `mapstructure:"expression"`
}

// Analyzer defines the engine interface the MCP server depends on.
type Analyzer interface {
	Analyze(raw string) (*domain.Analysis, error)
}

// Server wraps the Polish engine and exposes it as an MCP Server.
type Server struct {
	engine    Analyzer
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine Analyzer) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("polish-mcp", strings.TrimSpace(polish.Version)),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	// TOOL: analyze_expression
	analyzeTool := mcp.NewTool("analyze_expression",
		mcp.WithDescription("Analyze an arithmetic expression: detect its notation (infix, prefix, postfix) and render all three notations."),
		mcp.WithString("expression", mcp.Required(), mcp.Description("The expression to analyze, e.g. \"(a+b)*c\" or \"ab+c*\"")),
		mcp.WithOutputSchema[AnalyzeResponse](),
	)
	s.mcpServer.AddTool(analyzeTool, mcp.NewStructuredToolHandler(s.handleAnalyze))

	// TOOL: render_tree
	s.mcpServer.AddTool(mcp.NewTool("render_tree",
		mcp.WithDescription("Build the binary expression tree for an expression and return its ASCII diagram."),
		mcp.WithString("expression", mcp.Required(), mcp.Description("The expression to draw")),
	), s.handleRenderTree)
}

func (s *Server) handleAnalyze(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (AnalyzeResponse, error) {
	var in analyzeArgs
	if err := mapstructure.Decode(args, &in); err != nil {
		return AnalyzeResponse{}, fmt.Errorf("invalid arguments: %w", err)
	}

	res, err := s.engine.Analyze(in.Expression)
	if err != nil {
		return AnalyzeResponse{}, fmt.Errorf("analysis failed: %w", err)
	}

	return AnalyzeResponse{
		Expression: res.Expression,
		Notation:   res.Notation,
		Postfix:    res.Postfix,
		Prefix:     res.Prefix,
		Infix:      res.Infix,
	}, nil
}

func (s *Server) handleRenderTree(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in analyzeArgs
	if err := mapstructure.Decode(request.GetArguments(), &in); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}

	res, err := s.engine.Analyze(in.Expression)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	return mcp.NewToolResultText(treeview.Render(res.Root)), nil
}
