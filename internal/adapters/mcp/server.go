// Package mcp exposes Sortviz over the Model Context Protocol, so AI
// agents can request sort traces as a tool.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/sortviz/sortviz/pkg/domain"
)

// Engine defines the interface required by the MCP server.
type Engine interface {
	Sort(ctx context.Context, arr []int) (domain.Trace, error)
}

// Server wraps the Sortviz engine and exposes it as an MCP Server.
type Server struct {
	engine    Engine
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine Engine, version string) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("sortviz-mcp", version),
	}
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	tool := mcp.NewTool("sort_trace",
		mcp.WithDescription("Bubble sort an array of integers and return the full step trace (compare/swap/pass_complete) for visualization."),
		mcp.WithArray("array",
			mcp.Required(),
			mcp.Description("The integers to sort."),
		),
	)

	s.mcpServer.AddTool(tool, s.handleSortTrace)
}

func (s *Server) handleSortTrace(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, ok := req.GetArguments()["array"].([]any)
	if !ok {
		return mcp.NewToolResultError("argument 'array' must be a JSON array"), nil
	}

	arr, err := domain.ParseElements(raw)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid array: %v", err)), nil
	}

	trace, err := s.engine.Sort(ctx, arr)
	if err != nil {
		return nil, fmt.Errorf("sort failed: %w", err)
	}

	sorted := trace.Final()
	if sorted == nil {
		// Inputs with fewer than two elements produce an empty trace.
		sorted = domain.Snapshot(arr)
	}

	payload, err := json.Marshal(map[string]any{
		"steps":  trace,
		"sorted": sorted,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal trace: %w", err)
	}

	return mcp.NewToolResultText(string(payload)), nil
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}
