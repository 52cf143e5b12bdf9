package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"path/filepath"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/docsift/pii-extractor/internal/config"
	"github.com/docsift/pii-extractor/internal/extract"
	"github.com/docsift/pii-extractor/internal/fields"
	"github.com/docsift/pii-extractor/internal/pdf"
	"github.com/docsift/pii-extractor/internal/report"
)

// Server represents the MCP server instance
type Server struct {
	config     *config.Config
	registry   *fields.Registry
	aggregator *extract.Aggregator
	validator  *pdf.Validator
	search     *pdf.Search
	mcpServer  *server.MCPServer
}

// NewServer creates a new MCP server instance
func NewServer(
	cfg *config.Config,
	registry *fields.Registry,
	aggregator *extract.Aggregator,
	validator *pdf.Validator,
	search *pdf.Search,
) (*Server, error) {
	if registry == nil {
		return nil, fmt.Errorf("registry cannot be nil")
	}
	if aggregator == nil {
		return nil, fmt.Errorf("aggregator cannot be nil")
	}
	if validator == nil {
		return nil, fmt.Errorf("validator cannot be nil")
	}
	if search == nil {
		return nil, fmt.Errorf("search cannot be nil")
	}

	// Create MCP server
	mcpServer := server.NewMCPServer(
		cfg.ServerName,
		cfg.Version,
		server.WithToolCapabilities(false), // We don't support dynamic tool capabilities
	)

	s := &Server{
		config:     cfg,
		registry:   registry,
		aggregator: aggregator,
		validator:  validator,
		search:     search,
		mcpServer:  mcpServer,
	}

	// Register tools
	s.registerTools()

	return s, nil
}

// registerTools registers all available MCP tools
func (s *Server) registerTools() {
	// Register single-file extraction tool
	extractFileTool := mcp.NewTool(
		"pii_extract_file",
		mcp.WithDescription("Extract and validate a PII field from a single PDF file"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file"),
		),
		mcp.WithString("field",
			mcp.Required(),
			mcp.Description("Field identifier to extract (see pii_list_fields)"),
		),
		mcp.WithString("search_term",
			mcp.Description("Literal term to locate (required for custom_search)"),
		),
	)
	s.mcpServer.AddTool(extractFileTool, s.handleExtractFile)

	// Register batch extraction tool
	extractBatchTool := mcp.NewTool(
		"pii_extract_batch",
		mcp.WithDescription("Extract and validate a PII field from every PDF in a directory"),
		mcp.WithString("directory",
			mcp.Description("Directory to scan for PDFs (uses default if empty)"),
		),
		mcp.WithString("field",
			mcp.Required(),
			mcp.Description("Field identifier to extract (see pii_list_fields)"),
		),
		mcp.WithString("search_term",
			mcp.Description("Literal term to locate (required for custom_search)"),
		),
	)
	s.mcpServer.AddTool(extractBatchTool, s.handleExtractBatch)

	// Register field listing tool
	listFieldsTool := mcp.NewTool(
		"pii_list_fields",
		mcp.WithDescription("List the supported PII field identifiers and how each is detected"),
	)
	s.mcpServer.AddTool(listFieldsTool, s.handleListFields)

	// Register cumulative summary tool
	summaryTool := mcp.NewTool(
		"pii_summary",
		mcp.WithDescription("Report cumulative extraction counts and success rate across all processed files"),
		mcp.WithBoolean("reset",
			mcp.Description("Clear accumulated results after reporting"),
		),
	)
	s.mcpServer.AddTool(summaryTool, s.handleSummary)

	// Register results export tool
	exportTool := mcp.NewTool(
		"pii_export_results",
		mcp.WithDescription("Export accumulated extraction results to a CSV or JSON file"),
		mcp.WithString("output",
			mcp.Required(),
			mcp.Description("Path of the file to write"),
		),
		mcp.WithString("format",
			mcp.Description("Export format: csv or json (default csv)"),
		),
	)
	s.mcpServer.AddTool(exportTool, s.handleExportResults)

	// Register PDF validate file tool
	validateFileTool := mcp.NewTool(
		"pdf_validate_file",
		mcp.WithDescription("Validate if a file is a readable PDF"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file"),
		),
	)
	s.mcpServer.AddTool(validateFileTool, s.handleValidateFile)
}

// Handler functions
func (s *Server) handleExtractFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	fieldID, err := request.RequireString("field")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args := request.GetArguments()
	searchTerm := ""
	if t, ok := args["search_term"].(string); ok {
		searchTerm = t
	}

	docs := []extract.Document{{Name: filepath.Base(path), Path: path}}
	result, err := s.aggregator.ProcessBatch(docs, fieldID, searchTerm)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return s.batchResultText(result)
}

func (s *Server) handleExtractBatch(ctx context.Context, request mcp.CallToolRequest) (
	*mcp.CallToolResult, error,
) {
	fieldID, err := request.RequireString("field")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args := request.GetArguments()

	directory := s.config.DocumentDirectory // default
	if dir, ok := args["directory"].(string); ok && dir != "" {
		directory = dir
	}

	searchTerm := ""
	if t, ok := args["search_term"].(string); ok {
		searchTerm = t
	}

	found, err := s.search.SearchDirectory(directory)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if found.TotalCount == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No PDF files found in directory: %s", found.Directory)), nil
	}

	docs := make([]extract.Document, 0, len(found.Files))
	for _, f := range found.Files {
		docs = append(docs, extract.Document{Name: f.Name, Path: f.Path})
	}

	result, err := s.aggregator.ProcessBatch(docs, fieldID, searchTerm)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return s.batchResultText(result)
}

func (s *Server) handleListFields(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := "Supported PII fields:\n"
	for _, id := range s.registry.IDs() {
		def, err := s.registry.Lookup(id)
		if err != nil {
			continue
		}
		text += fmt.Sprintf("• %s (%s)\n", def.ID, def.Strategy)
	}
	text += "\nUse pii_extract_file or pii_extract_batch with one of these identifiers."
	text += "\nThe custom_search field additionally requires a search_term argument."

	return mcp.NewToolResultText(text), nil
}

func (s *Server) handleSummary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	reset := false
	if r, ok := args["reset"].(bool); ok {
		reset = r
	}

	summary := s.aggregator.Store().Summary()
	text := s.formatSummary(summary)

	if reset {
		s.aggregator.Store().Clear()
		text += "\nAccumulated results cleared."
	}

	return mcp.NewToolResultText(text), nil
}

func (s *Server) handleExportResults(ctx context.Context, request mcp.CallToolRequest) (
	*mcp.CallToolResult, error,
) {
	output, err := request.RequireString("output")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args := request.GetArguments()
	format := "csv"
	if f, ok := args["format"].(string); ok && f != "" {
		format = f
	}

	exporter, err := report.ExporterFor(format)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	rep := report.New(s.aggregator.Store())
	if err := exporter.Export(rep, output); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	responseText := fmt.Sprintf("Exported %d result(s) to %s (%s)", len(rep.Records), output, format)
	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleValidateFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.validator.ValidateFile(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var responseText string
	if result.Valid {
		responseText = fmt.Sprintf("PDF file %s is valid and readable", result.Path)
	} else {
		responseText = fmt.Sprintf("PDF validation failed for %s: %s", result.Path, result.Message)
	}

	return mcp.NewToolResultText(responseText), nil
}

// Formatting methods
func (s *Server) batchResultText(result *extract.BatchResult) (*mcp.CallToolResult, error) {
	payload, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}

	text := fmt.Sprintf("Batch %s: %d record(s) from %d file(s)",
		result.BatchID, len(result.Records), len(result.Processed))
	if len(result.Errors) > 0 {
		text += fmt.Sprintf(", %d file(s) failed", len(result.Errors))
	}
	text += "\n\n" + string(payload)

	return mcp.NewToolResultText(text), nil
}

func (s *Server) formatSummary(summary extract.Summary) string {
	text := "Extraction Summary\n"
	text += fmt.Sprintf("Total extractions: %d\n", summary.Total)
	text += fmt.Sprintf("Valid: %d\n", summary.Valid)
	text += fmt.Sprintf("Invalid: %d\n", summary.Invalid)
	text += fmt.Sprintf("Success rate: %.2f%%\n", summary.SuccessRate)

	if len(summary.Files) > 0 {
		text += "\nPer-file counts:\n"
		for name, counts := range summary.Files {
			text += fmt.Sprintf("  %s: %d total, %d valid, %d invalid\n",
				name, counts.Total, counts.Valid, counts.Invalid)
		}
	}

	return text
}

// Run starts the MCP server in the configured mode
func (s *Server) Run(ctx context.Context) error {
	if s.config.IsServerMode() {
		return s.runServerMode(ctx)
	}
	return s.runStdioMode(ctx)
}

// runStdioMode runs the server in stdio mode
func (s *Server) runStdioMode(_ context.Context) error {
	if s.config.IsDebug() {
		log.Printf("Starting PII extraction MCP server in stdio mode")
		log.Printf("Document directory: %s", s.config.DocumentDirectory)
	}

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve stdio: %w", err)
	}
	return nil
}

// runServerMode runs the server in HTTP server mode
func (s *Server) runServerMode(ctx context.Context) error {
	// The mark3labs transport only serves stdio today.
	log.Printf("Server mode not yet implemented with mark3labs/mcp-go")
	log.Printf("Falling back to stdio mode")
	return s.runStdioMode(ctx)
}
