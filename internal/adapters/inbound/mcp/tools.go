package mcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/goccy/go-json"
	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/cemlint/cemlint/internal/adapters/outbound/config"
	"github.com/cemlint/cemlint/internal/adapters/outbound/descriptor"
	"github.com/cemlint/cemlint/internal/adapters/outbound/logsink"
	"github.com/cemlint/cemlint/internal/adapters/outbound/manifest"
	"github.com/cemlint/cemlint/internal/application"
	"github.com/cemlint/cemlint/internal/domain"
)

// registerTools registers all cemlint MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	s.AddTool(
		mcplib.NewTool("cemlint_validate",
			mcplib.WithDescription("Validate the project's custom elements manifest and package.json. Returns the report as JSON, or an error listing blocking findings"),
			mcplib.WithString("manifest",
				mcplib.Description("Manifest path relative to the project (default custom-elements.json)"),
			),
			mcplib.WithString("package",
				mcplib.Description("package.json path relative to the project (default ./package.json)"),
			),
			mcplib.WithBoolean("log_errors",
				mcplib.Description("Report error findings without failing"),
			),
		),
		handleValidate(projectPath),
	)

	s.AddTool(
		mcplib.NewTool("cemlint_rules",
			mcplib.WithDescription("Returns every rule with its resolved severity as JSON"),
		),
		handleRules(projectPath),
	)
}

func handleValidate(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		opts, err := config.New().Load(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config failed: %v", err)), nil
		}

		args := request.GetArguments()
		if pkg, ok := args["package"].(string); ok && pkg != "" {
			opts.PackageDescriptorPath = pkg
		}
		if logErrors, ok := args["log_errors"].(bool); ok {
			opts.LogErrors = logErrors
		}
		// stdout carries the protocol.
		opts.Debug = false

		manifestPath := opts.CEMFileName
		if manifestPath == "" {
			manifestPath = domain.DefaultCEMFileName
		}
		if m, ok := args["manifest"].(string); ok && m != "" {
			manifestPath = m
		}
		if !filepath.IsAbs(manifestPath) {
			manifestPath = filepath.Join(projectPath, manifestPath)
		}

		var cem *domain.Manifest
		if !opts.Skip {
			cem, err = manifest.New().Load(manifestPath)
			if err != nil {
				return errorResult(err.Error()), nil
			}
		}

		svc := application.NewValidateService(descriptor.New(projectPath), logsink.Factory(io.Discard))
		report, err := svc.Validate(cem, opts)
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return errorResult(verr.Error()), nil
		}
		if err != nil {
			return errorResult(fmt.Sprintf("validate failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleRules(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		rules, err := resolvedRules(projectPath)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(rules)
	}
}

func resolvedRules(projectPath string) (domain.RuleConfig, error) {
	opts, err := config.New().Load(projectPath)
	if err != nil {
		return domain.RuleConfig{}, fmt.Errorf("loading config failed: %w", err)
	}
	rules, err := domain.ResolveRules(opts.Rules)
	if err != nil {
		return domain.RuleConfig{}, fmt.Errorf("resolving rules failed: %w", err)
	}
	return rules, nil
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
