package server

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"paletteai/internal/palette"
	"paletteai/pkg/logging"
)

const generatePaletteTool = "generate_palette"

// newMCPServer exposes the generation service as a single MCP tool.
func newMCPServer(svc *Service, version string) *mcpserver.MCPServer {
	s := mcpserver.NewMCPServer(
		"paletteai",
		version,
		mcpserver.WithToolCapabilities(true),
	)

	tool := mcp.NewTool(generatePaletteTool,
		mcp.WithDescription("Generate an 8-color brand palette with names, color psychology and a font suggestion"),
		mcp.WithString("businessType",
			mcp.Required(),
			mcp.Description("Kind of business, e.g. "+strings.Join(palette.BusinessTypes, ", ")),
		),
		mcp.WithString("industry",
			mcp.Required(),
			mcp.Description("Industry, e.g. "+strings.Join(palette.Industries, ", ")),
		),
		mcp.WithString("audience",
			mcp.Required(),
			mcp.Description("Target audience in a few words"),
		),
		mcp.WithString("designStyle",
			mcp.Required(),
			mcp.Description("Design style, e.g. "+strings.Join(palette.DesignStyles, ", ")),
		),
		mcp.WithString("colorPref",
			mcp.Description("Optional color preference: Warm, Cool or Neutral"),
		),
		mcp.WithString("usage",
			mcp.Description("Comma-separated usages, e.g. Website, Logo"),
		),
	)
	s.AddTool(tool, mcpGenerateHandler(svc))
	return s
}

func mcpGenerateHandler(svc *Service) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var form palette.FormInput
		required := []struct {
			name string
			dst  *string
		}{
			{"businessType", &form.BusinessType},
			{"industry", &form.Industry},
			{"audience", &form.Audience},
			{"designStyle", &form.DesignStyle},
		}
		for _, f := range required {
			v, err := request.RequireString(f.name)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("%s parameter is required", f.name)), nil
			}
			*f.dst = v
		}

		args := request.GetArguments()
		if v, ok := args["colorPref"].(string); ok {
			form.ColorPref = v
		}
		form.Usage = parseUsage(args["usage"])

		p, err := svc.Generate(ctx, form)
		if err != nil {
			logging.Warn("MCP", "generate_palette failed: %v", err)
			return mcp.NewToolResultError(fmt.Sprintf("Palette generation failed: %v", err)), nil
		}
		jsonData, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to format palette: %v", err)), nil
		}
		return mcp.NewToolResultText(string(jsonData)), nil
	}
}

// parseUsage accepts a comma-separated string or a JSON array.
func parseUsage(raw any) []string {
	var parts []string
	switch v := raw.(type) {
	case string:
		parts = strings.Split(v, ",")
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				parts = append(parts, s)
			}
		}
	}
	usage := []string{}
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			usage = append(usage, p)
		}
	}
	return usage
}
