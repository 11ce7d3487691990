package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/screenpilot/screenpilot-cli/internal/automate"
	"github.com/screenpilot/screenpilot-cli/internal/classify"
	"github.com/screenpilot/screenpilot-cli/internal/motion"
	"github.com/screenpilot/screenpilot-cli/internal/observability"
)

var servePageFile string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose the snapshot query and interaction request as MCP tools over stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadPage(servePageFile)
		if err != nil {
			return err
		}
		engine := automate.New(doc, cfg, observability.GetLogger(), nil)
		engine.Snapshot()

		s := mcpserver.NewMCPServer("screenpilot", Version)
		registerTools(s, engine)
		return mcpserver.ServeStdio(s)
	},
}

func registerTools(s *mcpserver.MCPServer, engine *automate.Engine) {
	s.AddTool(
		mcp.NewTool("snapshot",
			mcp.WithDescription("Rebuild the semantic snapshot of the current interface and return the flat item sequence as JSON."),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			out, err := json.Marshal(engine.Snapshot().Items)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return mcp.NewToolResultText(string(out)), nil
		},
	)

	s.AddTool(
		mcp.NewTool("interact",
			mcp.WithDescription("Perform one interaction against the interface: resolve the target item, animate the pointer to it, dispatch the effect and refresh the snapshot."),
			mcp.WithString("kind", mcp.Required(), mcp.Description("Interaction kind: click, right-click, double-click, type-text, drag, hover, focus, scroll, select-option, wait")),
			mcp.WithNumber("target", mcp.Description("Snapshot item id to act on (omit for wait)")),
			mcp.WithString("text", mcp.Description("Text to type, for type-text")),
			mcp.WithNumber("durationMs", mcp.Description("Pause duration in milliseconds, for hover and wait")),
			mcp.WithNumber("scrollTop", mcp.Description("New scroll top, for scroll")),
			mcp.WithNumber("scrollLeft", mcp.Description("New scroll left, for scroll")),
			mcp.WithString("value", mcp.Description("Option value to choose, for select-option")),
			mcp.WithNumber("dropTarget", mcp.Description("Item id to drop onto, for drag")),
			mcp.WithNumber("dropX", mcp.Description("Drop x coordinate, for drag without a drop target")),
			mcp.WithNumber("dropY", mcp.Description("Drop y coordinate, for drag without a drop target")),
		),
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			req, err := requestFromParams(request.GetArguments())
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			if err := engine.Perform(ctx, req); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return mcp.NewToolResultText(fmt.Sprintf("ok: %s", req.Kind)), nil
		},
	)
}

func requestFromParams(params map[string]any) (automate.Request, error) {
	kind, _ := params["kind"].(string)
	if kind == "" {
		return automate.Request{}, fmt.Errorf("interact: kind is required")
	}
	req := automate.Request{
		Kind:       classify.Interaction(kind),
		Text:       stringParam(params, "text"),
		Duration:   time.Duration(floatParam(params, "durationMs")) * time.Millisecond,
		ScrollTop:  floatParam(params, "scrollTop"),
		ScrollLeft: floatParam(params, "scrollLeft"),
		Value:      stringParam(params, "value"),
	}
	if id, ok := intParam(params, "target"); ok {
		req.TargetID = &id
	}
	if id, ok := intParam(params, "dropTarget"); ok {
		req.DropTargetID = &id
	} else if _, hasX := params["dropX"]; hasX {
		req.DropTo = &motion.Vector2D{
			X: floatParam(params, "dropX"),
			Y: floatParam(params, "dropY"),
		}
	}
	return req, nil
}

func stringParam(params map[string]any, key string) string {
	v, _ := params[key].(string)
	return v
}

func floatParam(params map[string]any, key string) float64 {
	v, _ := params[key].(float64)
	return v
}

func intParam(params map[string]any, key string) (int, bool) {
	v, ok := params[key].(float64)
	if !ok {
		return 0, false
	}
	return int(v), true
}

func init() {
	serveCmd.Flags().StringVar(&servePageFile, "page", "", "YAML page definition (default: built-in storefront)")
	rootCmd.AddCommand(serveCmd)
}
