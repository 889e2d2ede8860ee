package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sam-maryland/draft-lottery-server/internal/handlers"
	"github.com/sam-maryland/draft-lottery-server/internal/sleeper"
	"github.com/sirupsen/logrus"
)

// Tools lists every tool the server exposes
func Tools(lotteryHandler *handlers.LotteryHandler) []mcp.Tool {
	return []mcp.Tool{
		lotteryHandler.DefaultDraftConfigTool(),
		lotteryHandler.ImportSleeperTeamsTool(),
		lotteryHandler.ValidateDraftConfigTool(),
		lotteryHandler.RunDraftLotteryTool(),
		lotteryHandler.ExportDraftResultTool(),
	}
}

// CallTool routes a tool call to its handler
func CallTool(ctx context.Context, lotteryHandler *handlers.LotteryHandler, logger *logrus.Logger, name string, arguments map[string]interface{}) (*mcp.CallToolResult, error) {
	switch name {
	case "default_draft_config":
		return lotteryHandler.HandleDefaultDraftConfig(ctx, arguments)
	case "import_sleeper_teams":
		return lotteryHandler.HandleImportSleeperTeams(ctx, arguments)
	case "validate_draft_config":
		return lotteryHandler.HandleValidateDraftConfig(ctx, arguments)
	case "run_draft_lottery":
		return lotteryHandler.HandleRunDraftLottery(ctx, arguments)
	case "export_draft_result":
		return lotteryHandler.HandleExportDraftResult(ctx, arguments)
	default:
		logger.WithField("tool", name).Warn("Unknown tool called")
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				&mcp.TextContent{
					Type: "text",
					Text: "Unknown tool: " + name,
				},
			},
			IsError: true,
		}, nil
	}
}

func NewDraftLotteryMCPServer(logger *logrus.Logger) *server.DefaultServer {
	sleeperClient := sleeper.NewHTTPClient(logger)
	lotteryHandler := handlers.NewLotteryHandler(sleeperClient, logger)

	s := server.NewDefaultServer("Fantasy Draft Lottery", "1.0.0")

	if s == nil {
		logger.Error("Failed to create MCP server instance")
		return nil
	}

	logger.Info("MCP server instance created successfully")

	s.HandleListTools(func(ctx context.Context, cursor *string) (*mcp.ListToolsResult, error) {
		tools := Tools(lotteryHandler)

		logger.WithField("tools_count", len(tools)).Info("Listing available tools")

		return &mcp.ListToolsResult{
			Tools: tools,
		}, nil
	})

	s.HandleCallTool(func(ctx context.Context, name string, arguments map[string]interface{}) (*mcp.CallToolResult, error) {
		logger.WithFields(logrus.Fields{
			"tool": name,
			"args": arguments,
		}).Info("Tool called")

		return CallTool(ctx, lotteryHandler, logger, name, arguments)
	})

	logger.Info("All tools registered successfully")
	return s
}
