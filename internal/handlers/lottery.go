package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sam-maryland/draft-lottery-server/internal/config"
	"github.com/sam-maryland/draft-lottery-server/internal/export"
	"github.com/sam-maryland/draft-lottery-server/internal/lottery"
	"github.com/sam-maryland/draft-lottery-server/internal/sleeper"
	"github.com/sirupsen/logrus"
)

// DrawResponse is the payload returned by run_draft_lottery
type DrawResponse struct {
	Result       lottery.DraftResult `json:"result"`
	LotteryPicks []lottery.Team      `json:"lottery_picks"`
	PlayoffPicks []lottery.Team      `json:"playoff_picks"`
	Text         string              `json:"text"`
}

// ExportResponse is the payload returned by export_draft_result
type ExportResponse struct {
	Format   export.Format `json:"format"`
	Filename string        `json:"filename,omitempty"`
	Content  string        `json:"content"`
}

// LotteryHandler handles draft lottery MCP tools
type LotteryHandler struct {
	client    sleeper.Client
	logger    *logrus.Logger
	config    *config.LotteryConfig
	generator *lottery.Generator
}

// NewLotteryHandler creates a new lottery handler
func NewLotteryHandler(client sleeper.Client, logger *logrus.Logger) *LotteryHandler {
	lotteryConfig, err := config.LoadLotterySettings()
	if err != nil {
		logger.WithError(err).Warn("Failed to load lottery settings, using defaults")
		lotteryConfig = config.DefaultLotteryConfig()
	}

	return &LotteryHandler{
		client:    client,
		logger:    logger,
		config:    lotteryConfig,
		generator: lottery.NewGenerator(nil),
	}
}

var draftConfigSchema = map[string]interface{}{
	"type":        "object",
	"description": "Draft configuration: totalTeams, lotteryTeams and teams[] of {id, name, percentage, isLottery}",
	"required":    true,
}

// ValidateDraftConfigTool returns the MCP tool definition for validate_draft_config
func (h *LotteryHandler) ValidateDraftConfigTool() mcp.Tool {
	return mcp.Tool{
		Name:        "validate_draft_config",
		Description: "Check a draft lottery configuration and list every problem with it",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config": draftConfigSchema,
			},
		},
	}
}

// HandleValidateDraftConfig handles the validate_draft_config tool call
func (h *LotteryHandler) HandleValidateDraftConfig(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
	h.logger.WithField("args", args).Info("Handling validate_draft_config")

	var draft lottery.DraftConfig
	found, err := decodeArg(args, "config", &draft)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("config is required and must be an object")
	}

	result := lottery.Validate(draft)

	summary := "Configuration is valid"
	if !result.IsValid {
		summary = fmt.Sprintf("Configuration has %d problem(s): %s", len(result.Errors), strings.Join(result.Errors, "; "))
	}

	return jsonResult(result, summary, "draft_lottery", "", 0)
}

// RunDraftLotteryTool returns the MCP tool definition for run_draft_lottery
func (h *LotteryHandler) RunDraftLotteryTool() mcp.Tool {
	return mcp.Tool{
		Name:        "run_draft_lottery",
		Description: "Validate a configuration and draw the draft order. Lottery teams are drawn by weighted selection, playoff teams follow in their given order.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config": draftConfigSchema,
				"seed": map[string]interface{}{
					"type":        "integer",
					"description": "Optional seed for a reproducible draw",
					"required":    false,
				},
			},
		},
	}
}

// HandleRunDraftLottery handles the run_draft_lottery tool call
func (h *LotteryHandler) HandleRunDraftLottery(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
	h.logger.WithField("args", args).Info("Handling run_draft_lottery")

	var draft lottery.DraftConfig
	found, err := decodeArg(args, "config", &draft)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("config is required and must be an object")
	}

	seed, seeded, err := intArg(args, "seed")
	if err != nil {
		return nil, err
	}

	generator := h.generator
	if seeded {
		generator = lottery.NewSeededGenerator(uint64(seed))
	}

	result, err := generator.Draw(draft)
	if err != nil {
		var valErr *lottery.ValidationError
		var genErr *lottery.GenerationError
		switch {
		case errors.As(err, &valErr):
			h.logger.WithField("errors", valErr.Errors).Warn("Rejected draft configuration")
			return textResult(fmt.Sprintf("Invalid configuration:\n%s", strings.Join(valErr.Errors, "\n")), true), nil
		case errors.As(err, &genErr):
			h.logger.WithError(err).WithField("pick", genErr.Pick).Error("Draft lottery failed")
			return textResult(fmt.Sprintf("Cannot run lottery: %s", genErr.Message), true), nil
		default:
			return nil, err
		}
	}

	h.logger.WithFields(logrus.Fields{
		"teams":        len(result.Order),
		"first_pick":   result.Order[0].Name,
		"lottery_size": draft.LotteryTeams,
	}).Info("Draft lottery completed")

	response := DrawResponse{
		Result:       result,
		LotteryPicks: result.LotteryPicks(draft.LotteryTeams),
		PlayoffPicks: result.PlayoffPicks(draft.LotteryTeams),
		Text:         export.Text(result),
	}

	summary := fmt.Sprintf("Draft order drawn for %d teams, %s has the first pick", len(result.Order), result.Order[0].Name)
	return jsonResult(response, summary, "draft_lottery", "", 0)
}

// DefaultDraftConfigTool returns the MCP tool definition for default_draft_config
func (h *LotteryHandler) DefaultDraftConfigTool() mcp.Tool {
	return mcp.Tool{
		Name:        "default_draft_config",
		Description: "Build a starting configuration with placeholder team names and equal lottery odds",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"total_teams": map[string]interface{}{
					"type":        "integer",
					"description": "Number of teams in the league (default from settings)",
					"required":    false,
				},
				"lottery_teams": map[string]interface{}{
					"type":        "integer",
					"description": "Number of teams in the lottery (default from settings)",
					"required":    false,
				},
			},
		},
	}
}

// HandleDefaultDraftConfig handles the default_draft_config tool call
func (h *LotteryHandler) HandleDefaultDraftConfig(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
	h.logger.WithField("args", args).Info("Handling default_draft_config")

	settings := h.config.DefaultSettings

	totalTeams, ok, err := intArg(args, "total_teams")
	if err != nil {
		return nil, err
	}
	if !ok {
		totalTeams = settings.TotalTeams
	}

	lotteryTeams, ok, err := intArg(args, "lottery_teams")
	if err != nil {
		return nil, err
	}
	if !ok {
		lotteryTeams = settings.LotteryTeams
	}

	if totalTeams < 2 || totalTeams > 32 {
		return nil, fmt.Errorf("total_teams must be between 2 and 32")
	}
	if lotteryTeams < 1 || lotteryTeams >= totalTeams {
		return nil, fmt.Errorf("lottery_teams must be between 1 and %d", totalTeams-1)
	}

	draft := lottery.DefaultConfig(totalTeams, lotteryTeams, settings.Percentage)
	config.ApplyOdds(&draft, settings.Odds)

	summary := fmt.Sprintf("Default configuration with %d teams, %d in the lottery", totalTeams, lotteryTeams)
	return jsonResult(draft, summary, "draft_lottery", "", 0)
}

// ExportDraftResultTool returns the MCP tool definition for export_draft_result
func (h *LotteryHandler) ExportDraftResultTool() mcp.Tool {
	return mcp.Tool{
		Name:        "export_draft_result",
		Description: "Render a draft result as plain text or CSV",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"result": map[string]interface{}{
					"type":        "object",
					"description": "Draft result as returned by run_draft_lottery: order[] and timestamp",
					"required":    true,
				},
				"format": map[string]interface{}{
					"type":        "string",
					"description": "Output format: 'text' or 'csv' (default: text)",
					"required":    false,
				},
			},
		},
	}
}

// HandleExportDraftResult handles the export_draft_result tool call
func (h *LotteryHandler) HandleExportDraftResult(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
	h.logger.WithField("args", args).Info("Handling export_draft_result")

	var result lottery.DraftResult
	found, err := decodeArg(args, "result", &result)
	if err != nil {
		return nil, err
	}
	if !found || len(result.Order) == 0 {
		return nil, fmt.Errorf("result is required and must contain an order")
	}

	format := export.FormatText
	if raw, ok := args["format"]; ok && raw != nil {
		f, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("format must be a string")
		}
		if f != "" {
			format = export.Format(strings.ToLower(f))
		}
	}

	content, err := export.Render(result, format)
	if err != nil {
		h.logger.WithError(err).Error("Failed to export draft result")
		return textResult(fmt.Sprintf("Failed to export draft result: %s", err.Error()), true), nil
	}

	response := ExportResponse{
		Format:  format,
		Content: content,
	}
	if format == export.FormatCSV {
		response.Filename = export.Filename(h.resultTime(result))
	}

	return jsonResult(response, fmt.Sprintf("Exported %d picks as %s", len(result.Order), format), "draft_lottery", "", 0)
}

// resultTime is when the result was drawn, falling back to now
func (h *LotteryHandler) resultTime(result lottery.DraftResult) time.Time {
	t, err := time.Parse(lottery.TimestampFormat, result.Timestamp)
	if err != nil {
		return time.Now()
	}
	return t
}
