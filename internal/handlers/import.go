package handlers

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sam-maryland/draft-lottery-server/internal/config"
	"github.com/sam-maryland/draft-lottery-server/internal/sleeper"
	"github.com/sirupsen/logrus"
)

// ImportSleeperTeamsTool returns the MCP tool definition for import_sleeper_teams
func (h *LotteryHandler) ImportSleeperTeamsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "import_sleeper_teams",
		Description: "Build a draft configuration from the team names in a Sleeper league",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"league_id": map[string]interface{}{
					"type":        "string",
					"description": "The Sleeper league ID",
					"required":    true,
				},
				"lottery_teams": map[string]interface{}{
					"type":        "integer",
					"description": "Number of teams in the lottery (default: league settings, then non-playoff teams)",
					"required":    false,
				},
			},
		},
	}
}

// HandleImportSleeperTeams handles the import_sleeper_teams tool call
func (h *LotteryHandler) HandleImportSleeperTeams(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
	h.logger.WithField("args", args).Info("Handling import_sleeper_teams")

	leagueID, ok := args["league_id"].(string)
	if !ok || leagueID == "" {
		return nil, fmt.Errorf("league_id is required and must be a string")
	}

	lotteryTeams, _, err := intArg(args, "lottery_teams")
	if err != nil {
		return nil, err
	}

	settings, configured := h.config.Leagues[leagueID]
	if lotteryTeams <= 0 && configured {
		lotteryTeams = settings.LotteryTeams
	}

	apiCalls := 1
	if lotteryTeams <= 0 {
		apiCalls++
	}

	draft, err := sleeper.ImportTeams(h.client, leagueID, lotteryTeams)
	if err != nil {
		h.logger.WithError(err).WithField("league_id", leagueID).Error("Failed to import league teams")
		return textResult(fmt.Sprintf("Failed to import teams: %s", err.Error()), true), nil
	}

	if configured {
		config.ApplyOdds(&draft, settings.Odds)
	}

	h.logger.WithFields(logrus.Fields{
		"league_id":     leagueID,
		"total_teams":   draft.TotalTeams,
		"lottery_teams": draft.LotteryTeams,
	}).Info("Imported league teams")

	summary := fmt.Sprintf("Imported %d teams from league %s, %d in the lottery", draft.TotalTeams, leagueID, draft.LotteryTeams)
	return jsonResult(draft, summary, "sleeper_api", leagueID, apiCalls)
}
