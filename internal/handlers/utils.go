package handlers

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sam-maryland/draft-lottery-server/internal/sleeper"
)

// formatJSONResponse converts a response struct to a formatted JSON string
func formatJSONResponse(response interface{}) (string, error) {
	jsonBytes, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal response: %w", err)
	}

	return string(jsonBytes), nil
}

// decodeArg re-encodes a loosely typed tool argument into a concrete type
func decodeArg(args map[string]interface{}, key string, out interface{}) (bool, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return false, nil
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return true, fmt.Errorf("%s could not be encoded: %w", key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return true, fmt.Errorf("%s is malformed: %w", key, err)
	}
	return true, nil
}

// intArg reads an optional integer argument; JSON numbers arrive as float64
func intArg(args map[string]interface{}, key string) (int, bool, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return 0, false, nil
	}

	switch v := raw.(type) {
	case float64:
		if v != float64(int(v)) {
			return 0, true, fmt.Errorf("%s must be a whole number", key)
		}
		return int(v), true, nil
	case int:
		return v, true, nil
	case int64:
		return int(v), true, nil
	default:
		return 0, true, fmt.Errorf("%s must be a number", key)
	}
}

func textResult(text string, isError bool) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{
				Type: "text",
				Text: text,
			},
		},
		IsError: isError,
	}
}

// jsonResult wraps data in the standard response envelope
func jsonResult(data interface{}, summary, source, leagueID string, apiCalls int) (*mcp.CallToolResult, error) {
	response := sleeper.APIResponse{
		Success: true,
		Data:    data,
		Summary: summary,
		Metadata: sleeper.Metadata{
			Timestamp:    time.Now(),
			Source:       source,
			APICallsUsed: apiCalls,
			LeagueID:     leagueID,
		},
	}

	jsonResponse, err := formatJSONResponse(response)
	if err != nil {
		return nil, fmt.Errorf("failed to format response: %w", err)
	}

	return textResult(jsonResponse, false), nil
}
