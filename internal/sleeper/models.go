package sleeper

import "time"

// League represents a Sleeper fantasy league
type League struct {
	LeagueID     string         `json:"league_id"`
	Name         string         `json:"name"`
	Status       string         `json:"status"`
	Sport        string         `json:"sport"`
	Season       string         `json:"season"`
	Settings     LeagueSettings `json:"settings"`
	TotalRosters int            `json:"total_rosters"`
	DraftID      string         `json:"draft_id"`
}

// LeagueSettings contains the league configuration relevant to draft order
type LeagueSettings struct {
	PlayoffTeams int `json:"playoff_teams"`
	NumTeams     int `json:"num_teams"`
	DraftRounds  int `json:"draft_rounds"`
}

// LotteryTeams returns the number of non-playoff teams, or 0 when the league
// settings don't say
func (s LeagueSettings) LotteryTeams() int {
	if s.NumTeams <= 0 || s.PlayoffTeams <= 0 || s.PlayoffTeams >= s.NumTeams {
		return 0
	}
	return s.NumTeams - s.PlayoffTeams
}

// User represents a Sleeper user as returned by the league users endpoint
type User struct {
	UserID      string       `json:"user_id"`
	Username    string       `json:"username"`
	DisplayName string       `json:"display_name"`
	Avatar      string       `json:"avatar"`
	Metadata    UserMetadata `json:"metadata"`
}

// UserMetadata holds per-league user settings
type UserMetadata struct {
	TeamName string `json:"team_name"`
}

// APIResponse represents the standard response format for our tools
type APIResponse struct {
	Success  bool        `json:"success"`
	Data     interface{} `json:"data,omitempty"`
	Summary  string      `json:"summary"`
	Error    string      `json:"error,omitempty"`
	Metadata Metadata    `json:"metadata"`
}

// Metadata contains response metadata
type Metadata struct {
	Timestamp    time.Time `json:"timestamp"`
	Source       string    `json:"source"`
	APICallsUsed int       `json:"api_calls_used"`
	LeagueID     string    `json:"league_id,omitempty"`
}

// SleeperError represents an error from the Sleeper API
type SleeperError struct {
	Type       string `json:"type"`
	Message    string `json:"message"`
	StatusCode int    `json:"status_code,omitempty"`
	LeagueID   string `json:"league_id,omitempty"`
}

func (e *SleeperError) Error() string {
	return e.Message
}
