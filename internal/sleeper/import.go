package sleeper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sam-maryland/draft-lottery-server/internal/lottery"
)

var (
	ErrMissingLeagueID = errors.New("sleeper league id is required")
	ErrNoTeams         = errors.New("no teams found in this league, check the league id")
)

// TeamName builds the display name for an imported team. Users that never set
// a team name for the league are skipped.
func TeamName(user User) (string, bool) {
	if user.Metadata.TeamName == "" {
		return "", false
	}
	return fmt.Sprintf("%s - %s", user.Metadata.TeamName, user.DisplayName), true
}

// ImportTeams builds a draft configuration from a Sleeper league's users.
// The first lotteryTeams users become lottery teams with equal percentages;
// when lotteryTeams is not positive it is taken from the league's playoff
// settings.
func ImportTeams(client Client, leagueID string, lotteryTeams int) (lottery.DraftConfig, error) {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return lottery.DraftConfig{}, ErrMissingLeagueID
	}

	users, err := client.GetLeagueUsers(leagueID)
	if err != nil {
		return lottery.DraftConfig{}, fmt.Errorf("failed to fetch league data: %w", err)
	}

	var teamNames []string
	for _, user := range users {
		if name, ok := TeamName(user); ok {
			teamNames = append(teamNames, name)
		}
	}

	if len(teamNames) == 0 {
		return lottery.DraftConfig{}, ErrNoTeams
	}

	if lotteryTeams <= 0 {
		league, err := client.GetLeague(leagueID)
		if err != nil {
			return lottery.DraftConfig{}, fmt.Errorf("failed to determine lottery teams: %w", err)
		}
		lotteryTeams = league.Settings.LotteryTeams()
		if lotteryTeams <= 0 {
			return lottery.DraftConfig{}, fmt.Errorf("league %s has no playoff settings, lottery teams must be given", leagueID)
		}
	}

	drawn := min(lotteryTeams, len(teamNames))
	percentage := float64(100 / drawn)

	teams := make([]lottery.Team, 0, len(teamNames))
	for i := 0; i < drawn; i++ {
		teams = append(teams, lottery.Team{
			ID:         i + 1,
			Name:       teamNames[i],
			Percentage: lottery.Float(percentage),
			IsLottery:  true,
		})
	}
	for i := lotteryTeams; i < len(teamNames); i++ {
		teams = append(teams, lottery.Team{
			ID:   i + 1,
			Name: teamNames[i],
		})
	}

	return lottery.DraftConfig{
		TotalTeams:   len(teamNames),
		LotteryTeams: lotteryTeams,
		Teams:        teams,
	}, nil
}
