package lottery

import "fmt"

// DefaultPercentage is the lottery weight given to each team in a fresh setup
const DefaultPercentage = 12

// DefaultConfig builds a configuration with placeholder team names. The first
// lotteryTeams teams are lottery teams with the given percentage. Negative
// counts are treated as zero.
func DefaultConfig(totalTeams, lotteryTeams int, percentage float64) DraftConfig {
	totalTeams = max(totalTeams, 0)
	lotteryTeams = max(lotteryTeams, 0)
	teams := make([]Team, 0, totalTeams)
	for i := 0; i < totalTeams; i++ {
		team := Team{
			ID:   i + 1,
			Name: fmt.Sprintf("Team %d", i+1),
		}
		if i < lotteryTeams {
			team.IsLottery = true
			team.Percentage = Float(percentage)
		}
		teams = append(teams, team)
	}

	return DraftConfig{
		TotalTeams:   totalTeams,
		LotteryTeams: lotteryTeams,
		Teams:        teams,
	}
}
