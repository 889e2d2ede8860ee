package lottery

// Team is a single league team taking part in the draft
type Team struct {
	ID         int      `json:"id" yaml:"id"`
	Name       string   `json:"name" yaml:"name"`
	Percentage *float64 `json:"percentage,omitempty" yaml:"percentage,omitempty"` // only meaningful for lottery teams
	IsLottery  bool     `json:"isLottery" yaml:"isLottery"`
}

// Weight returns the team's selection weight, treating a missing or negative percentage as zero
func (t Team) Weight() float64 {
	if t.Percentage == nil || *t.Percentage < 0 {
		return 0
	}
	return *t.Percentage
}

// DraftConfig describes the teams taking part in a lottery run
type DraftConfig struct {
	TotalTeams   int    `json:"totalTeams" yaml:"totalTeams"`
	LotteryTeams int    `json:"lotteryTeams" yaml:"lotteryTeams"`
	Teams        []Team `json:"teams" yaml:"teams"`
}

// DraftResult is the outcome of a single lottery run
type DraftResult struct {
	Order     []Team `json:"order"`
	Timestamp string `json:"timestamp"`
}

// LotteryPicks returns the drawn part of the order
func (r DraftResult) LotteryPicks(lotteryTeams int) []Team {
	if lotteryTeams < 0 {
		lotteryTeams = 0
	}
	if lotteryTeams > len(r.Order) {
		lotteryTeams = len(r.Order)
	}
	return r.Order[:lotteryTeams]
}

// PlayoffPicks returns the fixed part of the order
func (r DraftResult) PlayoffPicks(lotteryTeams int) []Team {
	if lotteryTeams < 0 {
		lotteryTeams = 0
	}
	if lotteryTeams > len(r.Order) {
		return nil
	}
	return r.Order[lotteryTeams:]
}

// Float returns a pointer to v, handy for building teams with percentages
func Float(v float64) *float64 {
	return &v
}

// splitTeams partitions teams into lottery and playoff teams, preserving order
func splitTeams(teams []Team) (lottery, playoff []Team) {
	for _, team := range teams {
		if team.IsLottery {
			lottery = append(lottery, team)
		} else {
			playoff = append(playoff, team)
		}
	}
	return lottery, playoff
}
