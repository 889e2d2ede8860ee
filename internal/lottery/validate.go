package lottery

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxTotalPercentage is the upper bound on the summed lottery percentages
const MaxTotalPercentage = 100

// ValidationResult lists every rule a configuration violates
type ValidationResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// ValidationError is returned by Draw when the configuration is rejected
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "invalid draft configuration: " + strings.Join(e.Errors, "; ")
}

// Validate checks a configuration before a draw is permitted. All violated
// rules are reported, not just the first one.
func Validate(config DraftConfig) ValidationResult {
	errs := []string{}

	if config.TotalTeams < 2 {
		errs = append(errs, "Must have at least 2 teams")
	}

	if config.LotteryTeams < 1 {
		errs = append(errs, "Must have at least 1 lottery team")
	}

	if config.LotteryTeams >= config.TotalTeams {
		errs = append(errs, "Lottery teams must be less than total teams")
	}

	lottery, playoff := splitTeams(config.Teams)

	if len(lottery) != config.LotteryTeams {
		errs = append(errs, fmt.Sprintf("Expected %d lottery teams, found %d", config.LotteryTeams, len(lottery)))
	}

	expectedPlayoff := config.TotalTeams - config.LotteryTeams
	if len(playoff) != expectedPlayoff {
		errs = append(errs, fmt.Sprintf("Expected %d playoff teams, found %d", expectedPlayoff, len(playoff)))
	}

	seen := make(map[string]struct{}, len(config.Teams))
	for _, team := range config.Teams {
		seen[strings.ToLower(team.Name)] = struct{}{}
	}
	if len(seen) != len(config.Teams) {
		errs = append(errs, "Team names must be unique")
	}

	total := 0.0
	negative := false
	for _, team := range lottery {
		if team.Percentage != nil {
			total += *team.Percentage
			negative = negative || *team.Percentage < 0
		}
	}
	if total > MaxTotalPercentage {
		errs = append(errs, fmt.Sprintf("Total lottery percentage (%s%%) cannot exceed 100%%", FormatPercentage(total)))
	}

	if negative {
		errs = append(errs, "Percentages cannot be negative")
	}

	return ValidationResult{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}

// FormatPercentage renders a percentage without trailing zeros (75, 12.5)
func FormatPercentage(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
