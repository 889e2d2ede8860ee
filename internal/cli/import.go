package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sam-maryland/draft-lottery-server/internal/config"
	"github.com/sam-maryland/draft-lottery-server/internal/sleeper"
)

// sleeperBaseURL is swapped out by tests
var sleeperBaseURL = sleeper.BaseURL

func newImportCmd(logger *logrus.Logger) *cobra.Command {
	var (
		leagueID     string
		lotteryTeams int
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Build a draft configuration from a Sleeper league",
		Long:  "Fetches the league's users and prints a YAML draft configuration that can be edited and passed to draw.",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := sleeper.NewHTTPClientWithBaseURL(sleeperBaseURL, logger)

			draft, err := sleeper.ImportTeams(client, leagueID, lotteryTeams)
			if err != nil {
				return err
			}

			logger.WithFields(logrus.Fields{
				"league_id":   leagueID,
				"total_teams": draft.TotalTeams,
			}).Debug("Imported league teams")

			out, err := config.MarshalDraftConfig(draft)
			if err != nil {
				return fmt.Errorf("failed to encode config: %w", err)
			}

			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVar(&leagueID, "league-id", "", "Sleeper league ID")
	cmd.Flags().IntVar(&lotteryTeams, "lottery-teams", 0, "number of lottery teams (default: non-playoff teams from league settings)")
	_ = cmd.MarkFlagRequired("league-id")
	return cmd
}
