package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sam-maryland/draft-lottery-server/internal/config"
	"github.com/sam-maryland/draft-lottery-server/internal/export"
	"github.com/sam-maryland/draft-lottery-server/internal/lottery"
)

func newDrawCmd(logger *logrus.Logger) *cobra.Command {
	var (
		cfgFile string
		seed    int64
		format  string
	)

	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Validate a configuration and draw the draft order",
		RunE: func(cmd *cobra.Command, args []string) error {
			draft, err := config.LoadDraftConfig(cfgFile)
			if err != nil {
				return err
			}

			generator := lottery.NewGenerator(nil)
			if cmd.Flags().Changed("seed") {
				generator = lottery.NewSeededGenerator(uint64(seed))
			}

			result, err := generator.Draw(draft)
			if err != nil {
				var valErr *lottery.ValidationError
				if errors.As(err, &valErr) {
					for _, msg := range valErr.Errors {
						cmd.PrintErrln(" -", msg)
					}
				}
				return err
			}

			logger.WithFields(logrus.Fields{
				"teams":      len(result.Order),
				"first_pick": result.Order[0].Name,
			}).Debug("Draft lottery completed")

			var out string
			switch format {
			case "json":
				data, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal result: %w", err)
				}
				out = string(data)
			default:
				out, err = export.Render(result, export.Format(format))
				if err != nil {
					return err
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&cfgFile, "config", "c", "", "draft configuration file (.json, .yaml)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for a reproducible draw")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, csv or json")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}
