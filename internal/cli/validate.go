package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sam-maryland/draft-lottery-server/internal/config"
	"github.com/sam-maryland/draft-lottery-server/internal/lottery"
)

func newValidateCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a draft configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			draft, err := config.LoadDraftConfig(cfgFile)
			if err != nil {
				return err
			}

			result := lottery.Validate(draft)
			if !result.IsValid {
				for _, msg := range result.Errors {
					cmd.PrintErrln(" -", msg)
				}
				return fmt.Errorf("configuration has %d problem(s)", len(result.Errors))
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Configuration is valid")
			return nil
		},
	}

	cmd.Flags().StringVarP(&cfgFile, "config", "c", "", "draft configuration file (.json, .yaml)")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}
