// Package export renders lottery results for sharing.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/sam-maryland/draft-lottery-server/internal/lottery"
)

// Format selects how a result is rendered
type Format string

const (
	FormatText Format = "text"
	FormatCSV  Format = "csv"
)

var csvHeader = []string{"Pick", "Team Name", "Type", "Percentage"}

// Text renders one "Pick #N: Name (P% chance)" line per team
func Text(result lottery.DraftResult) string {
	lines := make([]string, 0, len(result.Order))
	for i, team := range result.Order {
		line := fmt.Sprintf("Pick #%d: %s", i+1, team.Name)
		if team.Percentage != nil && *team.Percentage != 0 {
			line += fmt.Sprintf(" (%s%% chance)", lottery.FormatPercentage(*team.Percentage))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// WriteCSV writes the result as CSV with a header row
func WriteCSV(w io.Writer, result lottery.DraftResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for i, team := range result.Order {
		kind := "Playoff"
		if team.IsLottery {
			kind = "Lottery"
		}
		pct := ""
		if team.Percentage != nil && *team.Percentage != 0 {
			pct = lottery.FormatPercentage(*team.Percentage)
		}
		if err := cw.Write([]string{strconv.Itoa(i + 1), team.Name, kind, pct}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// CSV returns the result rendered by WriteCSV
func CSV(result lottery.DraftResult) (string, error) {
	var sb strings.Builder
	if err := WriteCSV(&sb, result); err != nil {
		return "", fmt.Errorf("failed to write csv: %w", err)
	}
	return sb.String(), nil
}

// Render dispatches on format
func Render(result lottery.DraftResult, format Format) (string, error) {
	switch format {
	case FormatText, "":
		return Text(result), nil
	case FormatCSV:
		return CSV(result)
	default:
		return "", fmt.Errorf("unsupported export format %q", format)
	}
}

// Filename is the suggested download name for a CSV export made at t
func Filename(t time.Time) string {
	return fmt.Sprintf("draft-lottery-%s.csv", t.Format("2006-01-02"))
}
