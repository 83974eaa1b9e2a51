package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/dbsmedya/csvaudit/internal/csvcheck"
	"github.com/dbsmedya/csvaudit/internal/dialect"
)

var sniffCmd = &cobra.Command{
	Use:   "sniff FILE",
	Short: "Show the inferred dialect and delimiter scores",
	Long: `Sniff runs only the dialect detection step and prints how every
candidate delimiter scored, which helps explain why a file was read the way
it was.

Example:
  csvaudit sniff orders.csv --min-consistency 0.8`,
	Args: cobra.ExactArgs(1),
	RunE: runSniff,
}

func init() {
	rootCmd.AddCommand(sniffCmd)
}

func runSniff(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	path := args[0]

	raw, err := csvcheck.ReadFile(path)
	if err != nil {
		return err
	}

	res, err := dialect.NewSniffer(cfg.Sniffer.Options()).Inspect(raw)
	if err != nil {
		return fmt.Errorf("failed to sniff %s: %w", path, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "File: %s\n", path)
	fmt.Fprintf(out, "Sampled lines: %d\n\n", res.SampledLines)
	writeScoreTable(out, res)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Dialect: %s\n", res.Dialect)
	fmt.Fprintf(out, "Has header: %t\n", res.HasHeader)
	return nil
}

// writeScoreTable prints one row per candidate delimiter. The chosen one is
// marked with an asterisk.
func writeScoreTable(w io.Writer, res *dialect.Result) {
	rows := [][]string{{"", "Delimiter", "Mode", "Consistency", "Qualified"}}
	for _, sc := range res.Scores {
		mark := ""
		if sc.Delimiter == res.Dialect.Delimiter {
			mark = "*"
		}
		qualified := "no"
		if sc.Qualified {
			qualified = "yes"
		}
		rows = append(rows, []string{
			mark,
			strconv.QuoteRune(sc.Delimiter),
			strconv.Itoa(sc.Mode),
			strconv.FormatFloat(sc.Consistency, 'f', 2, 64),
			qualified,
		})
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	for n, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = runewidth.FillRight(cell, widths[i])
		}
		line := strings.TrimRight(strings.Join(cells, "  "), " ")
		switch {
		case n == 0:
			line = color.Bold.Sprint(line)
		case row[0] == "*":
			line = color.Green.Sprint(line)
		}
		fmt.Fprintln(w, line)
	}
}
