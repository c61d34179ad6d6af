package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
)

const ruleWidth = 70

type EntityCount struct {
	Label string
	Rows  int
}

type DefectLine struct {
	Description string
	Rate        float64
	Injected    int
}

// Summary is what a finished run reports on the console.
type Summary struct {
	Pure      bool
	OutputDir string
	RunID     string
	Seed      uint64
	Entities  []EntityCount
	Defects   []DefectLine
}

func (s Summary) TotalRows() int {
	total := 0
	for _, e := range s.Entities {
		total += e.Rows
	}
	return total
}

func Rule() string {
	return strings.Repeat("=", ruleWidth)
}

// Print renders s to w. Defect lines are only printed for the sample variant.
func Print(w io.Writer, s Summary) {
	green := color.New(color.FgGreen, color.Bold)
	cyan := color.New(color.FgCyan)
	yellow := color.New(color.FgYellow)

	fmt.Fprintln(w)
	fmt.Fprintln(w, Rule())
	if s.Pure {
		green.Fprintln(w, "[SUCCESS] Pure Data Generation Complete!")
	} else {
		green.Fprintln(w, "[SUCCESS] Data Generation Complete!")
	}
	fmt.Fprintln(w, Rule())

	cyan.Fprintf(w, "\n[OUTPUT] Directory: %s\n", s.OutputDir)
	fmt.Fprintf(w, "[RUN] %s (seed %d)\n", s.RunID, s.Seed)

	width := 0
	for _, e := range s.Entities {
		width = max(width, len(e.Label))
	}

	cyan.Fprintln(w, "\n[SUMMARY]")
	for _, e := range s.Entities {
		fmt.Fprintf(w, "   - %-*s %s rows\n", width+1, e.Label+":", humanize.Comma(int64(e.Rows)))
	}
	fmt.Fprintf(w, "   - %-*s %s rows\n", width+1, "Total:", humanize.Comma(int64(s.TotalRows())))

	if s.Pure {
		fmt.Fprintln(w, "\n[NOTE] No intentional data quality issues were generated.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, Rule())
		return
	}

	yellow.Fprintln(w, "\n[WARNING] Data Quality Issues Included:")
	for _, d := range s.Defects {
		fmt.Fprintf(w, "   - ~%.1f%% %s (%s injected)\n", d.Rate*100, d.Description, humanize.Comma(int64(d.Injected)))
	}

	cyan.Fprintln(w, "\n[NEXT STEPS]")
	fmt.Fprintf(w, "   1. Upload CSV files from '%s/' to Snowflake stage\n", s.OutputDir)
	fmt.Fprintln(w, "   2. Run: 02_Data_Loading.sql")
	fmt.Fprintln(w, "   3. Run DQ checks to detect the issues!")
	fmt.Fprintln(w)
	fmt.Fprintln(w, Rule())
}
