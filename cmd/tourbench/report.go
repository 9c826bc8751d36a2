// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/tourbench/bench"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	winStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// displayNames are the headings used in the report.
var displayNames = map[string]string{
	bench.Genetic:         "Genetic Algorithm",
	bench.Hybrid:          "Hybrid Algorithm",
	bench.Annealing:       "Simulated Annealing",
	bench.TwoOpt:          "2-opt Algorithm",
	bench.NearestNeighbor: "Nearest Neighbor",
}

func displayName(name string) string {
	if d, ok := displayNames[name]; ok {
		return d
	}

	return name
}

// renderReport writes the per-algorithm results and the ranking of s to w.
func renderReport(w io.Writer, s *bench.Session) {
	summaries := make(map[string]bench.Summary, len(s.Summaries))
	for _, sum := range s.Summaries {
		summaries[sum.Name] = sum
	}

	for _, res := range s.Results.All() {
		fmt.Fprintln(w)
		fmt.Fprintln(w, titleStyle.Render(displayName(res.Name)))
		fmt.Fprintf(w, "%s %v\n", labelStyle.Render("Shortest Path:"), res.Tour)
		fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Shortest Distance:"), formatLength(res.Length))
		fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Execution Time:"), formatSeconds(res.Elapsed))
		if sum, ok := summaries[res.Name]; ok && sum.Runs > 1 {
			fmt.Fprintf(w, "%s %d runs, mean %s ± %s, mean time %s\n",
				labelStyle.Render("Spread:"), sum.Runs,
				formatLength(sum.MeanLength), formatLength(sum.StdLength),
				formatSeconds(sum.MeanElapsed))
		}
	}

	if len(s.Failures) > 0 {
		fmt.Fprintln(w)
		for _, f := range s.Failures {
			fmt.Fprintln(w, errStyle.Render(fmt.Sprintf("%s run %d failed: %v", displayName(f.Name), f.Run, f.Err)))
		}
	}

	k := s.Ranker()
	best, ok := k.BestByDistance()
	if !ok {
		fmt.Fprintln(w, errStyle.Render("No algorithm produced a result."))
		return
	}
	fast, _ := k.BestByTime()
	overall, rank, _ := k.CombinedRank()

	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render("Best Method by Total Distance:"))
	fmt.Fprintf(w, "%s with distance %s\n", winStyle.Render(displayName(best.Name)), formatLength(best.Length))
	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render("Best Method by Execution Time:"))
	fmt.Fprintf(w, "%s with execution time %s\n", winStyle.Render(displayName(fast.Name)), formatSeconds(fast.Elapsed))
	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render("Overall Best Method:"))
	fmt.Fprintf(w, "%s with combined rank %d\n", winStyle.Render(displayName(overall)), rank)
	fmt.Fprintln(w)
	fmt.Fprintln(w, rankingTable(k.Ranking()))
}

// rankingTable lays out the combined ranking as aligned columns.
func rankingTable(ranks []bench.Rank) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-22s %8s %6s %8s\n", "algorithm", "distance", "time", "combined")
	for _, r := range ranks {
		fmt.Fprintf(&b, "%-22s %8d %6d %8d\n", displayName(r.Name), r.DistanceRank, r.TimeRank, r.Combined)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Render(strings.TrimRight(b.String(), "\n"))
}

func formatLength(v float64) string {
	return fmt.Sprintf("%.6f", v)
}

func formatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.6f seconds", d.Seconds())
}
