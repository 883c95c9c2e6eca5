// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/verte-zerg/humanbench/internal/game"
	"github.com/verte-zerg/humanbench/internal/model"
)

const sparkChars = " .:-=+*#%@"

// StdDev returns the population standard deviation of values.
func StdDev(values []int) float64 {
	if len(values) <= 1 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += float64(v)
	}
	avg := sum / float64(len(values))
	var sumSquaredDiff float64
	for _, v := range values {
		diff := float64(v) - avg
		sumSquaredDiff += diff * diff
	}
	return math.Sqrt(sumSquaredDiff / float64(len(values)))
}

// Summarize groups results by mode, in menu order. Modes without results are omitted.
func Summarize(results []model.SessionResult) []model.ModeSummary {
	byMode := map[model.GameMode][]model.SessionResult{}
	for _, r := range results {
		byMode[r.Mode] = append(byMode[r.Mode], r)
	}
	var out []model.ModeSummary
	for _, mode := range model.Modes {
		rs := byMode[mode]
		if len(rs) == 0 {
			continue
		}
		s := model.ModeSummary{Mode: mode, Sessions: len(rs), Best: rs[0].Score}
		var sdSum float64
		sdCount := 0
		for _, r := range rs {
			s.Scores = append(s.Scores, r.Score)
			if beats(mode, r.Score, s.Best) {
				s.Best = r.Score
			}
			if len(r.Rounds) > 1 {
				sdSum += StdDev(r.Rounds)
				sdCount++
			}
		}
		s.Mean = game.MeanScore(s.Scores)
		if sdCount > 0 {
			s.RoundSD = sdSum / float64(sdCount)
		}
		out = append(out, s)
	}
	return out
}

func beats(mode model.GameMode, score, best int) bool {
	if mode.LowerIsBetter() {
		return score < best
	}
	return score > best
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// ScoreText formats a score with its unit, or a placeholder when unset.
func ScoreText(score int, ok bool, unit model.Unit) string {
	if !ok {
		return fmt.Sprintf("--- %s", unit)
	}
	return fmt.Sprintf("%d %s", score, unit)
}

// SummaryRows formats summaries as table cells.
func SummaryRows(summaries []model.ModeSummary) [][]string {
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		unit := s.Mode.Unit()
		sd := "-"
		if s.Mode.LowerIsBetter() {
			sd = fmt.Sprintf("%.1f", s.RoundSD)
		}
		scores := make([]float64, len(s.Scores))
		for i, v := range s.Scores {
			scores[i] = float64(v)
		}
		rows = append(rows, []string{
			s.Mode.Title(),
			fmt.Sprintf("%d", s.Sessions),
			ScoreText(s.Best, true, unit),
			ScoreText(s.Mean, true, unit),
			sd,
			Sparkline(scores),
		})
	}
	return rows
}

// SummaryHeaders are the column titles for SummaryRows.
var SummaryHeaders = []string{"Game", "Saved", "Best", "Mean", "Round SD", "Trend"}

// RenderSummary prints a summary table of saved results.
func RenderSummary(w io.Writer, summaries []model.ModeSummary) error {
	if len(summaries) == 0 {
		_, err := fmt.Fprintln(w, "No saved scores this session.")
		return err
	}
	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	rightAlign := map[int]bool{1: true, 2: true, 3: true, 4: true}
	for _, line := range formatTable(SummaryHeaders, SummaryRows(summaries), rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
