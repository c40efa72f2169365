package sim

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Summary aggregates a report.
type Summary struct {
	Games     int
	Wins      int
	TimedOut  int
	MeanScore float64
	MaxScore  int
	MeanLevel float64
	MaxLevel  int
	MeanTicks float64
	Causes    map[snake.Cause]int
}

// Summarize aggregates the results of a report.
func (r Report) Summarize() Summary {
	s := Summary{Games: len(r.Results), Causes: make(map[snake.Cause]int)}
	if s.Games == 0 {
		return s
	}

	var score, level, ticks int
	for _, res := range r.Results {
		score += res.Score
		level += res.Level
		ticks += int(res.Ticks)
		s.MaxScore = max(s.MaxScore, res.Score)
		s.MaxLevel = max(s.MaxLevel, res.Level)

		switch {
		case res.Status == snake.StatusWon:
			s.Wins++
		case res.TimedOut:
			s.TimedOut++
		default:
			s.Causes[res.Cause]++
		}
	}

	n := float64(s.Games)
	s.MeanScore = float64(score) / n
	s.MeanLevel = float64(level) / n
	s.MeanTicks = float64(ticks) / n
	return s
}

// Print writes a human-readable summary of the report.
func (r Report) Print(w io.Writer) error {
	s := r.Summarize()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Run:\t%s\n", r.ID)
	fmt.Fprintf(tw, "Pilot:\t%s\n", r.Options.Pilot)
	fmt.Fprintf(tw, "Board:\t%dx%d\n", r.Options.Width, r.Options.Height)
	fmt.Fprintf(tw, "Seed:\t%d\n", r.Options.Seed)
	fmt.Fprintf(tw, "Games:\t%d\n", s.Games)
	fmt.Fprintf(tw, "Elapsed:\t%s\n", r.Elapsed)
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "Score:\tmean %.1f\tmax %d\n", s.MeanScore, s.MaxScore)
	fmt.Fprintf(tw, "Level:\tmean %.2f\tmax %d\n", s.MeanLevel, s.MaxLevel)
	fmt.Fprintf(tw, "Ticks:\tmean %.0f\n", s.MeanTicks)
	fmt.Fprintf(tw, "Wins:\t%d\n", s.Wins)
	if s.TimedOut > 0 {
		fmt.Fprintf(tw, "Cut off:\t%d\n", s.TimedOut)
	}

	causes := make([]snake.Cause, 0, len(s.Causes))
	for c := range s.Causes {
		causes = append(causes, c)
	}
	sort.Slice(causes, func(i, j int) bool { return causes[i] < causes[j] })
	for _, c := range causes {
		fmt.Fprintf(tw, "Ended by %s:\t%d\n", c, s.Causes[c])
	}

	return tw.Flush()
}
