package render

import (
	"fmt"
	"io"
	"strings"

	"os-scheduler/internal/core"
)

// MaxGanttWidth caps the number of chart columns; longer runs are scaled.
const MaxGanttWidth = 64

// Gantt draws one row per process name with a bar for every interval it ran:
//
//	A |##..#|
//	B |..##.|
//	  0     5
func Gantt(w io.Writer, timeline core.Timeline) error {
	if len(timeline) == 0 {
		_, err := fmt.Fprintln(w, "(empty timeline)")
		return err
	}

	end := timeline.End()
	scale := 1
	if end > MaxGanttWidth {
		scale = (end + MaxGanttWidth - 1) / MaxGanttWidth
	}
	columns := (end + scale - 1) / scale

	names := make([]string, 0)
	rows := make(map[string][]byte)
	nameWidth := 0
	for _, interval := range timeline {
		row, ok := rows[interval.Process]
		if !ok {
			row = []byte(strings.Repeat(".", columns))
			rows[interval.Process] = row
			names = append(names, interval.Process)
			nameWidth = max(nameWidth, len(interval.Process))
		}
		from := interval.Start / scale
		to := (interval.End + scale - 1) / scale
		for c := from; c < to && c < columns; c++ {
			row[c] = '#'
		}
	}

	for _, name := range names {
		if _, err := fmt.Fprintf(w, "%-*s |%s|\n", nameWidth, name, rows[name]); err != nil {
			return err
		}
	}

	axis := fmt.Sprintf("%s0%*d", strings.Repeat(" ", nameWidth+1), columns+1, end)
	if scale > 1 {
		axis += fmt.Sprintf("  (1 column = %d units)", scale)
	}
	_, err := fmt.Fprintln(w, axis)
	return err
}
