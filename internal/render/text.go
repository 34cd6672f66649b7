// Package render writes scheduling results for people: plain lines, tables
// and a Gantt chart.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"os-scheduler/internal/core"
)

// Text writes one line per interval in execution order.
func Text(w io.Writer, timeline core.Timeline) error {
	for _, interval := range timeline {
		if _, err := fmt.Fprintf(w, "Process: %s, Start: %d, End: %d\n", interval.Process, interval.Start, interval.End); err != nil {
			return err
		}
	}
	return nil
}

func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func title(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}
