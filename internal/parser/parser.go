// Package parser reads process lists and validates everything the scheduling
// engine assumes: once a []core.Process leaves this package it is well formed.
package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"os-scheduler/internal/core"
	"os-scheduler/internal/schedulers"
)

var (
	ErrConfigNotFound      = errors.New("process list not found")
	ErrInvalidConfigRecord = errors.New("invalid process record")

	// ErrInvalidQuantum is shared with the engine so callers can match either.
	ErrInvalidQuantum = schedulers.ErrInvalidQuantum
)

// RecordError reports the offending line of a process list.
type RecordError struct {
	Line   int
	Reason string
}

func (e *RecordError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%v: %s", ErrInvalidConfigRecord, e.Reason)
	}
	return fmt.Sprintf("%v: line %d: %s", ErrInvalidConfigRecord, e.Line, e.Reason)
}

func (e *RecordError) Unwrap() error { return ErrInvalidConfigRecord }

// ReadFile parses the process list stored at path.
func ReadFile(path string) ([]core.Process, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("open process list: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads one process per line: "name arrival burst [priority]".
// Blank lines and lines starting with '#' are skipped. The first bad record
// aborts the whole parse.
func Parse(r io.Reader) ([]core.Process, error) {
	var processes []core.Process

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		process, err := parseRecord(strings.Fields(text))
		if err != nil {
			return nil, &RecordError{Line: line, Reason: err.Error()}
		}
		processes = append(processes, process)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read process list: %w", err)
	}

	if len(processes) == 0 {
		return nil, &RecordError{Reason: "no processes defined"}
	}
	return processes, nil
}

func parseRecord(fields []string) (core.Process, error) {
	if len(fields) < 3 || len(fields) > 4 {
		return core.Process{}, fmt.Errorf("expected 3 or 4 fields, got %d", len(fields))
	}

	process := core.Process{Name: fields[0]}
	var err error
	if process.ArrivalTime, err = parseInt("arrival time", fields[1]); err != nil {
		return core.Process{}, err
	}
	if process.BurstTime, err = parseInt("burst time", fields[2]); err != nil {
		return core.Process{}, err
	}
	if len(fields) == 4 {
		if process.Priority, err = parseInt("priority", fields[3]); err != nil {
			return core.Process{}, err
		}
	}

	if err := checkProcess(process); err != nil {
		return core.Process{}, err
	}
	return process, nil
}

func parseInt(field, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s %q is not an integer", field, s)
	}
	return n, nil
}

func checkProcess(process core.Process) error {
	switch {
	case strings.TrimSpace(process.Name) == "":
		return errors.New("process name is empty")
	case process.ArrivalTime < 0:
		return fmt.Errorf("arrival time %d is negative", process.ArrivalTime)
	case process.BurstTime <= 0:
		return fmt.Errorf("burst time %d is not positive", process.BurstTime)
	}
	return nil
}

// Validate applies the record checks to a process built elsewhere,
// e.g. decoded from a request body.
func Validate(process core.Process) error {
	if err := checkProcess(process); err != nil {
		return &RecordError{Reason: fmt.Sprintf("process %q: %v", process.Name, err)}
	}
	return nil
}

// ParseQuantum converts user input into a round robin time quantum.
func ParseQuantum(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: missing", ErrInvalidQuantum)
	}
	quantum, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidQuantum, s)
	}
	if quantum <= 0 {
		return 0, fmt.Errorf("%w: %d is not positive", ErrInvalidQuantum, quantum)
	}
	return quantum, nil
}
