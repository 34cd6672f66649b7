package requests

import (
	"fmt"

	"os-scheduler/internal/core"
	"os-scheduler/internal/parser"
)

type Job struct {
	Name        string `json:"name"`
	ArrivalTime int    `json:"arrival_time"`
	BurstTime   int    `json:"burst_time"`
	Priority    int    `json:"priority"`
}
type ScheduleRequest struct {
	Processes []Job `json:"processes"`
	// TimeQuantum is only read by round robin; 0 means use the configured default.
	TimeQuantum int `json:"quantum"`
}

// ToProcesses validates the jobs and converts them for the scheduler.
func (r ScheduleRequest) ToProcesses() ([]core.Process, error) {
	if len(r.Processes) == 0 {
		return nil, fmt.Errorf("%w: no processes given", parser.ErrInvalidConfigRecord)
	}
	processes := make([]core.Process, 0, len(r.Processes))
	for _, job := range r.Processes {
		process := core.Process{
			Name:        job.Name,
			ArrivalTime: job.ArrivalTime,
			BurstTime:   job.BurstTime,
			Priority:    job.Priority,
		}
		if err := parser.Validate(process); err != nil {
			return nil, err
		}
		processes = append(processes, process)
	}
	return processes, nil
}
