package core

// Process is an immutable job descriptor. Lower Priority values run first.
type Process struct {
	Name        string
	ArrivalTime int
	BurstTime   int
	Priority    int
}

// ExecutionInterval is one slice of CPU time given to a process.
// Job is the position of the process in the input list, so duplicate
// names are still distinct jobs.
type ExecutionInterval struct {
	Process string `json:"process"`
	Job     int    `json:"job"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
}

func (i ExecutionInterval) Duration() int {
	return i.End - i.Start
}

// Timeline is the chronological list of intervals produced by one run.
type Timeline []ExecutionInterval

// End returns the time the last interval finishes, or 0 for an empty timeline.
func (t Timeline) End() int {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1].End
}

// ExecutedBy sums the CPU time each job received, indexed by job.
func (t Timeline) ExecutedBy(jobCount int) []int {
	executed := make([]int, jobCount)
	for _, interval := range t {
		if interval.Job >= 0 && interval.Job < jobCount {
			executed[interval.Job] += interval.Duration()
		}
	}
	return executed
}
