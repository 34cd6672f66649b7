package core

// CpuMetric describes how the single simulated cpu spent a run.
type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// MeasureCpu derives cpu usage from a timeline. The clock always starts at 0,
// so a late first arrival counts as idle time.
func MeasureCpu(timeline Timeline) CpuMetric {
	var utilizationTime int
	for _, interval := range timeline {
		utilizationTime += interval.Duration()
	}
	totalTime := timeline.End()
	return CpuMetric{
		TotalTime:       totalTime,
		UtilizationTime: utilizationTime,
		IdleTime:        totalTime - utilizationTime,
	}
}

// ContextSwitches counts the hand-overs between different jobs.
func (t Timeline) ContextSwitches() int {
	switches := 0
	for i := 1; i < len(t); i++ {
		if t[i].Job != t[i-1].Job {
			switches++
		}
	}
	return switches
}
