package schedulers

import (
	"os-scheduler/internal/core"
)

// ScheduleFirstComeFirstServe runs the processes in the order they are given.
// The caller's order is the execution order; nothing is sorted here.
func ScheduleFirstComeFirstServe(processes []core.Process) core.Timeline {
	timeline := make(core.Timeline, 0, len(processes))
	clock := 0
	for job, process := range processes {
		// cpu idles until the process arrives
		if clock < process.ArrivalTime {
			clock = process.ArrivalTime
		}
		timeline = append(timeline, core.ExecutionInterval{
			Process: process.Name,
			Job:     job,
			Start:   clock,
			End:     clock + process.BurstTime,
		})
		clock += process.BurstTime
	}
	return timeline
}
