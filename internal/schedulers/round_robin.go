package schedulers

import (
	"os-scheduler/internal/core"
)

// ScheduleRoundRobin gives every unfinished process at most timeQuantum units
// per pass, visiting them in input order. Passes repeat until no burst remains.
//
// The list is cycled as given. Newly arrived processes are not queued behind
// the running one the way a textbook ready queue would do it, so with
// staggered arrivals the cpu may jump ahead to a late process and then come
// back to an earlier one.
//
// timeQuantum must be positive; Schedule rejects anything else.
func ScheduleRoundRobin(processes []core.Process, timeQuantum int) core.Timeline {
	remaining := make([]int, len(processes))
	for i, process := range processes {
		remaining[i] = process.BurstTime
	}

	timeline := make(core.Timeline, 0, len(processes))
	clock := 0
	for {
		done := true
		for job, process := range processes {
			if remaining[job] <= 0 {
				continue
			}
			done = false
			if clock < process.ArrivalTime {
				clock = process.ArrivalTime
			}
			slice := min(timeQuantum, remaining[job])
			timeline = append(timeline, core.ExecutionInterval{
				Process: process.Name,
				Job:     job,
				Start:   clock,
				End:     clock + slice,
			})
			clock += slice
			remaining[job] -= slice
		}
		if done {
			return timeline
		}
	}
}
