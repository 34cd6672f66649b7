package schedulers

import (
	"os-scheduler/internal/core"
)

// SchedulePriority is non-preemptive priority scheduling. A lower priority
// value runs first; ties go to the earlier arrival, then to input order.
func SchedulePriority(processes []core.Process) core.Timeline {
	return scheduleNonPreemptive(processes, func(a, b core.Process) bool {
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		return a.ArrivalTime < b.ArrivalTime
	})
}
