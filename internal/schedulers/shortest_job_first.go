package schedulers

import (
	"os-scheduler/internal/core"
)

// ScheduleShortestJobFirst is non-preemptive SJF. Among the processes that
// have arrived, the one with the smallest burst runs next; ties go to the
// earlier arrival and then to the earlier position in the input.
func ScheduleShortestJobFirst(processes []core.Process) core.Timeline {
	return scheduleNonPreemptive(processes, func(a, b core.Process) bool {
		if a.BurstTime != b.BurstTime {
			return a.BurstTime < b.BurstTime
		}
		return a.ArrivalTime < b.ArrivalTime
	})
}

// scheduleNonPreemptive repeatedly picks the best eligible process from the
// pool and runs it to completion. better must be a strict ordering: the pool
// keeps input order, so the first minimum wins a tie.
func scheduleNonPreemptive(processes []core.Process, better func(a, b core.Process) bool) core.Timeline {
	pool := make([]int, len(processes))
	for i := range processes {
		pool[i] = i
	}

	timeline := make(core.Timeline, 0, len(processes))
	clock := 0
	for len(pool) > 0 {
		pick := -1
		for k, job := range pool {
			if processes[job].ArrivalTime > clock {
				continue
			}
			if pick == -1 || better(processes[job], processes[pool[pick]]) {
				pick = k
			}
		}

		if pick == -1 {
			// nothing eligible: jump to the next arrival
			clock = earliestArrival(processes, pool)
			continue
		}

		job := pool[pick]
		process := processes[job]
		timeline = append(timeline, core.ExecutionInterval{
			Process: process.Name,
			Job:     job,
			Start:   clock,
			End:     clock + process.BurstTime,
		})
		clock += process.BurstTime
		pool = append(pool[:pick], pool[pick+1:]...)
	}
	return timeline
}

func earliestArrival(processes []core.Process, pool []int) int {
	earliest := processes[pool[0]].ArrivalTime
	for _, job := range pool[1:] {
		if processes[job].ArrivalTime < earliest {
			earliest = processes[job].ArrivalTime
		}
	}
	return earliest
}
