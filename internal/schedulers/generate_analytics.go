package schedulers

import (
	"os-scheduler/internal/core"
	"os-scheduler/internal/responses"
	"os-scheduler/internal/util"
)

// Analyze turns a timeline into the per-process and cpu-wide report.
// Processes that never ran (zero burst under round robin) are reported with
// start and completion at their arrival time.
func Analyze(processes []core.Process, timeline core.Timeline) responses.ScheduleResponse {
	details := generateProcessDetails(processes, timeline)
	averageWaitingTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(details)

	cpuMetric := core.MeasureCpu(timeline)
	return responses.ScheduleResponse{
		TotalTime:             cpuMetric.TotalTime,
		IdleTime:              cpuMetric.IdleTime,
		CpuUtilization:        util.Ratio(float64(cpuMetric.UtilizationTime), float64(cpuMetric.TotalTime)),
		CpuThroughput:         util.Ratio(float64(len(processes)), float64(cpuMetric.TotalTime)),
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		ContextSwitches:       timeline.ContextSwitches(),
		Timeline:              timeline,
		Details:               details,
	}
}

func generateProcessDetails(processes []core.Process, timeline core.Timeline) []responses.ProcessResponse {
	details := make([]responses.ProcessResponse, len(processes))
	seen := make([]bool, len(processes))
	for job, process := range processes {
		details[job] = responses.ProcessResponse{
			Name:           process.Name,
			Job:            job,
			ArrivalTime:    process.ArrivalTime,
			BurstTime:      process.BurstTime,
			Priority:       process.Priority,
			StartTime:      process.ArrivalTime,
			CompletionTime: process.ArrivalTime,
		}
	}

	for _, interval := range timeline {
		if interval.Job < 0 || interval.Job >= len(processes) {
			continue
		}
		detail := &details[interval.Job]
		if !seen[interval.Job] {
			detail.StartTime = interval.Start
			seen[interval.Job] = true
		}
		detail.CompletionTime = interval.End
	}

	for job := range details {
		detail := &details[job]
		detail.ResponseTime = detail.StartTime - detail.ArrivalTime
		detail.TurnAroundTime = detail.CompletionTime - detail.ArrivalTime
		detail.WaitingTime = detail.TurnAroundTime - detail.BurstTime
	}
	return details
}
