package util

import "os-scheduler/internal/responses"

// CalculateAverage averages the per-process times. An empty slice yields zeros.
func CalculateAverage(processDetails []responses.ProcessResponse) (averageWaitingTime, averageResponseTime, averageTurnAroundTime float64) {
	if len(processDetails) == 0 {
		return
	}

	var waitingTimeSum, responseTimeSum, turnAroundTimeSum int
	for _, process := range processDetails {
		waitingTimeSum += process.WaitingTime
		responseTimeSum += process.ResponseTime
		turnAroundTimeSum += process.TurnAroundTime
	}

	processCount := float64(len(processDetails))

	averageWaitingTime = float64(waitingTimeSum) / processCount
	averageResponseTime = float64(responseTimeSum) / processCount
	averageTurnAroundTime = float64(turnAroundTimeSum) / processCount
	return
}

// Ratio divides and returns 0 instead of NaN or Inf for an empty denominator.
func Ratio(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}
