package responses

import "os-scheduler/internal/core"

type ProcessResponse struct {
	Name           string `json:"name"`
	Job            int    `json:"job"`
	ArrivalTime    int    `json:"arrival_time"`
	BurstTime      int    `json:"burst_time"`
	Priority       int    `json:"priority"`
	StartTime      int    `json:"start_time"`
	CompletionTime int    `json:"completion_time"`
	ResponseTime   int    `json:"response_time"`
	TurnAroundTime int    `json:"turn_around_time"`
	WaitingTime    int    `json:"waiting_time"`
}
type ScheduleResponse struct {
	RunID                 string            `json:"run_id,omitempty"`
	Policy                string            `json:"policy,omitempty"`
	TimeQuantum           int               `json:"time_quantum,omitempty"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	ContextSwitches       int               `json:"context_switches"`
	Timeline              core.Timeline     `json:"timeline"`
	Details               []ProcessResponse `json:"details"`
}
