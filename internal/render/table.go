package render

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"os-scheduler/internal/responses"
)

// Report pairs a scheduling result with the name shown above it.
type Report struct {
	Title    string
	Response responses.ScheduleResponse
}

// Table writes the per-process timing table of one run.
func Table(w io.Writer, report Report) {
	title(w, report.Title)

	rows := make([][]string, 0, len(report.Response.Details))
	for _, d := range report.Response.Details {
		rows = append(rows, []string{
			d.Name,
			fmt.Sprint(d.Priority),
			fmt.Sprint(d.BurstTime),
			fmt.Sprint(d.ArrivalTime),
			fmt.Sprint(d.StartTime),
			fmt.Sprint(d.WaitingTime),
			fmt.Sprint(d.ResponseTime),
			fmt.Sprint(d.TurnAroundTime),
			fmt.Sprint(d.CompletionTime),
		})
	}

	resp := report.Response
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Start", "Wait", "Response", "Turnaround", "Exit"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "", "",
		fmt.Sprintf("Average\n%.2f", resp.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", resp.AverageResponseTime),
		fmt.Sprintf("Average\n%.2f", resp.AverageTurnAroundTime),
		fmt.Sprintf("Throughput\n%.2f/t", resp.CpuThroughput)})
	table.Render()

	_, _ = fmt.Fprintf(w, "Total time: %d, Idle time: %d, CPU utilization: %.2f%%, Context switches: %d\n\n",
		resp.TotalTime, resp.IdleTime, resp.CpuUtilization*100, resp.ContextSwitches)
}

// Summary compares several runs side by side, one row per report.
func Summary(w io.Writer, reports []Report) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Policy", "Total", "Idle", "Utilization", "Throughput", "Avg wait", "Avg response", "Avg turnaround", "Switches"})
	for _, report := range reports {
		resp := report.Response
		table.Append([]string{
			report.Title,
			fmt.Sprint(resp.TotalTime),
			fmt.Sprint(resp.IdleTime),
			fmt.Sprintf("%.2f%%", resp.CpuUtilization*100),
			fmt.Sprintf("%.2f/t", resp.CpuThroughput),
			fmt.Sprintf("%.2f", resp.AverageWaitingTime),
			fmt.Sprintf("%.2f", resp.AverageResponseTime),
			fmt.Sprintf("%.2f", resp.AverageTurnAroundTime),
			fmt.Sprint(resp.ContextSwitches),
		})
	}
	table.Render()
}
