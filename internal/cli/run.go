package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"os-scheduler/internal/core"
	"os-scheduler/internal/parser"
	"os-scheduler/internal/render"
	"os-scheduler/internal/schedulers"
)

func newRunCmd(e *env) *cobra.Command {
	var (
		file       string
		policyName string
		quantumArg string
		output     string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Schedule a process list with one policy",
		Example: `  cpusched run -f processes.txt -p fcfs
  cpusched run -f processes.txt -p rr -q 2 -o gantt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			policy, err := schedulers.ParsePolicy(policyName)
			if err != nil {
				return err
			}

			var quantum int
			if policy == schedulers.RoundRobin {
				if quantum, err = e.resolveQuantum(quantumArg); err != nil {
					return err
				}
			}

			processes, err := parser.ReadFile(file)
			if err != nil {
				return err
			}

			timeline, err := schedulers.Schedule(processes, policy, quantum)
			if err != nil {
				return err
			}

			runID := uuid.NewString()
			e.logger.Debug("schedule computed",
				"run_id", runID,
				"policy", policy.String(),
				"quantum", quantum,
				"processes", len(processes),
				"intervals", len(timeline),
			)

			return writeRun(cmd, output, runID, policy, quantum, processes, timeline)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Process list file (name arrival burst [priority] per line)")
	cmd.Flags().StringVarP(&policyName, "policy", "p", "fcfs", "Scheduling policy (fcfs, sjf, rr, priority)")
	cmd.Flags().StringVarP(&quantumArg, "quantum", "q", "", "Round robin time quantum (defaults to scheduler.round_robin.time_quantum)")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format (text, gantt, table, json)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func writeRun(cmd *cobra.Command, output, runID string, policy schedulers.Policy, quantum int, processes []core.Process, timeline core.Timeline) error {
	w := cmd.OutOrStdout()
	switch output {
	case "text":
		return render.Text(w, timeline)
	case "gantt":
		return render.Gantt(w, timeline)
	case "table", "json":
		response := schedulers.Analyze(processes, timeline)
		response.RunID = runID
		response.Policy = policy.String()
		if policy == schedulers.RoundRobin {
			response.TimeQuantum = quantum
		}
		if output == "json" {
			return render.JSON(w, response)
		}
		render.Table(w, render.Report{Title: policy.Title(), Response: response})
		return nil
	default:
		return fmt.Errorf("unknown output format %q", output)
	}
}

// resolveQuantum prefers the flag and falls back to the configured quantum.
func (e *env) resolveQuantum(arg string) (int, error) {
	if arg == "" && e.cfg.RoundRobinTimeQuantum > 0 {
		return e.cfg.RoundRobinTimeQuantum, nil
	}
	return parser.ParseQuantum(arg)
}
