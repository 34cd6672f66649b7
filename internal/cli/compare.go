package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"os-scheduler/internal/parser"
	"os-scheduler/internal/render"
	"os-scheduler/internal/schedulers"
)

func newCompareCmd(e *env) *cobra.Command {
	var (
		file       string
		quantumArg string
		detail     bool
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every policy on the same process list and compare the results",
		Long: `Run every policy on the same process list and compare the results.
Round robin is left out when neither -q nor scheduler.round_robin.time_quantum gives a quantum.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			policies, quantum, err := e.comparePolicies(quantumArg)
			if err != nil {
				return err
			}

			processes, err := parser.ReadFile(file)
			if err != nil {
				return err
			}

			timelines, err := schedulers.SchedulePolicies(processes, policies, quantum)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			reports := make([]render.Report, 0, len(policies))
			for _, policy := range policies {
				response := schedulers.Analyze(processes, timelines[policy])
				response.Policy = policy.String()
				reports = append(reports, render.Report{Title: policy.Title(), Response: response})

				if detail {
					render.Table(w, reports[len(reports)-1])
					if err := render.Gantt(w, timelines[policy]); err != nil {
						return err
					}
				}
			}
			e.logger.Debug("policies compared", "processes", len(processes), "policies", len(policies), "quantum", quantum)

			render.Summary(w, reports)
			if len(policies) < len(schedulers.Policies) {
				_, _ = fmt.Fprintln(w, "Round-robin skipped: no time quantum given")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Process list file (name arrival burst [priority] per line)")
	cmd.Flags().StringVarP(&quantumArg, "quantum", "q", "", "Round robin time quantum (defaults to scheduler.round_robin.time_quantum)")
	cmd.Flags().BoolVar(&detail, "detail", false, "Also print the table and Gantt chart of every policy")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// comparePolicies drops round robin when no quantum is available at all.
// A quantum that is given but invalid is still an error.
func (e *env) comparePolicies(quantumArg string) ([]schedulers.Policy, int, error) {
	if quantumArg == "" && e.cfg.RoundRobinTimeQuantum <= 0 {
		e.logger.Warn("round robin skipped", "reason", "no time quantum")
		policies := make([]schedulers.Policy, 0, len(schedulers.Policies)-1)
		for _, policy := range schedulers.Policies {
			if policy != schedulers.RoundRobin {
				policies = append(policies, policy)
			}
		}
		return policies, 0, nil
	}

	quantum, err := e.resolveQuantum(quantumArg)
	if err != nil {
		return nil, 0, err
	}
	return schedulers.Policies, quantum, nil
}
